package service

import (
	"context"
	"errors"
	"fmt"

	"job-search-buddy/misc"

	"github.com/mmcdole/gofeed"
	"github.com/thoas/go-funk"
	"golang.org/x/sync/errgroup"
)

// FeedParser fetches and parses one feed
type FeedParser interface {
	Parse(ctx context.Context, feedURL string) (*gofeed.Feed, error)
}

// FeedParserFunc adapts a function to FeedParser
type FeedParserFunc func(ctx context.Context, feedURL string) (*gofeed.Feed, error)

// Parse calls f
func (f FeedParserFunc) Parse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	return f(ctx, feedURL)
}

// Collector gathers item links from a fixed list of feeds
type Collector struct {
	parser   FeedParser
	urls     []string
	partial  bool
	maxLinks int
}

// CollectorOption configures a Collector
type CollectorOption func(*Collector)

// WithPartial keeps the links of healthy feeds when some of them fail
func WithPartial(partial bool) CollectorOption {
	return func(c *Collector) {
		c.partial = partial
	}
}

// WithMaxLinks caps the number of collected links, 0 is unbounded
func WithMaxLinks(maxLinks int) CollectorOption {
	return func(c *Collector) {
		c.maxLinks = maxLinks
	}
}

// NewCollector creates a collector over urls
func NewCollector(parser FeedParser, urls []string, opts ...CollectorOption) *Collector {
	c := &Collector{parser: parser, urls: urls}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect fetches all feeds concurrently and returns their item links in feed order, then item order.
// Items without a link give an empty string.
func (c *Collector) Collect(ctx context.Context) ([]string, error) {
	if len(c.urls) == 0 {
		return nil, errors.New("no feeds to collect")
	}
	var (
		feeds []*gofeed.Feed
		err   error
	)
	if c.partial {
		feeds, err = c.fetchSettled(ctx)
	} else {
		feeds, err = c.fetchAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	links := extractLinks(feeds)
	if c.maxLinks > 0 && len(links) > c.maxLinks {
		misc.Warn(fmt.Sprintf("truncate links from %d to %d", len(links), c.maxLinks))
		links = links[:c.maxLinks]
	}
	return links, nil
}

type fetchResult struct {
	index int
	feed  *gofeed.Feed
	err   error
}

// fetchAll returns on the first feed error without waiting for the fetches still in flight
func (c *Collector) fetchAll(ctx context.Context) ([]*gofeed.Feed, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan fetchResult, len(c.urls))
	for i, feedURL := range c.urls {
		go func(i int, feedURL string) {
			feed, err := c.parser.Parse(ctx, feedURL)
			results <- fetchResult{index: i, feed: feed, err: err}
		}(i, feedURL)
	}

	feeds := make([]*gofeed.Feed, len(c.urls))
	for range c.urls {
		select {
		case res := <-results:
			if res.err != nil {
				return nil, fmt.Errorf("failed to fetch feed '%s': %w", c.urls[res.index], res.err)
			}
			feeds[res.index] = res.feed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return feeds, nil
}

// fetchSettled waits for every feed and drops the failed ones
func (c *Collector) fetchSettled(ctx context.Context) ([]*gofeed.Feed, error) {
	feeds := make([]*gofeed.Feed, len(c.urls))
	errs := make([]error, len(c.urls))
	var g errgroup.Group
	for i, feedURL := range c.urls {
		i, feedURL := i, feedURL
		g.Go(func() error {
			feeds[i], errs[i] = c.parser.Parse(ctx, feedURL)
			return nil
		})
	}
	_ = g.Wait()

	var settled []*gofeed.Feed
	for i, err := range errs {
		if err != nil {
			misc.Error("fetch_feed", fmt.Sprintf("fetch feed '%s'", c.urls[i]), err)
			continue
		}
		settled = append(settled, feeds[i])
	}
	if len(settled) == 0 {
		return nil, fmt.Errorf("all %d feeds failed: %w", len(c.urls), errors.Join(errs...))
	}
	return settled, nil
}

func extractLinks(feeds []*gofeed.Feed) []string {
	feeds = funk.Filter(feeds, func(feed *gofeed.Feed) bool {
		return feed != nil
	}).([]*gofeed.Feed)
	if len(feeds) == 0 {
		return []string{}
	}
	items := funk.FlatMap(feeds, func(feed *gofeed.Feed) []*gofeed.Item {
		return feed.Items
	}).([]*gofeed.Item)
	if len(items) == 0 {
		return []string{}
	}
	return funk.Map(items, func(item *gofeed.Item) string {
		return item.Link
	}).([]string)
}
