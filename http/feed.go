// Package http handle work with http
package http

import (
	"context"
	"fmt"

	"github.com/lafin/http"
	"github.com/mmcdole/gofeed"
)

// GetFeed - get and parse a feed
func GetFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, _, err := http.Get(feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get feed '%s': %w", feedURL, err)
	}
	fp := gofeed.NewParser()
	feed, err := fp.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed '%s': %w", feedURL, err)
	}
	return feed, nil
}
