package service

import (
	"context"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type feedResult struct {
	links []string
	err   error
	delay time.Duration
}

type stubParser struct {
	mu      sync.Mutex
	results map[string]feedResult
	calls   []string
}

func newFeed(links ...string) *gofeed.Feed {
	feed := &gofeed.Feed{}
	for _, link := range links {
		feed.Items = append(feed.Items, &gofeed.Item{Link: link})
	}
	return feed
}

func (p *stubParser) Parse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	p.mu.Lock()
	p.calls = append(p.calls, feedURL)
	result := p.results[feedURL]
	p.mu.Unlock()
	if result.delay > 0 {
		time.Sleep(result.delay)
	}
	if result.err != nil {
		return nil, result.err
	}
	return newFeed(result.links...), nil
}

type stubCompleter struct {
	requests []openai.ChatCompletionRequest
	content  string
	noChoice bool
	err      error
}

func (c *stubCompleter) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.requests = append(c.requests, request)
	if c.err != nil {
		return openai.ChatCompletionResponse{}, c.err
	}
	if c.noChoice {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: c.content}},
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "second choice"}},
		},
	}, nil
}

type stubMailer struct {
	sent     []*mail.SGMailV3
	response *rest.Response
	err      error
}

func (m *stubMailer) Send(email *mail.SGMailV3) (*rest.Response, error) {
	m.sent = append(m.sent, email)
	if m.err != nil {
		return m.response, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &rest.Response{StatusCode: 202}, nil
}

type stubPublisher struct {
	texts []string
	err   error
}

func (p *stubPublisher) Publish(ctx context.Context, text string) error {
	p.texts = append(p.texts, text)
	return p.err
}

// sentText return the plain text body of a sent email
func sentText(email *mail.SGMailV3) string {
	for _, content := range email.Content {
		if content.Type == "text/plain" {
			return content.Value
		}
	}
	return ""
}
