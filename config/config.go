package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// FeedURLs is the default list of feeds, used when FEEDS is not set
var FeedURLs = []string{
	"https://www.google.com/alerts/feeds/04534337928605833163/3244402253473668538",
}

// TelegramMessageLimit is the max length of a telegram message
var TelegramMessageLimit = 4096

// ReportPreviewLength is how much of the report goes to the log
var ReportPreviewLength = 500

// DefaultPushgatewayJob is the job name for pushed metrics
var DefaultPushgatewayJob = "job_search_buddy"

// Params is run params
type Params struct {
	FeedURLs       []string
	AllowPartial   bool
	MaxLinks       int
	OpenAIKey      string
	OpenAIBaseURL  string
	Model          string
	Prompt         string
	SendGridKey    string
	Recipient      string
	Sender         string
	TelegramToken  string
	TelegramChatID string
	PushgatewayURL string
	PushgatewayJob string
	RunEvery       time.Duration
}

// Load reads params from the environment
func Load() (*Params, error) {
	params := &Params{
		FeedURLs:       FeedURLs,
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		Model:          os.Getenv("MODEL"),
		Prompt:         os.Getenv("PROMPT"),
		SendGridKey:    os.Getenv("SENDGRID_API_KEY"),
		Recipient:      os.Getenv("RECIPIENT"),
		Sender:         os.Getenv("SENDER"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),
		PushgatewayJob: os.Getenv("PUSHGATEWAY_JOB"),
	}
	if params.PushgatewayJob == "" {
		params.PushgatewayJob = DefaultPushgatewayJob
	}
	if feeds := os.Getenv("FEEDS"); feeds != "" {
		params.FeedURLs = splitList(feeds)
	}
	if value := os.Getenv("ALLOW_PARTIAL_FEEDS"); value != "" {
		allow, err := strconv.ParseBool(value)
		if err != nil {
			return nil, errors.New("ALLOW_PARTIAL_FEEDS is not a bool: " + value)
		}
		params.AllowPartial = allow
	}
	if value := os.Getenv("MAX_LINKS"); value != "" {
		maxLinks, err := strconv.Atoi(value)
		if err != nil || maxLinks < 0 {
			return nil, errors.New("MAX_LINKS is not a non-negative number: " + value)
		}
		params.MaxLinks = maxLinks
	}
	if value := os.Getenv("RUN_EVERY"); value != "" {
		every, err := time.ParseDuration(value)
		if err != nil || every <= 0 {
			return nil, errors.New("RUN_EVERY is not a positive duration: " + value)
		}
		params.RunEvery = every
	}
	return params, nil
}

// Validate returns an error for the first missing param of feed collection or report generation.
// Mail params are not checked here, a missing one fails the delivery only.
func (p *Params) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"OPENAI_API_KEY", p.OpenAIKey},
		{"MODEL", p.Model},
		{"PROMPT", p.Prompt},
	}
	for _, item := range required {
		if item.value == "" {
			return errors.New(item.name + " is not set")
		}
	}
	if len(p.FeedURLs) == 0 {
		return errors.New("no feeds configured")
	}
	return nil
}

// TelegramEnabled reports whether the report copy to telegram is configured
func (p *Params) TelegramEnabled() bool {
	return p.TelegramToken != "" && p.TelegramChatID != ""
}

func splitList(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
