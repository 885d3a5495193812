package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-search-buddy/config"
	"job-search-buddy/http"
	"job-search-buddy/misc"
	"job-search-buddy/service"
	"job-search-buddy/telegram"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sendgrid/sendgrid-go"
)

func newPipeline(params *config.Params) (*service.Pipeline, error) {
	openaiConfig := openai.DefaultConfig(params.OpenAIKey)
	if params.OpenAIBaseURL != "" {
		openaiConfig.BaseURL = params.OpenAIBaseURL
	}

	var copies []service.Publisher
	if params.TelegramEnabled() {
		channel, err := telegram.Connect(params.TelegramToken, params.TelegramChatID)
		if err != nil {
			return nil, err
		}
		copies = append(copies, channel)
	}

	return &service.Pipeline{
		Collector: service.NewCollector(service.FeedParserFunc(http.GetFeed), params.FeedURLs,
			service.WithPartial(params.AllowPartial),
			service.WithMaxLinks(params.MaxLinks),
		),
		Generator: service.NewGenerator(openai.NewClientWithConfig(openaiConfig), params.Model, params.Prompt),
		Notifier:  service.NewNotifier(sendgrid.NewSendClient(params.SendGridKey), params.Sender, params.Recipient, copies...),
	}, nil
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		misc.Fatal("env_load", "load .env", err)
	}
	params, err := config.Load()
	if err != nil {
		misc.Fatal("config", "load config", err)
	}
	misc.InitMetrics(params.PushgatewayURL, params.PushgatewayJob)
	if err = params.Validate(); err != nil {
		misc.Fatal("config", "validate config", err)
	}
	pipeline, err := newPipeline(params)
	if err != nil {
		misc.Fatal("tg_api", "telegram api", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if params.RunEvery == 0 {
		if err = pipeline.Run(ctx); err != nil {
			misc.Fatal("run", "run", err)
		}
		misc.PushMetrics()
		misc.Info("done")
		return
	}

	ticker := time.NewTicker(params.RunEvery)
	defer ticker.Stop()
	for {
		if err = pipeline.Run(ctx); err != nil {
			misc.Error("run", "run", err)
		}
		misc.PushMetrics()
		select {
		case <-ticker.C:
		case <-ctx.Done():
			misc.Info("stop")
			return
		}
	}
}
