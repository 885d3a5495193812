package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"job-search-buddy/config"
	"job-search-buddy/misc"
)

// Pipeline is one run: collect links, generate the report, notify
type Pipeline struct {
	Collector *Collector
	Generator *Generator
	Notifier  *Notifier
}

// Run executes the stages in order. Collector and generator errors are returned,
// notification errors are not.
func (p *Pipeline) Run(ctx context.Context) error {
	misc.Info("run started")
	links, err := p.Collector.Collect(ctx)
	if err != nil {
		misc.ObserveRun(misc.RunCollect)
		return fmt.Errorf("failed to collect links: %w", err)
	}
	misc.ObserveLinks(len(links))
	misc.Info(fmt.Sprintf("number of links from feeds: %d", len(links)))

	report, err := p.Generator.Generate(ctx, links)
	if err != nil {
		misc.ObserveRun(misc.RunGenerate)
		return fmt.Errorf("failed to generate report: %w", err)
	}
	misc.Info(describeReport(report, config.ReportPreviewLength))

	p.Notifier.Notify(ctx, report)
	misc.ObserveRun(misc.RunOK)
	return nil
}

func describeReport(report string, limit int) string {
	return fmt.Sprintf("got report (%d chars): %s", utf8.RuneCountInString(report), preview(report, limit))
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
