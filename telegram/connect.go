// Package telegram sends report copies to a telegram chat
package telegram

import (
	"context"
	"fmt"
	"strconv"

	"job-search-buddy/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of the bot api used for publishing
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Channel publishes text to one chat
type Channel struct {
	bot    Sender
	chatID int64
}

// Connect do connection to telegram
func Connect(telegramToken, telegramChatID string) (*Channel, error) {
	chatID, err := strconv.ParseInt(telegramChatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chat id '%s': %w", telegramChatID, err)
	}
	bot, err := tgbotapi.NewBotAPI(telegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect telegram api: %w", err)
	}
	return NewChannel(bot, chatID), nil
}

// NewChannel creates a channel over an existing bot
func NewChannel(bot Sender, chatID int64) *Channel {
	return &Channel{bot: bot, chatID: chatID}
}

// Publish sends text, cut to the telegram message limit
func (c *Channel) Publish(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(c.chatID, cut(text, config.TelegramMessageLimit))
	msg.DisableWebPagePreview = true
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to chat '%d': %w", c.chatID, err)
	}
	return nil
}

func cut(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
