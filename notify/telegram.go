package notify

import (
	"fmt"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier sends crawl summaries to a Telegram chat
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifierFromEnv builds a Notifier from SCREENER_TG_TOKEN and
// SCREENER_TG_CHAT. Returns (nil, nil) when the token is not set, so
// callers can treat notifications as optional.
func NewNotifierFromEnv() (*Notifier, error) {
	token := os.Getenv("SCREENER_TG_TOKEN")
	if token == "" {
		return nil, nil
	}

	chatStr := os.Getenv("SCREENER_TG_CHAT")
	chatID, err := strconv.ParseInt(chatStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SCREENER_TG_CHAT %q: %w", chatStr, err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	return &Notifier{bot: bot, chatID: chatID}, nil
}

// NotifyCrawlDone sends a one-line summary of a finished crawl
func (n *Notifier) NotifyCrawlDone(region string, recordCount int, outputPath string) error {
	text := fmt.Sprintf("✅ Crawl finished: %d record(s) for %s, exported to %s", recordCount, region, outputPath)
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
