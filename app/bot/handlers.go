package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot describes bot for handlers
type Bot interface {
	Send(tgbotapi.Chattable) (tgbotapi.Message, error)
}

// neverPassthrough implements Passthrough with always false
type neverPassthrough struct{}

// Passthrough always returns false
func (h neverPassthrough) Passthrough(u tgbotapi.Update) bool {
	return false
}
