package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const greeting = "Hi! Just send me a word!"

type StartHandler struct {
	neverPassthrough
}

func (h StartHandler) Match(u tgbotapi.Update) bool {
	return u.Message != nil && u.Message.Command() == "start"
}

func (h StartHandler) Handle(ctx context.Context, b Bot, u tgbotapi.Update) {
	_, _ = b.Send(tgbotapi.NewMessage(u.Message.Chat.ID, greeting))
}
