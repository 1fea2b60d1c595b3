package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	updateTimeout  = 5 * time.Second
	pollingTimeout = 60
)

type Handler interface {
	Handle(ctx context.Context, b Bot, u tgbotapi.Update)
	Passthrough(tgbotapi.Update) bool
	Match(u tgbotapi.Update) bool
}

// TelegramBot handles Telegram API integration and updates handling
type TelegramBot struct {
	UserName string
	api      *tgbotapi.BotAPI
	handlers []Handler
}

func (b *TelegramBot) processUpdate(ctx context.Context, u tgbotapi.Update) {
	processUpdate(ctx, b, b.handlers, u)
}

// processUpdate runs matching handlers until one of them stops the chain
func processUpdate(ctx context.Context, b Bot, handlers []Handler, u tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(ctx, updateTimeout)
	defer cancel()

	for _, handler := range handlers {
		if handler.Match(u) {
			handler.Handle(ctx, b, u)
			if !handler.Passthrough(u) {
				break
			}
		}
	}
}

// Start polls updates until ctx is done
func (b *TelegramBot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollingTimeout

	updates := b.api.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()
	for u := range updates {
		b.processUpdate(ctx, u)
	}
	log.Info().Msg("telegram bot stopped")
}

func (b *TelegramBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	message, err := b.api.Send(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to send")
	}
	return message, err
}

func NewTelegramBot(token string, handlers []Handler) (*TelegramBot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize bot")
	}
	log.Info().Str("username", botAPI.Self.UserName).Msg("telegram bot initialized")
	return &TelegramBot{
		UserName: botAPI.Self.UserName,
		api:      botAPI,
		handlers: handlers,
	}, nil
}
