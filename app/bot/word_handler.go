package bot

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rbhz/word-lookup/app/lookup"
	"github.com/rbhz/word-lookup/app/render"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

const (
	replyMultipleWords = "Sorry only single words are supported"
	replyUnknownWord   = "Sorry, I don't know this word"
	replyFailed        = "Sorry, the dictionary is unavailable right now, try again later"
)

const (
	// messageLimit is the longest text Telegram accepts in one message
	messageLimit     = 4096
	meaningSeparator = "___"
)

// WordHandler handles word requests
type WordHandler struct {
	fetcher lookup.Fetcher
	neverPassthrough
}

// Match returns true if message is a text
func (h WordHandler) Match(u tgbotapi.Update) bool {
	return u.Message != nil && strings.TrimSpace(u.Message.Text) != "" && !u.Message.IsCommand()
}

// Handle looks the word up and sends the definitions with pronunciation
func (h WordHandler) Handle(ctx context.Context, b Bot, u tgbotapi.Update) {
	chatID := u.Message.Chat.ID
	word := strings.TrimSpace(u.Message.Text)
	if strings.Contains(word, " ") {
		_, _ = b.Send(tgbotapi.NewMessage(chatID, replyMultipleWords))
		return
	}

	result, err := lookup.Lookup(ctx, h.fetcher, strings.ToLower(word))
	if result != nil {
		// show the word as it was sent
		result = lookup.NewResult(word, result.Entries)
	}
	view := render.Derive(lookup.State{Word: word, Result: result, Err: err})
	switch {
	case view.NotFound():
		_, _ = b.Send(tgbotapi.NewMessage(chatID, replyUnknownWord))
		return
	case view.Failed():
		log.Error().Err(err).Str("word", word).Stringer("kind", view.Failure).Msg("failed to get word data")
		_, _ = b.Send(tgbotapi.NewMessage(chatID, replyFailed))
		return
	}

	body, err := render.TelegramMessage(view)
	if err != nil {
		log.Error().Err(err).Str("word", word).Msg("failed to format word message")
		_, _ = b.Send(tgbotapi.NewMessage(chatID, replyFailed))
		return
	}
	for _, chunk := range splitMessage(body, messageLimit) {
		text := tgbotapi.NewMessage(chatID, chunk)
		text.ParseMode = tgbotapi.ModeHTML
		if _, err := b.Send(text); err != nil {
			log.Error().Err(err).Str("word", word).Msg("failed to send word message")
			_, _ = b.Send(tgbotapi.NewMessage(chatID, replyFailed))
			return
		}
	}
	if view.Audio != "" {
		audio := tgbotapi.NewAudio(chatID, tgbotapi.FileURL(view.Audio))
		_, _ = b.Send(audio)
	}
}

// splitMessage cuts text into chunks of at most limit runes. Chunks end
// after meaning separators where possible, then at line breaks.
func splitMessage(text string, limit int) []string {
	var chunks []string
	var current string
	add := func(piece string) {
		if utf8.RuneCountInString(current)+utf8.RuneCountInString(piece) <= limit {
			current += piece
			return
		}
		if chunk := strings.TrimSpace(current); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current = piece
	}

	for _, section := range strings.SplitAfter(text, meaningSeparator) {
		if utf8.RuneCountInString(section) <= limit {
			add(section)
			continue
		}
		for _, line := range strings.SplitAfter(section, "\n") {
			for utf8.RuneCountInString(line) > limit {
				runes := []rune(line)
				add(string(runes[:limit]))
				line = string(runes[limit:])
			}
			add(line)
		}
	}
	if chunk := strings.TrimSpace(current); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// NewWordHandler creates new word handler
func NewWordHandler(fetcher lookup.Fetcher) WordHandler {
	return WordHandler{fetcher: fetcher}
}
