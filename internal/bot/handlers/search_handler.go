package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/akiratakt/dawnfm/internal/catalog"
	"github.com/akiratakt/dawnfm/internal/render"
)

// NewSearchHandler returns the handler for /search: song search by id or
// title substring, with hits grouped by album.
func NewSearchHandler(deps HandlerDeps) bot.HandlerFunc {
	return searchHandler{deps}.Handle
}

type searchHandler struct {
	deps HandlerDeps
}

func (h searchHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "search")

	msg := update.Message
	if msg == nil || msg.From == nil {
		log.WarnContext(ctx, "Search handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := msg.Chat.ID

	query := commandArgs(msg.Text)
	log.InfoContext(ctx, "Handling /search", "chat_id", chatID, "query", query)

	if query == "" {
		if err := sendHTML(ctx, b, chatID, "<b>Usage: /search &lt;song name&gt;</b>"); err != nil {
			log.ErrorContext(ctx, "Failed to send usage reply", "error", err, "chat_id", chatID)
		}
		return
	}

	cardinality, matches := catalog.Resolve(query, catalog.SongUniverse(h.deps.Catalog.Songs))
	if cardinality == catalog.NoMatch {
		if err := sendHTML(ctx, b, chatID, "<b>No songs matched.</b>"); err != nil {
			log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
		}
		return
	}

	var found []catalog.Song
	for _, m := range matches {
		if s, ok := h.deps.Catalog.SongByID(m.Key); ok {
			found = append(found, s)
		}
	}

	results := render.SearchResults(found, h.deps.botUsername())
	if err := sendChunked(ctx, b, chatID, results); err != nil {
		log.ErrorContext(ctx, "Failed to send search results", "error", err, "chat_id", chatID)
	}
}
