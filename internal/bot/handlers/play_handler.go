package handlers

import (
	"context"
	"math/rand/v2"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/akiratakt/dawnfm/internal/catalog"
	"github.com/akiratakt/dawnfm/internal/render"
)

// NewPlayHandler returns the handler for /play: a blank query plays a random
// track, otherwise the query is resolved against song ids and titles into a
// not-found reply, a disambiguation list, or direct audio delivery.
func NewPlayHandler(deps HandlerDeps) bot.HandlerFunc {
	return playHandler{deps}.Handle
}

type playHandler struct {
	deps HandlerDeps
}

func (h playHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "play")

	msg := update.Message
	if msg == nil || msg.From == nil {
		log.WarnContext(ctx, "Play handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := msg.Chat.ID
	private := isPrivate(msg)

	query := commandArgs(msg.Text)
	log.InfoContext(ctx, "Handling /play", "chat_id", chatID, "query", query)

	songs := h.deps.Catalog.Songs
	if query == "" {
		if len(songs) == 0 {
			return
		}
		h.deliver(ctx, b, chatID, songs[rand.IntN(len(songs))], private)
		return
	}

	cardinality, matches := catalog.Resolve(query, catalog.SongUniverse(songs))
	switch cardinality {
	case catalog.NoMatch:
		if err := sendHTML(ctx, b, chatID, "<b>No songs found.</b>"); err != nil {
			log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
		}
	case catalog.ManyMatches:
		choices := render.SongChoices(h.songsFor(matches), h.deps.botUsername(), private)
		if err := sendChunked(ctx, b, chatID, choices); err != nil {
			log.ErrorContext(ctx, "Failed to send song choices", "error", err, "chat_id", chatID)
		}
	case catalog.OneMatch:
		if song, ok := h.deps.Catalog.SongByID(matches[0].Key); ok {
			h.deliver(ctx, b, chatID, song, private)
		}
	}
}

func (h playHandler) deliver(ctx context.Context, b *bot.Bot, chatID int64, song catalog.Song, private bool) {
	if err := sendTrack(ctx, h.deps, b, chatID, song, private); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to deliver track", "error", err, "track_id", song.ID, "chat_id", chatID)
		sendGeneralError(ctx, h.deps, b, chatID)
	}
}

func (h playHandler) songsFor(entries []catalog.Entry) []catalog.Song {
	out := make([]catalog.Song, 0, len(entries))
	for _, e := range entries {
		if s, ok := h.deps.Catalog.SongByID(e.Key); ok {
			out = append(out, s)
		}
	}
	return out
}
