package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/akiratakt/dawnfm/internal/catalog"
	"github.com/akiratakt/dawnfm/internal/render"
)

// NewAlbumHandler returns the handler for /album: a blank query lists every
// album, otherwise the query is resolved against album names into a not
// found reply, a disambiguation list, or a single-album detail view.
func NewAlbumHandler(deps HandlerDeps) bot.HandlerFunc {
	return albumHandler{deps}.Handle
}

type albumHandler struct {
	deps HandlerDeps
}

func (h albumHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "album")

	msg := update.Message
	if msg == nil || msg.From == nil {
		log.WarnContext(ctx, "Album handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := msg.Chat.ID
	private := isPrivate(msg)

	ix := catalog.BuildIndex(h.deps.Catalog)
	query := commandArgs(msg.Text)
	log.InfoContext(ctx, "Handling /album", "chat_id", chatID, "query", query)

	if query == "" {
		listing := render.AllAlbums(ix.Albums, h.deps.botUsername(), private)
		if err := sendChunked(ctx, b, chatID, listing); err != nil {
			log.ErrorContext(ctx, "Failed to send album listing", "error", err, "chat_id", chatID)
		}
		return
	}

	cardinality, matches := catalog.Resolve(query, catalog.CodedUniverse(ix.Albums))
	switch cardinality {
	case catalog.NoMatch:
		if err := sendHTML(ctx, b, chatID, "<b>No albums matched.</b>"); err != nil {
			log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
		}
	case catalog.ManyMatches:
		choices := render.AlbumChoices(matches, h.deps.botUsername(), private)
		if err := sendChunked(ctx, b, chatID, choices); err != nil {
			log.ErrorContext(ctx, "Failed to send album choices", "error", err, "chat_id", chatID)
		}
	case catalog.OneMatch:
		showAlbum(ctx, h.deps, b, chatID, matches[0].Display, private)
	}
}

// showAlbum emits the single-album detail view: header with cover, then the
// chunked track listing. Shared by the /album command and album/piece deep
// links.
func showAlbum(ctx context.Context, deps HandlerDeps, b *bot.Bot, chatID int64, albumName string, private bool) {
	log := deps.Logger.With("handler", "album")

	if err := sendAlbumHeader(ctx, deps, b, chatID, albumName); err != nil {
		log.ErrorContext(ctx, "Failed to send album header", "error", err, "album", albumName)
		return
	}

	tracks := deps.Catalog.SongsInAlbum(albumName)
	listing := render.TrackList(tracks, deps.botUsername(), private)
	if err := sendChunked(ctx, b, chatID, listing); err != nil {
		log.ErrorContext(ctx, "Failed to send track listing", "error", err, "album", albumName)
	}
}
