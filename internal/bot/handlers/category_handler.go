package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/akiratakt/dawnfm/internal/catalog"
	"github.com/akiratakt/dawnfm/internal/render"
)

// NewCategoryHandler returns the handler for /category: a blank query lists
// every category, otherwise the query is resolved against canonical tag
// names into a not-found reply, a disambiguation list, or a tag detail view.
func NewCategoryHandler(deps HandlerDeps) bot.HandlerFunc {
	return categoryHandler{deps}.Handle
}

type categoryHandler struct {
	deps HandlerDeps
}

func (h categoryHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "category")

	msg := update.Message
	if msg == nil || msg.From == nil {
		log.WarnContext(ctx, "Category handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := msg.Chat.ID

	ix := catalog.BuildIndex(h.deps.Catalog)
	query := commandArgs(msg.Text)
	log.InfoContext(ctx, "Handling /category", "chat_id", chatID, "query", query)

	if query == "" {
		listing := render.AllCategories(ix.Tags, h.deps.botUsername())
		if err := sendChunked(ctx, b, chatID, listing); err != nil {
			log.ErrorContext(ctx, "Failed to send category listing", "error", err, "chat_id", chatID)
		}
		return
	}

	cardinality, matches := catalog.Resolve(query, catalog.CodedUniverse(ix.Tags))
	switch cardinality {
	case catalog.NoMatch:
		reply := fmt.Sprintf("<b>No categories matched [%s].</b>", query)
		if err := sendHTML(ctx, b, chatID, reply); err != nil {
			log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
		}
	case catalog.ManyMatches:
		choices := render.CategoryChoices(matches, h.deps.botUsername())
		if err := sendChunked(ctx, b, chatID, choices); err != nil {
			log.ErrorContext(ctx, "Failed to send category choices", "error", err, "chat_id", chatID)
		}
	case catalog.OneMatch:
		showCategory(ctx, h.deps, b, chatID, matches[0].Display)
	}
}

// showCategory emits the detail view for one canonical tag: every album
// carrying the tag with its matching tracks, chunked. Shared by the
// /category command and category deep links.
func showCategory(ctx context.Context, deps HandlerDeps, b *bot.Bot, chatID int64, tag string) {
	log := deps.Logger.With("handler", "category")

	tagged := deps.Catalog.SongsWithTag(tag)
	if len(tagged) == 0 {
		reply := fmt.Sprintf("<b>No albums in [%s].</b>", tag)
		if err := sendHTML(ctx, b, chatID, reply); err != nil {
			log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
		}
		return
	}

	var albums []string
	byAlbum := map[string][]catalog.Song{}
	for _, s := range tagged {
		if _, seen := byAlbum[s.Album]; !seen {
			albums = append(albums, s.Album)
		}
		byAlbum[s.Album] = append(byAlbum[s.Album], s)
	}

	listing := render.CategoryTracks(tag, albums, byAlbum, deps.botUsername())
	if err := sendChunked(ctx, b, chatID, listing); err != nil {
		log.ErrorContext(ctx, "Failed to send category tracks", "error", err, "tag", tag)
	}
}
