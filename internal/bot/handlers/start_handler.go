package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/akiratakt/dawnfm/internal/catalog"
	"github.com/akiratakt/dawnfm/internal/genius"
	"github.com/akiratakt/dawnfm/internal/render"
)

// NewStartHandler returns the handler for /start: it routes deep-link
// payloads to the matching response and falls back to the welcome message.
func NewStartHandler(deps HandlerDeps) bot.HandlerFunc {
	return startHandler{deps}.Handle
}

type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "start")

	msg := update.Message
	if msg == nil || msg.From == nil {
		log.WarnContext(ctx, "Start handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := msg.Chat.ID

	param := startParam(msg.Text)
	intent := ParsePayload(param)
	log.InfoContext(ctx, "Handling /start", "chat_id", chatID, "user_id", msg.From.ID, "intent", intent.Kind)

	ix := catalog.BuildIndex(h.deps.Catalog)

	switch intent.Kind {
	case IntentPlay:
		h.handlePlayLink(ctx, b, chatID, msg, intent.ID)
	case IntentLyrics:
		h.handleLyricsLink(ctx, b, chatID, intent.ID)
	case IntentPiece:
		h.handlePieceLink(ctx, b, chatID, msg, intent.ID)
	case IntentAlbum:
		h.handleAlbumLink(ctx, b, chatID, msg, ix, intent.ID)
	case IntentCategory:
		h.handleCategoryLink(ctx, b, chatID, ix, intent.ID)
	default:
		h.sendWelcome(ctx, b, chatID)
	}

	// The deep-link /start message is noise once answered.
	deleteIncoming(ctx, h.deps, b, chatID, msg.ID)
}

func (h startHandler) handlePlayLink(ctx context.Context, b *bot.Bot, chatID int64, msg *models.Message, trackID string) {
	track, ok := h.deps.Catalog.SongByID(trackID)
	if !ok {
		h.reply(ctx, b, chatID, "<b>Track not found!</b>")
		return
	}
	if err := sendTrack(ctx, h.deps, b, chatID, track, isPrivate(msg)); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to deliver track", "error", err, "track_id", trackID, "chat_id", chatID)
		sendGeneralError(ctx, h.deps, b, chatID)
	}
}

func (h startHandler) handleLyricsLink(ctx context.Context, b *bot.Bot, chatID int64, trackID string) {
	log := h.deps.Logger.With("handler", "start")

	track, ok := h.deps.Catalog.SongByID(trackID)
	if !ok {
		h.reply(ctx, b, chatID, "<b>Track not found!</b>")
		return
	}

	lyrics, err := h.deps.Lyrics.FetchLyrics(ctx, track.Artist, track.Title)
	if errors.Is(err, genius.ErrNotFound) {
		h.reply(ctx, b, chatID, fmt.Sprintf("<b>No lyrics found for [%s] by %s</b>", track.Title, track.Artist))
		return
	}
	if err != nil {
		log.ErrorContext(ctx, "Lyrics fetch failed", "error", err, "track_id", trackID)
		sendGeneralError(ctx, h.deps, b, chatID)
		return
	}

	h.reply(ctx, b, chatID, fmt.Sprintf("<b>Lyrics for [%s]</b>", track.Title))
	for _, chunk := range render.BoldChunks(render.SplitLines(lyrics, render.MaxMessageLen)) {
		if err := sendHTML(ctx, b, chatID, chunk); err != nil {
			log.ErrorContext(ctx, "Failed to send lyrics chunk", "error", err, "chat_id", chatID)
			return
		}
	}
}

func (h startHandler) handlePieceLink(ctx context.Context, b *bot.Bot, chatID int64, msg *models.Message, slug string) {
	tracks := h.deps.Catalog.SongsForSlug(slug)
	if len(tracks) == 0 {
		h.reply(ctx, b, chatID, fmt.Sprintf("<b>No tracks found for [%s].</b>", catalog.UnSlug(slug)))
		return
	}

	// Songs sharing a slug are assumed to share an album; the first match's
	// literal album name is canonical for the header and cover lookup.
	albumName := tracks[0].Album
	if err := sendAlbumHeader(ctx, h.deps, b, chatID, albumName); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send piece header", "error", err, "slug", slug)
		return
	}
	listing := render.TrackList(tracks, h.deps.botUsername(), isPrivate(msg))
	if err := sendChunked(ctx, b, chatID, listing); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send piece listing", "error", err, "slug", slug)
	}
}

func (h startHandler) handleAlbumLink(ctx context.Context, b *bot.Bot, chatID int64, msg *models.Message, ix *catalog.Index, code string) {
	albumName, ok := ix.AlbumName(code)
	if !ok {
		h.reply(ctx, b, chatID, "<b>Album not found!</b>")
		return
	}
	showAlbum(ctx, h.deps, b, chatID, albumName, isPrivate(msg))
}

func (h startHandler) handleCategoryLink(ctx context.Context, b *bot.Bot, chatID int64, ix *catalog.Index, code string) {
	tag, ok := ix.TagName(code)
	if !ok {
		h.reply(ctx, b, chatID, "<b>Category not found!</b>")
		return
	}
	showCategory(ctx, h.deps, b, chatID, tag)
}

func (h startHandler) sendWelcome(ctx context.Context, b *bot.Bot, chatID int64) {
	welcome := h.deps.Config.Messages.Welcome
	cover := h.deps.Config.Messages.WelcomeCover

	var err error
	if cover != "" {
		_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:    chatID,
			Photo:     &models.InputFileString{Data: cover},
			Caption:   welcome,
			ParseMode: models.ParseModeHTML,
		})
	} else {
		err = sendHTML(ctx, b, chatID, welcome)
	}
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send welcome message", "error", err, "chat_id", chatID)
	}
}

func (h startHandler) reply(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if err := sendHTML(ctx, b, chatID, text); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
	}
}
