package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/akiratakt/dawnfm/internal/catalog"
	"github.com/akiratakt/dawnfm/internal/render"
)

// lyricsPromptTTL is how long the ephemeral "Lyrics?" prompt stays visible
// before the best-effort retraction.
const lyricsPromptTTL = 2 * time.Second

func isPrivate(msg *models.Message) bool {
	return msg.Chat.Type == models.ChatTypePrivate
}

// sendHTML sends one HTML message with link previews disabled.
func sendHTML(ctx context.Context, b *bot.Bot, chatID int64, text string) error {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:             chatID,
		Text:               text,
		ParseMode:          models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: bot.True()},
	})
	return err
}

// sendChunked splits a multi-line text at the payload-size limit and sends
// the chunks strictly in order; the first send failure aborts the rest.
func sendChunked(ctx context.Context, b *bot.Bot, chatID int64, text string) error {
	for _, chunk := range render.SplitLines(text, render.MaxMessageLen) {
		if err := sendHTML(ctx, b, chatID, chunk); err != nil {
			return err
		}
	}
	return nil
}

// sendGeneralError emits the single user-visible fallback reply used when an
// upstream collaborator fails.
func sendGeneralError(ctx context.Context, deps HandlerDeps, b *bot.Bot, chatID int64) {
	if err := sendHTML(ctx, b, chatID, deps.Config.Messages.GeneralError); err != nil {
		deps.Logger.ErrorContext(ctx, "Failed to send fallback reply", "error", err, "chat_id", chatID)
	}
}

// deleteIncoming removes the original deep-link command message after the
// substantive reply has been sent. Best-effort: failure is logged at debug
// level and otherwise swallowed.
func deleteIncoming(ctx context.Context, deps HandlerDeps, b *bot.Bot, chatID int64, messageID int) {
	_, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: chatID, MessageID: messageID})
	if err != nil {
		deps.Logger.DebugContext(ctx, "Failed to delete incoming message", "error", err, "chat_id", chatID, "message_id", messageID)
	}
}

// sendAlbumHeader emits the detail-view header for an album: the cover as a
// photo (or animation for GIF covers) with the bolded name as caption, or a
// text-only header when no cover exists.
func sendAlbumHeader(ctx context.Context, deps HandlerDeps, b *bot.Bot, chatID int64, albumName string) error {
	header := render.Header(albumName)

	coverURL, ok := deps.Catalog.Cover(albumName)
	if !ok {
		return sendHTML(ctx, b, chatID, header)
	}

	if isGIF(coverURL) {
		_, err := b.SendAnimation(ctx, &bot.SendAnimationParams{
			ChatID:    chatID,
			Animation: &models.InputFileString{Data: coverURL},
			Caption:   header,
			ParseMode: models.ParseModeHTML,
		})
		return err
	}

	_, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:    chatID,
		Photo:     &models.InputFileString{Data: coverURL},
		Caption:   header,
		ParseMode: models.ParseModeHTML,
	})
	return err
}

// sendTrack delivers a song's audio with its caption. In private chats it
// follows up with an ephemeral "Lyrics?" prompt that deep-links back into
// the bot and is retracted a moment later, best-effort.
func sendTrack(ctx context.Context, deps HandlerDeps, b *bot.Bot, chatID int64, song catalog.Song, private bool) error {
	_, err := b.SendAudio(ctx, &bot.SendAudioParams{
		ChatID:    chatID,
		Audio:     &models.InputFileString{Data: song.FileID},
		Caption:   render.AudioCaption(song),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return err
	}

	if !private {
		return nil
	}

	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{{
			{Text: "Lyrics?", URL: render.DeepLink(deps.botUsername(), render.LyricsPayload(song.ID))},
		}},
	}
	prompt, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "...",
		ReplyMarkup: keyboard,
	})
	if err != nil {
		deps.Logger.DebugContext(ctx, "Failed to send lyrics prompt", "error", err, "chat_id", chatID)
		return nil
	}

	go func(promptID int) {
		retractCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		time.Sleep(lyricsPromptTTL)
		if _, err := b.DeleteMessage(retractCtx, &bot.DeleteMessageParams{ChatID: chatID, MessageID: promptID}); err != nil {
			deps.Logger.DebugContext(retractCtx, "Failed to retract lyrics prompt", "error", err, "chat_id", chatID)
		}
	}(prompt.ID)

	return nil
}

func isGIF(url string) bool {
	return strings.HasSuffix(strings.ToLower(url), ".gif")
}
