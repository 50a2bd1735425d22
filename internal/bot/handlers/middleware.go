// Package handlers contains the Telegram command handlers, the deep-link
// payload router, and their registration logic and middleware.
package handlers

import (
	"context"
	"runtime/debug"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/akiratakt/dawnfm/internal/database"
)

const activityLogTimeout = 5 * time.Second

// Recover creates a middleware that catches panics escaping a handler and
// converts them into exactly one generic user-visible reply, so the webhook
// response never surfaces an unhandled fault for a user action.
func Recover(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				log := deps.Logger.With("middleware", "recover")
				log.ErrorContext(ctx, "Handler panicked", "panic", r, "stack", string(debug.Stack()))

				if update.Message == nil {
					return
				}
				_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
					ChatID:    update.Message.Chat.ID,
					Text:      deps.Config.Messages.GeneralError,
					ParseMode: models.ParseModeHTML,
				})
				if err != nil {
					log.ErrorContext(ctx, "Failed to send fallback reply", "error", err)
				}
			}()
			next(ctx, b, update)
		}
	}
}

// LogActivity creates a middleware that records the sender in the activity
// log. The write is fire-and-forget: it runs on its own goroutine with a
// detached context and its failure never reaches the main response path.
func LogActivity(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
			if update.Message != nil && update.Message.From != nil {
				go logUser(ctx, deps, update.Message)
			}
			next(ctx, b, update)
		}
	}
}

func logUser(ctx context.Context, deps HandlerDeps, msg *models.Message) {
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), activityLogTimeout)
	defer cancel()

	from := msg.From
	record := &database.UserRecord{
		UserID:       from.ID,
		IsBot:        from.IsBot,
		FirstName:    from.FirstName,
		LastName:     from.LastName,
		Username:     from.Username,
		LanguageCode: from.LanguageCode,
		IsPremium:    from.IsPremium,
		StartedAt:    time.Unix(int64(msg.Date), 0).UTC(),
	}
	if err := deps.Store.LogUser(logCtx, record); err != nil {
		deps.Logger.DebugContext(logCtx, "Activity log write failed", "user_id", from.ID, "error", err)
	}
}
