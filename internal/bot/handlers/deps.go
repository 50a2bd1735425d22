package handlers

import (
	"log/slog"

	"github.com/akiratakt/dawnfm/internal/catalog"
	"github.com/akiratakt/dawnfm/internal/config"
	"github.com/akiratakt/dawnfm/internal/database"
	"github.com/akiratakt/dawnfm/internal/genius"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger  *slog.Logger
	Config  *config.Config
	Store   database.Store
	Catalog *catalog.Catalog
	Lyrics  genius.Client
}

func (d HandlerDeps) botUsername() string {
	if d.Config.Telegram.BotInfo == nil {
		return ""
	}
	return d.Config.Telegram.BotInfo.Username
}
