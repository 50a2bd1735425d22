// Package tasks implements the scheduled background jobs of the bot:
// task definitions, dependencies, and registration.
package tasks

import (
	"log/slog"

	"github.com/akiratakt/dawnfm/internal/config"
	"github.com/akiratakt/dawnfm/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
