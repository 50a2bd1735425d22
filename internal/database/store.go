package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Store defines the data access interface for the activity log.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// LogUser records a user the first time they are seen. Re-logging an
	// already-known user is a no-op, which keeps the write fire-and-forget
	// safe to repeat on every update.
	LogUser(ctx context.Context, user *UserRecord) error

	// AllUsers returns the full activity log keyed by user id, the shape
	// served by the /export endpoint.
	AllUsers(ctx context.Context) (map[int64]*UserRecord, error)

	// RunMaintenance performs periodic database housekeeping (VACUUM and
	// query-planner statistics refresh).
	RunMaintenance(ctx context.Context) error
}

type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store backed by sqlx. It requires a connected database
// handle; a nil logger falls back to a discarding one.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) LogUser(ctx context.Context, user *UserRecord) error {
	if user == nil {
		return fmt.Errorf("cannot log nil user")
	}
	if user.UserID == 0 {
		return fmt.Errorf("user record must have a non-zero user_id")
	}

	query := `
        INSERT OR IGNORE INTO users
            (user_id, is_bot, first_name, last_name, username, language_code, is_premium, started_at)
        VALUES
            (:user_id, :is_bot, :first_name, :last_name, :username, :language_code, :is_premium, :started_at);
    `
	result, err := s.db.NamedExecContext(ctx, query, user)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error logging user", "user_id", user.UserID, "error", err)
		return fmt.Errorf("failed to log user %d: %w", user.UserID, err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows > 0 {
		s.logger.InfoContext(ctx, "Logged new user", "user_id", user.UserID, "username", user.Username)
	}
	return nil
}

func (s *sqlxStore) AllUsers(ctx context.Context) (map[int64]*UserRecord, error) {
	var records []UserRecord
	if err := s.db.SelectContext(ctx, &records, `SELECT * FROM users ORDER BY user_id;`); err != nil {
		s.logger.ErrorContext(ctx, "Error fetching activity log", "error", err)
		return nil, fmt.Errorf("failed to fetch activity log: %w", err)
	}

	out := make(map[int64]*UserRecord, len(records))
	for i := range records {
		out[records[i].UserID] = &records[i]
	}
	return out, nil
}

func (s *sqlxStore) RunMaintenance(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Running database maintenance")

	if _, err := s.db.ExecContext(ctx, `ANALYZE;`); err != nil {
		return fmt.Errorf("failed to run ANALYZE: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `VACUUM;`); err != nil {
		return fmt.Errorf("failed to run VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance completed")
	return nil
}
