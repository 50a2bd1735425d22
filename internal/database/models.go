package database

import "time"

// UserRecord is one row of the append-only activity log: the profile of a
// user the first time they interacted with the bot. The JSON tags define the
// shape of the /export payload.
type UserRecord struct {
	UserID       int64     `db:"user_id"       json:"id"`
	IsBot        bool      `db:"is_bot"        json:"is_bot"`
	FirstName    string    `db:"first_name"    json:"first_name"`
	LastName     string    `db:"last_name"     json:"last_name"`
	Username     string    `db:"username"      json:"username"`
	LanguageCode string    `db:"language_code" json:"language_code"`
	IsPremium    bool      `db:"is_premium"    json:"is_premium"`
	StartedAt    time.Time `db:"started_at"    json:"started_at"`
}
