// Package config provides configuration loading and validation for the bot:
// defaults, an optional YAML file, and BOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot/models"
	"github.com/spf13/viper"
)

// Config defines the application configuration. Values can be set through
// config.yaml or environment variables prefixed with BOT_
// (e.g. BOT_TELEGRAM_TOKEN).
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Genius    GeniusConfig    `mapstructure:"genius"`
	Export    ExportConfig    `mapstructure:"export"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LogConfig controls logger level and output format.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds bot authentication and webhook settings. BotInfo is
// filled in at startup from GetMe and is not read from configuration.
type TelegramConfig struct {
	Token      string `mapstructure:"token"       validate:"required"`
	WebhookURL string `mapstructure:"webhook_url" validate:"omitempty,url"`

	BotInfo *models.User `mapstructure:"-"`
}

// GeniusConfig holds the lyrics-provider API token. An empty token is valid
// and degrades lyrics lookups to "not found".
type GeniusConfig struct {
	Token string `mapstructure:"token"`
}

// ExportConfig holds the shared secret guarding the /export endpoint.
type ExportConfig struct {
	Secret string `mapstructure:"secret" validate:"required"`
}

// ServerConfig holds the HTTP listen address.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr" validate:"required"`
}

// DatabaseConfig holds the activity-log SQLite path.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// CatalogConfig holds the static catalog file locations. Covers and
// category synonyms are optional tables.
type CatalogConfig struct {
	SongsPath      string `mapstructure:"songs_path" validate:"required"`
	CoversPath     string `mapstructure:"covers_path"`
	CategoriesPath string `mapstructure:"categories_path"`
}

// SchedulerConfig holds the cron expression for the nightly store
// maintenance task.
type SchedulerConfig struct {
	MaintenanceCron string `mapstructure:"maintenance_cron" validate:"required"`
}

// MessagesConfig carries the operator-tunable reply texts.
type MessagesConfig struct {
	Welcome      string `mapstructure:"welcome"       validate:"required"`
	WelcomeCover string `mapstructure:"welcome_cover"`
	Help         string `mapstructure:"help"          validate:"required"`
	GeneralError string `mapstructure:"general_error" validate:"required"`
}

// Load reads configuration from the given file path (optional), layered over
// defaults and under BOT_* environment variables, then validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", true)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.webhook_url", "")

	v.SetDefault("genius.token", "")
	v.SetDefault("export.secret", "")

	v.SetDefault("server.listen_addr", ":8080")

	v.SetDefault("database.path", "storage.db")

	v.SetDefault("catalog.songs_path", "data/songs.json")
	v.SetDefault("catalog.covers_path", "data/covers.json")
	v.SetDefault("catalog.categories_path", "data/categories.json")

	v.SetDefault("scheduler.maintenance_cron", "0 4 * * *")

	v.SetDefault("messages.welcome", defaultWelcome)
	v.SetDefault("messages.welcome_cover", "")
	v.SetDefault("messages.help", defaultHelp)
	v.SetDefault("messages.general_error", "Sorry, something went wrong. Please try again.")
}

var defaultWelcome = strings.Join([]string{
	"<b><u>Welcome to [103.5]dawn.&#8203;fm!</u></b>",
	"<b><i>You're about to hear The Weeknd like never before.</i></b>\n",
	"<b>From mixtapes and demos to rare early tracks that built the legend.</b>",
	"<b>Live sessions, arena anthems and Memento Mori exclusives.</b>",
	"<b>Hidden cuts, instrumentals, remixes and collabs.</b>\n",
	"<b>Hit &lt;&lt; /category &gt;&gt; and get started...</b>",
	"<b>Tune in.</b>\n",
	"<b><i>“You are now listening to 103.5… DawnFM.”</i></b>",
}, "\n")

var defaultHelp = strings.Join([]string{
	"<b>dawn.&#8203;fm [103.5] Commands</b>\n",
	"<code>/start</code> – start dawn.&#8203;fm [103.5]",
	"<code>/search</code> – search for your songs",
	"<code>/play</code> – play a song by id or title",
	"<code>/category</code> – browse by category",
	"<code>/album</code> – search for an album",
	"<code>/help</code> – help for using dawn.&#8203;fm",
}, "\n")
