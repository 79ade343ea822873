// Package config manages application configuration from config.yaml,
// BOT_* environment variables, and default values.
package config

import (
	"time"

	"github.com/go-telegram/bot/models"
)

// Config holds the full application configuration.
type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Store     StoreConfig     `mapstructure:"store"`
	I18n      I18nConfig      `mapstructure:"i18n"`
	Router    RouterConfig    `mapstructure:"router"`
	Log       LogConfig       `mapstructure:"log"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// TelegramConfig holds the bot token and the support group identifier.
type TelegramConfig struct {
	Token         string `mapstructure:"token"           validate:"required"`
	SupportChatID int64  `mapstructure:"support_chat_id" validate:"required"`

	// BotInfo is populated at startup from GetMe and is not read from config.
	BotInfo *models.User `mapstructure:"-"`
}

// StoreConfig holds connection parameters for the Redis key-value backend.
type StoreConfig struct {
	Addr     string `mapstructure:"addr"     validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"       validate:"min=0"`

	// TicketTTL bounds how long a forwarded message keeps its mapping back
	// to the originating chat.
	TicketTTL time.Duration `mapstructure:"ticket_ttl" validate:"min=1m"`
}

// I18nConfig selects the process-wide default message catalog.
type I18nConfig struct {
	DefaultLanguage string `mapstructure:"default_language" validate:"required,oneof=en_US pt_BR ru_RU"`
}

// RouterConfig holds message-handling timeouts.
type RouterConfig struct {
	ForwardTimeout time.Duration `mapstructure:"forward_timeout" validate:"min=1s,max=5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

// SchedulerConfig holds per-task scheduling settings keyed by task name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a single scheduled task and sets its cron schedule.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}
