package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load loads and validates configuration from:
// 1. Default values
// 2. The config file at configFile, or ./config.yaml when configFile is empty
// 3. BOT_* environment variables (e.g. BOT_TELEGRAM_TOKEN)
func Load(configFile string) (*Config, error) {
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("BOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing file on the default search path is fine, everything can
	// come from env vars. An explicitly requested file must exist; viper
	// reports that as a plain path error, not ConfigFileNotFoundError.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every known key with viper so that environment
// variables are picked up during Unmarshal even without a config file.
func setDefaults() {
	viper.SetDefault("telegram.token", "")
	viper.SetDefault("telegram.support_chat_id", 0)

	viper.SetDefault("store.addr", DefaultStoreAddr)
	viper.SetDefault("store.password", "")
	viper.SetDefault("store.db", DefaultStoreDB)
	viper.SetDefault("store.ticket_ttl", DefaultTicketTTL)

	viper.SetDefault("i18n.default_language", DefaultLanguage)

	viper.SetDefault("router.forward_timeout", DefaultForwardTimeout)

	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.format", DefaultLogFormat)

	viper.SetDefault("scheduler.tasks", DefaultSchedulerTasks)
}
