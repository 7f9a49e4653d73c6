package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// DefaultMaxFileBytes is the attachment budget of a non-boosted Discord server.
const DefaultMaxFileBytes int64 = 8 * 1024 * 1024

type Config struct {
	TelegramBotToken  string  `koanf:"tg_bot_token"`
	TelegramAPIURL    string  `koanf:"telegram_api_url"`
	WebhookURL        string  `koanf:"telegram_discord_webhook_url"`
	ChannelURL        string  `koanf:"telegram_channel_url"`
	MaxFileBytes      int64   `koanf:"discord_max_file_bytes"`
	HTTPPort          string  `koanf:"http_port"`
	AppEnv            AppEnv  `koanf:"app_env"`
	AllowedChats      []int64 `koanf:"-"`
	ShowChannelHeader bool    `koanf:"show_channel_header"`

	WebhookRateLimit        float64       `koanf:"webhook_rate_limit"`
	WebhookRateBurst        int           `koanf:"webhook_rate_burst"`
	WebhookJSONTimeout      time.Duration `koanf:"webhook_json_timeout"`
	WebhookMultipartTimeout time.Duration `koanf:"webhook_multipart_timeout"`
	RetryMaxAttempts        int           `koanf:"retry_max_attempts"`
	RetryBaseDelay          time.Duration `koanf:"retry_base_delay"`
}

func Load() (*Config, error) {
	// A missing .env file is the normal case in containers
	_ = godotenv.Load(".env")

	k := koanf.New(".")

	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	defaults := map[string]any{
		"telegram_api_url":          "https://api.telegram.org",
		"discord_max_file_bytes":    DefaultMaxFileBytes,
		"http_port":                 "8080",
		"app_env":                   "production",
		"show_channel_header":       true,
		"webhook_rate_limit":        2.5,
		"webhook_rate_burst":        5,
		"webhook_json_timeout":      "15s",
		"webhook_multipart_timeout": "30s",
		"retry_max_attempts":        3,
		"retry_base_delay":          "1s",
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if allowedChats := k.Get("allowed_chats"); allowedChats != nil {
		switch v := allowedChats.(type) {
		case string:
			cfg.AllowedChats = ParseChatIDs(v)
		case []interface{}:
			cfg.AllowedChats = lo.FilterMap(v, func(item interface{}, _ int) (int64, bool) {
				switch val := item.(type) {
				case int64:
					return val, true
				case int:
					return int64(val), true
				case float64:
					return int64(val), true
				case string:
					ids := ParseChatIDs(val)
					return lo.FirstOrEmpty(ids), len(ids) == 1
				default:
					return 0, false
				}
			})
		}
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields the process cannot start without.
func (c *Config) Validate() error {
	if c.TelegramBotToken == "" {
		return errors.ErrMissingBotToken
	}
	if c.WebhookURL == "" {
		return errors.ErrMissingWebhookURL
	}
	if c.MaxFileBytes <= 0 {
		return oops.With("discord_max_file_bytes", c.MaxFileBytes).Wrap(errors.ErrInvalidMaxFileBytes)
	}
	if c.RetryMaxAttempts < 1 {
		c.RetryMaxAttempts = 1
	}
	return nil
}

// IsVerbose reports whether debug logging should be enabled.
func (c *Config) IsVerbose() bool {
	return c.AppEnv == AppEnvLocal || c.AppEnv == AppEnvDevelopment
}

// ParseChatIDs parses a comma-separated list of chat IDs into []int64
func ParseChatIDs(s string) []int64 {
	if s == "" {
		return []int64{}
	}
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (int64, bool) {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, false
		}
		var id int64
		if _, err := fmt.Sscanf(part, "%d", &id); err == nil {
			return id, true
		}
		return 0, false
	})
}
