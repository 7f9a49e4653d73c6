package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("TG_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_DISCORD_WEBHOOK_URL", "https://discord.test/api/webhooks/1/x")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxFileBytes, cfg.MaxFileBytes)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramAPIURL)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, AppEnvProduction, cfg.AppEnv)
	assert.Equal(t, 15*time.Second, cfg.WebhookJSONTimeout)
	assert.Equal(t, 30*time.Second, cfg.WebhookMultipartTimeout)
	assert.Equal(t, 3, cfg.RetryMaxAttempts)
	assert.Equal(t, time.Second, cfg.RetryBaseDelay)
	assert.Empty(t, cfg.ChannelURL)
	assert.Empty(t, cfg.AllowedChats)
	assert.True(t, cfg.ShowChannelHeader)
	assert.False(t, cfg.IsVerbose())
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_CHANNEL_URL", "https://t.me/example")
	t.Setenv("DISCORD_MAX_FILE_BYTES", "1024")
	t.Setenv("ALLOWED_CHATS", "-1001, -1002,bogus")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("RETRY_BASE_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://t.me/example", cfg.ChannelURL)
	assert.Equal(t, int64(1024), cfg.MaxFileBytes)
	assert.Equal(t, []int64{-1001, -1002}, cfg.AllowedChats)
	assert.Equal(t, AppEnvDevelopment, cfg.AppEnv)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryBaseDelay)
	assert.True(t, cfg.IsVerbose())
}

func TestLoad_ConfigFile(t *testing.T) {
	setRequired(t)
	content := "http_port: \"9090\"\nshow_channel_header: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(".", "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.False(t, cfg.ShowChannelHeader)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TG_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_DISCORD_WEBHOOK_URL", "")

	_, err := Load()
	assert.ErrorIs(t, err, errors.ErrMissingBotToken)

	t.Setenv("TG_BOT_TOKEN", "123:abc")
	_, err = Load()
	assert.ErrorIs(t, err, errors.ErrMissingWebhookURL)
}

func TestLoad_InvalidMaxFileBytes(t *testing.T) {
	setRequired(t)
	t.Setenv("DISCORD_MAX_FILE_BYTES", "0")

	_, err := Load()
	assert.ErrorIs(t, err, errors.ErrInvalidMaxFileBytes)
}

func TestParseChatIDs(t *testing.T) {
	assert.Empty(t, ParseChatIDs(""))
	assert.Equal(t, []int64{1, 2, 3}, ParseChatIDs("1, 2,,3"))
}
