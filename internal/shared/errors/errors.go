package errors

import "errors"

// Configuration errors are fatal at startup.
var (
	ErrMissingBotToken     = errors.New("TG_BOT_TOKEN environment variable is required")
	ErrMissingWebhookURL   = errors.New("TELEGRAM_DISCORD_WEBHOOK_URL environment variable is required")
	ErrInvalidMaxFileBytes = errors.New("DISCORD_MAX_FILE_BYTES must be a positive number")
)

var (
	ErrChatNotAllowed = errors.New("chat is not in the allowed list")
	ErrEmptyMedia     = errors.New("media source returned no bytes")
)
