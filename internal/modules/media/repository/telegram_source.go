package repository

import (
	"context"
	"io"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/errors"
	"github.com/samber/oops"
)

// FileResolver is the part of *bot.Bot used to locate a file on Telegram's servers
type FileResolver interface {
	GetFile(ctx context.Context, params *bot.GetFileParams) (*models.File, error)
	FileDownloadLink(f *models.File) string
}

// TelegramSource implements Source by downloading files through the Bot API
type TelegramSource struct {
	resolver FileResolver
	client   *http.Client
}

// NewTelegramSource creates a Source backed by the Bot API file endpoint
func NewTelegramSource(resolver FileResolver, client *http.Client) *TelegramSource {
	return &TelegramSource{
		resolver: resolver,
		client:   client,
	}
}

func (s *TelegramSource) Fetch(ctx context.Context, sourceID string, limit int64) ([]byte, error) {
	errb := oops.In("media").With("file_id", sourceID)

	file, err := s.resolver.GetFile(ctx, &bot.GetFileParams{FileID: sourceID})
	if err != nil {
		return nil, errb.With("context", "failed to resolve file").Wrap(err)
	}
	if size := int64(file.FileSize); size > limit {
		return nil, &TooLargeError{SourceID: sourceID, Size: size, Limit: limit}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.resolver.FileDownloadLink(file), nil)
	if err != nil {
		return nil, errb.With("context", "failed to build download request").Wrap(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errb.With("context", "failed to download file").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errb.With("status", resp.StatusCode).Errorf("file download returned status %d", resp.StatusCode)
	}
	if resp.ContentLength > limit {
		return nil, &TooLargeError{SourceID: sourceID, Size: resp.ContentLength, Limit: limit}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errb.With("context", "failed to read file body").Wrap(err)
	}
	if int64(len(data)) > limit {
		return nil, &TooLargeError{SourceID: sourceID, Size: int64(len(data)), Limit: limit}
	}
	if len(data) == 0 {
		return nil, errb.Wrap(errors.ErrEmptyMedia)
	}

	return data, nil
}
