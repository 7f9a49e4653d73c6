package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/dustin/go-humanize"
	contentService "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/content/service"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/modules/dispatch/domain"
	mediaRepo "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/media/repository"
	postDomain "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/post/domain"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/metrics"
	"github.com/samber/oops"
	"golang.org/x/time/rate"
)

const (
	formJSON      = "json"
	formMultipart = "multipart"

	// maxErrorBody caps how much of a failed response is kept in the error
	maxErrorBody = 2048
)

type webhookPayload struct {
	Content string `json:"content"`
}

// Client delivers rendered posts to the Discord webhook.
// It owns the shared HTTP client; call Shutdown once the process stops.
type Client struct {
	webhookURL string
	maxBytes   int64
	httpClient *http.Client
	source     mediaRepo.Source
	limiter    *rate.Limiter
	metrics    *metrics.Metrics
	logger     *slog.Logger

	maxAttempts      int
	baseDelay        time.Duration
	jsonTimeout      time.Duration
	multipartTimeout time.Duration
	notify           backoff.Notify

	shutdownOnce sync.Once
}

// Option configures a Client
type Option func(*Client)

// WithMaxAttempts sets the number of attempts per HTTP call (default: 3)
func WithMaxAttempts(n int) Option {
	return func(c *Client) { c.maxAttempts = n }
}

// WithBaseDelay sets the delay after the first failed attempt (default: 1s).
// Each further delay doubles.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) { c.baseDelay = d }
}

// WithTimeouts sets the per-attempt timeouts for JSON and multipart sends
func WithTimeouts(jsonTimeout, multipartTimeout time.Duration) Option {
	return func(c *Client) {
		c.jsonTimeout = jsonTimeout
		c.multipartTimeout = multipartTimeout
	}
}

// WithLimiter throttles webhook attempts. The default is unlimited.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRetryNotify registers a hook called before each backoff sleep
func WithRetryNotify(fn backoff.Notify) Option {
	return func(c *Client) { c.notify = fn }
}

// New creates a dispatch client for webhookURL. source supplies attachment
// bytes and is only consulted for media within maxBytes.
func New(webhookURL string, maxBytes int64, httpClient *http.Client, source mediaRepo.Source, opts ...Option) *Client {
	c := &Client{
		webhookURL:       webhookURL,
		maxBytes:         maxBytes,
		httpClient:       httpClient,
		source:           source,
		limiter:          rate.NewLimiter(rate.Inf, 0),
		logger:           slog.Default(),
		maxAttempts:      3,
		baseDelay:        time.Second,
		jsonTimeout:      15 * time.Second,
		multipartTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = 1
	}
	return c
}

// Send delivers body, with media attached when it fits the size budget.
//
// Media declared above the budget is never downloaded; the body is sent
// with a size notice instead. Media that cannot be fetched degrades to a
// text-only send as well.
func (c *Client) Send(ctx context.Context, body string, media *postDomain.MediaDescriptor) domain.Outcome {
	if media == nil {
		if err := c.sendJSON(ctx, body); err != nil {
			return domain.Failed(err)
		}
		return domain.Sent()
	}

	if media.ExceedsLimit(c.maxBytes) {
		c.logger.Info("Media above size limit, sending text only",
			"file_id", media.SourceID,
			"size", humanize.IBytes(uint64(*media.DeclaredSize)),
			"limit", humanize.IBytes(uint64(c.maxBytes)))
		return c.sendTextOnly(ctx, contentService.AppendSizeNotice(body, *media.DeclaredSize, c.maxBytes), domain.TextOnlyReasonSizeExceeded)
	}

	data, err := c.source.Fetch(ctx, media.SourceID, c.maxBytes)
	if err != nil {
		var tooLarge *mediaRepo.TooLargeError
		if errors.As(err, &tooLarge) {
			c.logger.Info("Downloaded media above size limit, sending text only",
				"file_id", media.SourceID,
				"size", humanize.IBytes(uint64(tooLarge.Size)))
			return c.sendTextOnly(ctx, contentService.AppendSizeNotice(body, tooLarge.Size, c.maxBytes), domain.TextOnlyReasonSizeExceeded)
		}
		if ctx.Err() != nil {
			return domain.Failed(oops.In("dispatch").Wrap(err))
		}
		c.logger.Warn("Failed to fetch media, sending text only", "file_id", media.SourceID, "error", err)
		return c.sendTextOnly(ctx, body, domain.TextOnlyReasonMediaUnavailable)
	}

	if err := c.sendMultipart(ctx, body, media.Filename, data); err != nil {
		return domain.Failed(err)
	}
	c.metrics.ObserveAttachment(len(data))
	return domain.Sent()
}

// Shutdown releases the pooled connections. Safe to call more than once.
func (c *Client) Shutdown() error {
	c.shutdownOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
	return nil
}

func (c *Client) sendTextOnly(ctx context.Context, body string, reason domain.TextOnlyReason) domain.Outcome {
	if err := c.sendJSON(ctx, body); err != nil {
		return domain.Failed(err)
	}
	return domain.SentTextOnly(reason)
}

func (c *Client) sendJSON(ctx context.Context, body string) error {
	payload, err := json.Marshal(webhookPayload{Content: body})
	if err != nil {
		return oops.In("dispatch").With("context", "failed to marshal payload").Wrap(err)
	}
	return c.post(ctx, formJSON, c.jsonTimeout, "application/json", payload)
}

func (c *Client) sendMultipart(ctx context.Context, body, filename string, data []byte) error {
	contentType, payload, err := buildMultipart(body, filename, data)
	if err != nil {
		return oops.In("dispatch").With("filename", filename, "context", "failed to build multipart body").Wrap(err)
	}
	return c.post(ctx, formMultipart, c.multipartTimeout, contentType, payload)
}

// post performs one webhook call with retries. Transient failures are
// retried with exponential backoff, anything else stops immediately.
func (c *Client) post(ctx context.Context, form string, timeout time.Duration, contentType string, payload []byte) error {
	attempt := 0
	operation := func() (struct{}, error) {
		attempt++
		if err := c.limiter.Wait(ctx); err != nil {
			return struct{}{}, backoff.Permanent(err)
		}

		err := c.do(ctx, timeout, contentType, payload)
		switch {
		case err == nil:
			c.metrics.ObserveAttempt(form, "ok")
			return struct{}{}, nil
		case domain.IsTemporary(err):
			c.metrics.ObserveAttempt(form, "transient")
			c.logger.Warn("Webhook attempt failed",
				"form", form,
				"attempt", attempt,
				"max_attempts", c.maxAttempts,
				"status", domain.StatusOf(err),
				"error", err)
			return struct{}{}, err
		default:
			c.metrics.ObserveAttempt(form, "permanent")
			return struct{}{}, backoff.Permanent(err)
		}
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.maxAttempts)),
		backoff.WithNotify(func(err error, delay time.Duration) {
			c.logger.Debug("Retrying webhook call", "form", form, "delay", delay)
			if c.notify != nil {
				c.notify(err, delay)
			}
		}),
	)
	if err == nil {
		return nil
	}

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}
	return oops.In("dispatch").
		With("form", form, "attempts", attempt, "status", domain.StatusOf(err)).
		Wrap(err)
}

func (c *Client) do(ctx context.Context, timeout time.Duration, contentType string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return domain.NewStatusError(resp.StatusCode, strings.TrimSpace(string(body)))
}

// newBackOff yields baseDelay, 2*baseDelay, 4*baseDelay... without jitter
func (c *Client) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.baseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = c.baseDelay << c.maxAttempts
	return b
}

func buildMultipart(content, filename string, data []byte) (string, []byte, error) {
	payload, err := json.Marshal(webhookPayload{Content: content})
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("payload_json", string(payload)); err != nil {
		return "", nil, err
	}
	part, err := w.CreateFormFile("files[0]", filename)
	if err != nil {
		return "", nil, err
	}
	if _, err := part.Write(data); err != nil {
		return "", nil, err
	}
	if err := w.Close(); err != nil {
		return "", nil, err
	}

	return w.FormDataContentType(), buf.Bytes(), nil
}
