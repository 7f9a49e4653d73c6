package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	contentService "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/content/service"
	dispatchDomain "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/dispatch/domain"
	markdownService "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/markdown/service"
	mediaService "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/media/service"
	postDomain "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/post/domain"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/metrics"
	"github.com/samber/oops"
)

// Dispatcher delivers an assembled body and optional attachment
type Dispatcher interface {
	Send(ctx context.Context, body string, media *postDomain.MediaDescriptor) dispatchDomain.Outcome
}

// Service runs the per-post pipeline: select media, render, assemble, dispatch
type Service struct {
	assembler  *contentService.Assembler
	dispatcher Dispatcher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// New creates a new forward service
func New(assembler *contentService.Assembler, dispatcher Dispatcher, m *metrics.Metrics) *Service {
	return &Service{
		assembler:  assembler,
		dispatcher: dispatcher,
		metrics:    m,
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Forward delivers one post to the webhook. Panics inside the pipeline are
// turned into a failed outcome so one bad post cannot stop the bridge.
func (s *Service) Forward(ctx context.Context, post *postDomain.Post) (outcome dispatchDomain.Outcome) {
	forwardID := uuid.NewString()
	logger := s.logger.With("forward_id", forwardID, "chat_id", post.ChatID, "message_id", post.MessageID)

	defer func() {
		if r := recover(); r != nil {
			outcome = dispatchDomain.Failed(oops.
				In("forward").
				With("forward_id", forwardID, "message_id", post.MessageID).
				Errorf("panic while forwarding post: %v", r))
		}
		s.record(logger, outcome)
	}()

	media := mediaService.Select(post)
	rendered := markdownService.Render(post.Body(), post.Entities)
	body := s.assembler.Assemble(post, rendered)

	if media != nil {
		logger.Debug("Selected attachment", "kind", media.Kind, "filename", media.Filename)
	}

	return s.dispatcher.Send(ctx, body, media)
}

func (s *Service) record(logger *slog.Logger, outcome dispatchDomain.Outcome) {
	s.metrics.ObserveForward(outcome.Status.String(), outcome.Reason.String())

	switch outcome.Status {
	case dispatchDomain.OutcomeStatusSent:
		logger.Info("Forwarded post to Discord")
	case dispatchDomain.OutcomeStatusSentTextOnly:
		logger.Info("Forwarded post to Discord without attachment", "reason", outcome.Reason)
	default:
		logger.Error("Failed to forward post", "error", fmt.Sprintf("%+v", outcome.Err))
	}
}
