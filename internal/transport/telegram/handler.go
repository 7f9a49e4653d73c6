package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	dispatchDomain "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/dispatch/domain"
	postDomain "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/post/domain"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/config"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/errors"
	"github.com/samber/lo"
)

// Forwarder delivers a converted post
type Forwarder interface {
	Forward(ctx context.Context, post *postDomain.Post) dispatchDomain.Outcome
}

// Handler turns Telegram channel posts into forwards
type Handler struct {
	cfg       *config.Config
	forwarder Forwarder
	logger    *slog.Logger
}

// New creates a new Telegram handler
func New(cfg *config.Config, forwarder Forwarder) *Handler {
	return &Handler{
		cfg:       cfg,
		forwarder: forwarder,
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger
func (h *Handler) SetLogger(logger *slog.Logger) {
	h.logger = logger
}

// HandleUpdate processes incoming updates
func (h *Handler) HandleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Recovered from panic while handling update", "update_id", update.ID, "panic", fmt.Sprint(r))
		}
	}()

	// Channel posts normally arrive as ChannelPost; some clients deliver them as Message
	if update.ChannelPost != nil {
		h.processChannelPost(ctx, update.ChannelPost)
	} else if update.Message != nil && update.Message.Chat.Type == "channel" {
		h.processChannelPost(ctx, update.Message)
	}
}

func (h *Handler) processChannelPost(ctx context.Context, msg *models.Message) {
	if !h.isAllowed(msg.Chat.ID) {
		h.logger.Debug("Ignoring channel post", "chat_id", msg.Chat.ID, "reason", errors.ErrChatNotAllowed)
		return
	}

	h.forwarder.Forward(ctx, ToPost(msg))
}

func (h *Handler) isAllowed(chatID int64) bool {
	if len(h.cfg.AllowedChats) == 0 {
		return true
	}
	return lo.Contains(h.cfg.AllowedChats, chatID)
}

// ToPost converts a Telegram message into a Post
func ToPost(msg *models.Message) *postDomain.Post {
	post := &postDomain.Post{
		MessageID: int64(msg.ID),
		ChatID:    msg.Chat.ID,
		ChatTitle: msg.Chat.Title,
		Text:      msg.Text,
		Caption:   msg.Caption,
		Media:     extractMedia(msg),
	}

	// Entities describe Text; CaptionEntities describe Caption
	entities := msg.Entities
	if msg.Text == "" {
		entities = msg.CaptionEntities
	}
	post.Entities = lo.FilterMap(entities, func(e models.MessageEntity, _ int) (postDomain.Annotation, bool) {
		kind, err := postDomain.ParseAnnotationKind(string(e.Type))
		if err != nil {
			return postDomain.Annotation{}, false
		}
		return postDomain.Annotation{
			Kind:     kind,
			Offset:   int(e.Offset),
			Length:   int(e.Length),
			URL:      e.URL,
			Language: e.Language,
		}, true
	})

	return post
}

func extractMedia(msg *models.Message) []postDomain.Media {
	var media []postDomain.Media

	if len(msg.Photo) > 0 {
		media = append(media, postDomain.Photo{
			Sizes: lo.Map(msg.Photo, func(p models.PhotoSize, _ int) postDomain.File {
				return postDomain.File{FileID: p.FileID, Size: int64(p.FileSize)}
			}),
		})
	}

	if msg.Video != nil {
		media = append(media, postDomain.Video{
			File:     postDomain.File{FileID: msg.Video.FileID, Size: int64(msg.Video.FileSize)},
			FileName: msg.Video.FileName,
		})
	}

	if msg.Animation != nil {
		media = append(media, postDomain.Animation{
			File:     postDomain.File{FileID: msg.Animation.FileID, Size: int64(msg.Animation.FileSize)},
			FileName: msg.Animation.FileName,
		})
	}

	if msg.Document != nil {
		media = append(media, postDomain.Document{
			File:     postDomain.File{FileID: msg.Document.FileID, Size: int64(msg.Document.FileSize)},
			FileName: msg.Document.FileName,
		})
	}

	if msg.Audio != nil {
		media = append(media, postDomain.Audio{
			File:     postDomain.File{FileID: msg.Audio.FileID, Size: int64(msg.Audio.FileSize)},
			FileName: msg.Audio.FileName,
		})
	}

	if msg.Voice != nil {
		media = append(media, postDomain.Voice{
			File: postDomain.File{FileID: msg.Voice.FileID, Size: int64(msg.Voice.FileSize)},
		})
	}

	if msg.VideoNote != nil {
		media = append(media, postDomain.VideoNote{
			File: postDomain.File{FileID: msg.VideoNote.FileID, Size: int64(msg.VideoNote.FileSize)},
		})
	}

	if msg.Sticker != nil {
		media = append(media, postDomain.Sticker{
			File:    postDomain.File{FileID: msg.Sticker.FileID, Size: int64(msg.Sticker.FileSize)},
			IsVideo: msg.Sticker.IsVideo,
		})
	}

	return media
}
