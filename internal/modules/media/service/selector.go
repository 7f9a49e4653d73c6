package service

import (
	"fmt"

	"github.com/reshetovitsme/telegram-discord-bridge/internal/modules/post/domain"
	"github.com/samber/lo"
)

// selectionOrder is the fixed priority in which attachment kinds are considered
var selectionOrder = []domain.MediaKind{
	domain.MediaKindPhoto,
	domain.MediaKindVideo,
	domain.MediaKindAnimation,
	domain.MediaKindDocument,
	domain.MediaKindAudio,
	domain.MediaKindVoice,
	domain.MediaKindVideoNote,
	domain.MediaKindSticker,
}

// Select picks at most one attachment from the post by fixed priority:
// photo, video, animation, document, audio, voice, video note, sticker.
func Select(post *domain.Post) *domain.MediaDescriptor {
	if post == nil || len(post.Media) == 0 {
		return nil
	}

	for _, kind := range selectionOrder {
		m, found := lo.Find(post.Media, func(m domain.Media) bool {
			return m.Kind() == kind
		})
		if !found {
			continue
		}
		if d := describe(m, post.MessageID); d != nil {
			return d
		}
	}

	return nil
}

func describe(m domain.Media, messageID int64) *domain.MediaDescriptor {
	switch v := m.(type) {
	case domain.Photo:
		largest, ok := v.Largest()
		if !ok {
			return nil
		}
		return newDescriptor(v.Kind(), largest, defaultName(v.Kind(), messageID, "jpg"))
	case domain.Video:
		return newDescriptor(v.Kind(), v.File, lo.CoalesceOrEmpty(v.FileName, defaultName(v.Kind(), messageID, "mp4")))
	case domain.Animation:
		return newDescriptor(v.Kind(), v.File, lo.CoalesceOrEmpty(v.FileName, defaultName(v.Kind(), messageID, "mp4")))
	case domain.Document:
		return newDescriptor(v.Kind(), v.File, lo.CoalesceOrEmpty(v.FileName, fmt.Sprintf("document_%d", messageID)))
	case domain.Audio:
		return newDescriptor(v.Kind(), v.File, lo.CoalesceOrEmpty(v.FileName, defaultName(v.Kind(), messageID, "mp3")))
	case domain.Voice:
		return newDescriptor(v.Kind(), v.File, defaultName(v.Kind(), messageID, "ogg"))
	case domain.VideoNote:
		return newDescriptor(v.Kind(), v.File, defaultName(v.Kind(), messageID, "mp4"))
	case domain.Sticker:
		ext := "webp"
		if v.IsVideo {
			ext = "webm"
		}
		return newDescriptor(v.Kind(), v.File, defaultName(v.Kind(), messageID, ext))
	default:
		return nil
	}
}

func newDescriptor(kind domain.MediaKind, f domain.File, filename string) *domain.MediaDescriptor {
	if f.FileID == "" {
		return nil
	}
	d := &domain.MediaDescriptor{
		Kind:     kind,
		SourceID: f.FileID,
		Filename: filename,
	}
	if f.Size > 0 {
		d.DeclaredSize = lo.ToPtr(f.Size)
	}
	return d
}

func defaultName(kind domain.MediaKind, messageID int64, ext string) string {
	return fmt.Sprintf("%s_%d.%s", kind, messageID, ext)
}
