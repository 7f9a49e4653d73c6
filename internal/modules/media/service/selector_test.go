package service

import (
	"testing"

	"github.com/reshetovitsme/telegram-discord-bridge/internal/modules/post/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_NoMedia(t *testing.T) {
	assert.Nil(t, Select(nil))
	assert.Nil(t, Select(&domain.Post{MessageID: 1, Text: "hi"}))
}

func TestSelect_PhotoBeatsDocument(t *testing.T) {
	post := &domain.Post{
		MessageID: 42,
		Media: []domain.Media{
			domain.Document{File: domain.File{FileID: "doc", Size: 10}, FileName: "report.pdf"},
			domain.Photo{Sizes: []domain.File{
				{FileID: "small", Size: 100},
				{FileID: "large", Size: 900},
			}},
		},
	}

	d := Select(post)
	require.NotNil(t, d)
	assert.Equal(t, domain.MediaKindPhoto, d.Kind)
	assert.Equal(t, "large", d.SourceID)
	assert.Equal(t, "photo_42.jpg", d.Filename)
	require.NotNil(t, d.DeclaredSize)
	assert.Equal(t, int64(900), *d.DeclaredSize)
}

func TestSelect_Priority(t *testing.T) {
	all := []domain.Media{
		domain.Sticker{File: domain.File{FileID: "sticker"}},
		domain.VideoNote{File: domain.File{FileID: "video_note"}},
		domain.Voice{File: domain.File{FileID: "voice"}},
		domain.Audio{File: domain.File{FileID: "audio"}},
		domain.Document{File: domain.File{FileID: "document"}},
		domain.Animation{File: domain.File{FileID: "animation"}},
		domain.Video{File: domain.File{FileID: "video"}},
	}

	// Removing the winner each round must expose the next kind in order
	want := []string{"video", "animation", "document", "audio", "voice", "video_note", "sticker"}
	for _, id := range want {
		d := Select(&domain.Post{MessageID: 1, Media: all})
		require.NotNil(t, d)
		assert.Equal(t, id, d.SourceID)
		all = removeByID(all, id)
	}
	assert.Nil(t, Select(&domain.Post{MessageID: 1, Media: all}))
}

func TestSelect_Filenames(t *testing.T) {
	tests := []struct {
		name  string
		media domain.Media
		want  string
	}{
		{"video default", domain.Video{File: domain.File{FileID: "f"}}, "video_7.mp4"},
		{"video named", domain.Video{File: domain.File{FileID: "f"}, FileName: "clip.mov"}, "clip.mov"},
		{"animation default", domain.Animation{File: domain.File{FileID: "f"}}, "animation_7.mp4"},
		{"document default", domain.Document{File: domain.File{FileID: "f"}}, "document_7"},
		{"document named", domain.Document{File: domain.File{FileID: "f"}, FileName: "a.zip"}, "a.zip"},
		{"audio default", domain.Audio{File: domain.File{FileID: "f"}}, "audio_7.mp3"},
		{"audio named", domain.Audio{File: domain.File{FileID: "f"}, FileName: "song.flac"}, "song.flac"},
		{"voice", domain.Voice{File: domain.File{FileID: "f"}}, "voice_7.ogg"},
		{"video note", domain.VideoNote{File: domain.File{FileID: "f"}}, "video_note_7.mp4"},
		{"static sticker", domain.Sticker{File: domain.File{FileID: "f"}}, "sticker_7.webp"},
		{"video sticker", domain.Sticker{File: domain.File{FileID: "f"}, IsVideo: true}, "sticker_7.webm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Select(&domain.Post{MessageID: 7, Media: []domain.Media{tt.media}})
			require.NotNil(t, d)
			assert.Equal(t, tt.want, d.Filename)
			assert.Equal(t, tt.media.Kind(), d.Kind)
		})
	}
}

func TestSelect_UnknownSize(t *testing.T) {
	d := Select(&domain.Post{MessageID: 1, Media: []domain.Media{domain.Voice{File: domain.File{FileID: "v"}}}})
	require.NotNil(t, d)
	assert.Nil(t, d.DeclaredSize)
	assert.False(t, d.ExceedsLimit(1))
}

func TestSelect_EmptyPhotoFallsThrough(t *testing.T) {
	d := Select(&domain.Post{MessageID: 1, Media: []domain.Media{
		domain.Photo{},
		domain.Audio{File: domain.File{FileID: "a"}},
	}})
	require.NotNil(t, d)
	assert.Equal(t, domain.MediaKindAudio, d.Kind)
}

func removeByID(media []domain.Media, id string) []domain.Media {
	out := make([]domain.Media, 0, len(media))
	for _, m := range media {
		if d := Select(&domain.Post{MessageID: 1, Media: []domain.Media{m}}); d != nil && d.SourceID == id {
			continue
		}
		out = append(out, m)
	}
	return out
}
