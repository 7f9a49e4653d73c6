package service

import (
	"context"
	"testing"

	contentService "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/content/service"
	dispatchDomain "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/dispatch/domain"
	postDomain "github.com/reshetovitsme/telegram-discord-bridge/internal/modules/post/domain"
	"github.com/reshetovitsme/telegram-discord-bridge/internal/shared/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	body    string
	media   *postDomain.MediaDescriptor
	outcome dispatchDomain.Outcome
	panics  bool
}

func (d *recordingDispatcher) Send(_ context.Context, body string, media *postDomain.MediaDescriptor) dispatchDomain.Outcome {
	if d.panics {
		panic("dispatcher exploded")
	}
	d.body = body
	d.media = media
	return d.outcome
}

func newService(d *recordingDispatcher, channelURL string) *Service {
	return New(contentService.New(channelURL, false), d, metrics.New(prometheus.NewRegistry()))
}

func TestForward_RendersEntitiesAndFooter(t *testing.T) {
	d := &recordingDispatcher{outcome: dispatchDomain.Sent()}
	svc := newService(d, "https://t.me/example")

	post := &postDomain.Post{
		MessageID: 10,
		Text:      "Hello 😀 world",
		Entities: []postDomain.Annotation{
			{Kind: postDomain.AnnotationKindTextLink, Offset: 6, Length: 2, URL: "https://example.org"},
		},
	}

	out := svc.Forward(context.Background(), post)

	assert.Equal(t, dispatchDomain.OutcomeStatusSent, out.Status)
	assert.Equal(t, "Hello [😀](https://example.org) world\n\n[Subscribe on Telegram](<https://t.me/example>)", d.body)
	assert.Nil(t, d.media)
}

func TestForward_CaptionWithMedia(t *testing.T) {
	d := &recordingDispatcher{outcome: dispatchDomain.Sent()}
	svc := newService(d, "")

	post := &postDomain.Post{
		MessageID: 11,
		Caption:   "look",
		Entities:  []postDomain.Annotation{{Kind: postDomain.AnnotationKindBold, Offset: 0, Length: 4}},
		Media: []postDomain.Media{
			postDomain.Document{File: postDomain.File{FileID: "doc"}},
			postDomain.Photo{Sizes: []postDomain.File{{FileID: "p1"}, {FileID: "p2"}}},
		},
	}

	svc.Forward(context.Background(), post)

	assert.Equal(t, "**look**", d.body)
	require.NotNil(t, d.media)
	assert.Equal(t, "p2", d.media.SourceID)
	assert.Equal(t, "photo_11.jpg", d.media.Filename)
}

func TestForward_MediaOnly(t *testing.T) {
	d := &recordingDispatcher{outcome: dispatchDomain.Sent()}
	svc := newService(d, "")

	svc.Forward(context.Background(), &postDomain.Post{
		MessageID: 12,
		Media:     []postDomain.Media{postDomain.Voice{File: postDomain.File{FileID: "v"}}},
	})

	assert.Equal(t, "(media-only post)", d.body)
}

func TestForward_RecoversPanics(t *testing.T) {
	svc := newService(&recordingDispatcher{panics: true}, "")

	var out dispatchDomain.Outcome
	assert.NotPanics(t, func() {
		out = svc.Forward(context.Background(), &postDomain.Post{Text: "x"})
	})
	assert.Equal(t, dispatchDomain.OutcomeStatusFailed, out.Status)
	assert.ErrorContains(t, out.Err, "dispatcher exploded")
}
