package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryError_Temporary(t *testing.T) {
	tests := []struct {
		name string
		err  *DeliveryError
		want bool
	}{
		{"network", NewNetworkError(context.DeadlineExceeded), true},
		{"rate limited", NewStatusError(429, "slow down"), true},
		{"server error", NewStatusError(500, ""), true},
		{"bad gateway", NewStatusError(502, ""), true},
		{"unavailable", NewStatusError(503, ""), true},
		{"bad request", NewStatusError(400, "bad"), false},
		{"unknown webhook", NewStatusError(404, `{"code": 10015}`), false},
		{"too large", NewStatusError(413, ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Temporary())
			assert.Equal(t, tt.want, IsTemporary(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestDeliveryError_Message(t *testing.T) {
	assert.Equal(t, "webhook returned status 400: bad payload", NewStatusError(400, "bad payload").Error())
	assert.Contains(t, NewNetworkError(context.Canceled).Error(), "context canceled")
	assert.ErrorIs(t, NewNetworkError(context.Canceled), context.Canceled)
	assert.Equal(t, 503, StatusOf(fmt.Errorf("x: %w", NewStatusError(503, ""))))
	assert.Equal(t, 0, StatusOf(context.Canceled))
}

func TestOutcome(t *testing.T) {
	assert.True(t, Sent().Delivered())
	assert.True(t, SentTextOnly(TextOnlyReasonSizeExceeded).Delivered())
	assert.False(t, Failed(context.Canceled).Delivered())
	assert.Equal(t, OutcomeStatusSentTextOnly, SentTextOnly(TextOnlyReasonMediaUnavailable).Status)
}
