package service

import (
	"fmt"
	"strings"

	"github.com/reshetovitsme/telegram-discord-bridge/internal/modules/post/domain"
)

const (
	// MediaOnlyPlaceholder stands in for the body of posts without text
	MediaOnlyPlaceholder = "(media-only post)"
	// SubscribeLabel is the visible text of the footer link
	SubscribeLabel = "Subscribe on Telegram"

	defaultChannelTitle = "Telegram Channel"
)

// Assembler builds the final Discord message body
type Assembler struct {
	channelURL string
	showHeader bool
}

// New creates an Assembler. An empty channelURL disables the footer.
func New(channelURL string, showHeader bool) *Assembler {
	return &Assembler{
		channelURL: channelURL,
		showHeader: showHeader,
	}
}

// Assemble combines the rendered text with the optional header and the
// subscribe footer
func (a *Assembler) Assemble(post *domain.Post, rendered string) string {
	body := rendered
	if !post.HasBody() {
		body = MediaOnlyPlaceholder
	}

	var sb strings.Builder
	if a.showHeader {
		sb.WriteString(a.header(post.ChatTitle))
		sb.WriteString("\n")
	}
	sb.WriteString(body)

	if a.channelURL != "" {
		sb.WriteString("\n\n")
		// <url> keeps Discord from expanding a link preview
		fmt.Fprintf(&sb, "[%s](<%s>)", SubscribeLabel, a.channelURL)
	}

	return sb.String()
}

func (a *Assembler) header(title string) string {
	if title == "" {
		title = defaultChannelTitle
	}
	if a.channelURL != "" {
		return fmt.Sprintf("[%s](<%s>)", title, a.channelURL)
	}
	return fmt.Sprintf("**%s**", title)
}

// SizeNotice is the paragraph sent in place of an oversized attachment
func SizeNotice(size, limit int64) string {
	return fmt.Sprintf("Media skipped: %d bytes > limit %d bytes", size, limit)
}

// AppendSizeNotice appends SizeNotice to body as its own paragraph
func AppendSizeNotice(body string, size, limit int64) string {
	return body + "\n\n" + SizeNotice(size, limit)
}
