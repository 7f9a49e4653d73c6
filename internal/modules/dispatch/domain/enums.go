//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// OutcomeStatus represents how a dispatch ended
// ENUM(sent,sent_text_only,failed)
type OutcomeStatus string

// TextOnlyReason explains why an attachment was left out
// ENUM(size_exceeded,media_unavailable)
type TextOnlyReason string
