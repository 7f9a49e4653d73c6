package repository

import (
	"context"
	"fmt"
)

// Source defines how attachment bytes are obtained for a media source ID.
// Implementations must not return more than limit bytes; larger files
// are reported with *TooLargeError.
type Source interface {
	Fetch(ctx context.Context, sourceID string, limit int64) ([]byte, error)
}

// TooLargeError reports a file discovered to be above the byte limit
// only once it was resolved or downloaded
type TooLargeError struct {
	SourceID string
	Size     int64
	Limit    int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, limit is %d bytes", e.SourceID, e.Size, e.Limit)
}
