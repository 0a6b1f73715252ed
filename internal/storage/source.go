package storage

import (
	"context"
	"errors"
)

// ErrTooLarge is returned when a fetched image exceeds the configured cap.
var ErrTooLarge = errors.New("storage: image exceeds size limit")

// ImageSource supplies raw image bytes to the validation engine. Sources
// never decode; the engine owns decoding so that its verdict covers the
// exact bytes the client uploaded.
type ImageSource interface {
	FetchBytes(ctx context.Context, ref string) ([]byte, error)
}
