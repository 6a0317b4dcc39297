package object

import (
	"context"
	"io"
)

// ObjectStore persists uploaded resume files. Save partitions objects by
// owner and returns an opaque storage key that Open accepts later.
type ObjectStore interface {
	Save(ctx context.Context, ownerID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
