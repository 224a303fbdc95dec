package ports

import (
	"context"
	"io"
)

// FileStorage keeps attachment bodies under generated names.
type FileStorage interface {
	Save(ctx context.Context, name string, body io.Reader) (int64, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}
