package media

import (
	"context"
	"io"
)

// Uploader persists an uploaded file and returns a durable public URL for it.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}
