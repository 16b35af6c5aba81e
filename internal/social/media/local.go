package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalUploader writes files under a directory served as static content.
// Dev fallback when no object store is configured.
type LocalUploader struct {
	Dir     string
	BaseURL string
}

func (u *LocalUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + path.Ext(filename)
	dst := filepath.Join(u.Dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return u.BaseURL + "/" + name, nil
}
