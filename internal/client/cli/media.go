package cli

import (
	"context"
	"mime"
	"os"
	"path/filepath"

	"github.com/afristyle/afristyle/internal/netx"
)

// Upload reads an image file, asks the backend for a presigned URL and PUTs
// the bytes straight to object storage. The printed storage key is what a
// designer submission references later.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Image file path", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.log.Error(ctx, "upload read failed", "path", path, "error", err)
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, uploadURL, err := a.client.GetUploadURL(ctx, contentType)
	if err != nil {
		a.log.Error(ctx, "upload url request failed", "error", err)
		return err
	}

	if err := netx.UploadToPresignedURL(ctx, uploadURL, contentType, data); err != nil {
		a.log.Error(ctx, "upload failed", "key", key, "error", err)
		return err
	}

	printlnFn("Uploaded as", key)
	return nil
}
