package storage

import (
	"context"
	"fmt"

	"github.com/precious1994-dev/APP-PORT/config"
)

// Store persists an uploaded asset under a caller-chosen name and returns
// the externally reachable URL for it. Implementations must not leave a
// partial object behind on failure.
type Store interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// NewFromConfig selects the upload store. The local-disk store is the
// default; UPLOAD_STORE=s3 switches to the object store.
func NewFromConfig(ctx context.Context, c map[string]string) (Store, error) {
	switch kind := config.GetString(c, "UPLOAD_STORE", "local"); kind {
	case "local":
		return NewLocalStore(
			config.GetString(c, "UPLOAD_DIR", "public/uploads"),
			config.GetString(c, "UPLOAD_PUBLIC_PATH", "/uploads"),
		), nil
	case "s3":
		return NewS3Store(ctx, c)
	default:
		return nil, fmt.Errorf("unknown UPLOAD_STORE %q", kind)
	}
}
