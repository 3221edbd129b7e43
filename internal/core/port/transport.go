package port

import (
	"context"
	"post-pilot/internal/core/domain"
)

// ProgressFunc receives a percentage in [0, 100]. Callers may rely on the
// values being monotonically non-decreasing.
type ProgressFunc func(percent float64)

// GrantTransport pushes the bytes of one local file to a granted upload
// destination, sending exactly the headers the grant prescribes.
type GrantTransport interface {
	Upload(ctx context.Context, grant domain.UploadGrant, src domain.MediaSource, onProgress ProgressFunc) error
}
