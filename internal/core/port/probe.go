package port

import (
	"context"
	"post-pilot/internal/core/domain"
)

// ImageProbe reads just enough of an image to know its pixel dimensions.
type ImageProbe interface {
	Dimensions(ctx context.Context, src domain.MediaSource) (width, height int, err error)
}

// VideoProbe reads container metadata only; it never decodes frames.
type VideoProbe interface {
	Metadata(ctx context.Context, src domain.MediaSource) (*domain.VideoMetadata, error)
}
