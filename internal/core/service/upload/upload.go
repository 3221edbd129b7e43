package upload

import (
	"log/slog"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

type uploaderService struct {
	transport port.GrantTransport
	logger    *slog.Logger
}

// NewUploaderService creates a new sequential uploader service
func NewUploaderService(transport port.GrantTransport, logger *slog.Logger) port.UploaderService {
	return &uploaderService{transport: transport, logger: logger}
}

// uploadRank fixes the transfer order: thumbnail and OGP may derive from a
// just-generated client-side image, so they go before the gallery while any
// in-memory source is still valid.
var uploadRank = map[domain.MediaKind]int{
	domain.MediaKindMainVideo:    0,
	domain.MediaKindSampleVideo:  1,
	domain.MediaKindThumbnail:    2,
	domain.MediaKindOgp:          3,
	domain.MediaKindGalleryImage: 4,
}
