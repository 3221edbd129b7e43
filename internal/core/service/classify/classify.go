package classify

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"post-pilot/internal/config"
	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

type classifierService struct {
	imageProbe port.ImageProbe
	videoProbe port.VideoProbe
	timeout    time.Duration
	logger     *slog.Logger

	mu       sync.Mutex
	cache    map[string]domain.Orientation
	inflight map[string]*pendingClassification
}

// pendingClassification lets every caller of an in-flight key await the one
// running probe instead of issuing a second decode.
type pendingClassification struct {
	done   chan struct{}
	result domain.Orientation
}

// NewClassifierService creates a new classifier service. Cache and in-flight
// state are owned by the instance, not the process.
func NewClassifierService(imageProbe port.ImageProbe, videoProbe port.VideoProbe, cfg config.UploadConfig, logger *slog.Logger) port.ClassifierService {
	return &classifierService{
		imageProbe: imageProbe,
		videoProbe: videoProbe,
		timeout:    cfg.ClassifyTimeout,
		logger:     logger,
		cache:      make(map[string]domain.Orientation),
		inflight:   make(map[string]*pendingClassification),
	}
}

// cacheKey identifies a file object: same name, size, mtime and content
// type means the earlier classification still holds.
func cacheKey(src domain.MediaSource) string {
	return fmt.Sprintf("%s|%d|%d|%s", src.Name(), src.Size(), src.ModTime().UnixNano(), src.ContentType())
}

// orientationFor applies the ratio thresholds the encode profiles are
// keyed on.
func orientationFor(width, height int) domain.Orientation {
	if width <= 0 || height <= 0 {
		return domain.OrientationSquare
	}
	ratio := float64(width) / float64(height)
	switch {
	case ratio > 1.1:
		return domain.OrientationLandscape
	case ratio < 0.9:
		return domain.OrientationPortrait
	default:
		return domain.OrientationSquare
	}
}
