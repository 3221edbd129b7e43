package tempvideo

import (
	"log/slog"

	"post-pilot/internal/config"
	"post-pilot/internal/core/port"
)

type tempVideoService struct {
	api        port.ContentAPI
	transport  port.GrantTransport
	videoProbe port.VideoProbe
	cfg        config.UploadConfig
	logger     *slog.Logger
}

// NewTempVideoService creates a new temp video service
func NewTempVideoService(api port.ContentAPI, transport port.GrantTransport, videoProbe port.VideoProbe, cfg config.UploadConfig, logger *slog.Logger) port.TempVideoService {
	return &tempVideoService{
		api:        api,
		transport:  transport,
		videoProbe: videoProbe,
		cfg:        cfg,
		logger:     logger,
	}
}
