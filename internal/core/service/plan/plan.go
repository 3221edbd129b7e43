package plan

import (
	"log/slog"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

type plannerService struct {
	api    port.ContentAPI
	logger *slog.Logger
}

// NewPlannerService creates a new upload planner service
func NewPlannerService(api port.ContentAPI, logger *slog.Logger) port.PlannerService {
	return &plannerService{api: api, logger: logger}
}

func planRequests(files []*domain.MediaFile) []port.UploadPlanRequest {
	requests := make([]port.UploadPlanRequest, 0, len(files))
	for _, f := range files {
		requests = append(requests, port.UploadPlanRequest{
			Kind:        f.Kind,
			ContentType: f.ContentType,
			Extension:   f.Extension,
			Orientation: f.Orientation,
		})
	}
	return requests
}
