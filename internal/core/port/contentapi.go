package port

import (
	"context"
	"post-pilot/internal/core/domain"
)

// UploadPlanRequest describes one file an upload grant is requested for.
// The backend associates uploaded bytes with these entries positionally, so
// the slice order is part of the contract.
type UploadPlanRequest struct {
	Kind        domain.MediaKind
	ContentType string
	Extension   string
	Orientation domain.Orientation
}

// ContentAPI is an interface to the remote platform backend. Only the
// shapes the pipeline needs appear here; the full schemas are the API's
// concern.
type ContentAPI interface {
	CreatePost(ctx context.Context, meta domain.PostMetadata) (string, error)
	UpdatePost(ctx context.Context, postID string, meta domain.PostMetadata) error
	DeletePost(ctx context.Context, postID string) error

	RequestTempVideoUpload(ctx context.Context, filename string, contentType string, sizeBytes int64) (*domain.TempUploadTarget, error)
	GetTempVideoPlaybackURL(ctx context.Context, tempStorageKey string) (string, error)

	PlanImageUploads(ctx context.Context, postID string, requests []UploadPlanRequest) ([]domain.UploadGrant, error)
	PlanVideoUploads(ctx context.Context, postID string, requests []UploadPlanRequest) ([]domain.UploadGrant, error)
	GenerateOgpImage(ctx context.Context, postID string) error

	TriggerBatchProcess(ctx context.Context, req domain.BatchProcessRequest) error
}
