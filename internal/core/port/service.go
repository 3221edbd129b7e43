package port

import (
	"context"
	"post-pilot/internal/core/domain"
)

// ClassifierService classifies the geometry of a local media file. It never
// returns an error: unreadable input degrades to square.
type ClassifierService interface {
	Classify(ctx context.Context, src domain.MediaSource) domain.Orientation
}

// TempVideoService stages a main video in temporary storage ahead of post
// creation and manages the optional trim-range selection.
type TempVideoService interface {
	UploadMainVideo(ctx context.Context, src domain.MediaSource, onProgress ProgressFunc) (*domain.TempVideoSession, error)
	SelectTrimRange(session *domain.TempVideoSession, startSeconds, endSeconds float64) error
	Discard(session *domain.TempVideoSession)
}

// PlannerService requests upload grants for the media a post needs and
// assigns them back onto the descriptors.
type PlannerService interface {
	PlanUploads(ctx context.Context, postID string, files []*domain.MediaFile) error
}

// UploaderService transfers the planned files one at a time, reporting the
// aggregate percentage within the given window.
type UploaderService interface {
	UploadAll(ctx context.Context, files []*domain.MediaFile, window domain.ProgressWindow, onProgress ProgressFunc) error
}

// SubmissionService is the top-level saga: create the post record, upload
// media, trigger batch processing, roll the record back on partial failure.
type SubmissionService interface {
	Submit(ctx context.Context, draft *domain.PostDraft) (*domain.SubmissionResult, error)
	Phase() domain.Phase
}
