package submit

import (
	"context"
	"fmt"

	"post-pilot/internal/core/domain"
)

// Submit runs one post submission end to end: create (or update) the post
// record, resolve orientations, request upload grants, push the bytes and,
// for video posts with a staged main file, trigger server-side batch
// processing. Any failure after a post record was created in this run rolls
// that record back, so no orphaned post is ever left behind.
func (s *submissionService) Submit(ctx context.Context, draft *domain.PostDraft) (*domain.SubmissionResult, error) {

	s.mu.Lock()
	switch s.phase {
	case domain.PhaseIdle, domain.PhaseDone, domain.PhaseFailed:
		s.phase = domain.PhaseCreatingPost
		s.lastPercent = 0
	default:
		s.mu.Unlock()
		return nil, domain.ErrSubmissionInFlight
	}
	s.mu.Unlock()

	s.setPhase(domain.PhaseCreatingPost, 0, "creating post")

	postID, created, err := s.createOrUpdatePost(ctx, draft)
	if err != nil {
		// Nothing to roll back: the record never came into existence here.
		return s.fail(ctx, "", false, &domain.SubmissionError{Stage: domain.StagePostCreate, Err: err})
	}

	s.setPhase(domain.PhasePlanningUploads, progressPostCreated, "planning uploads")

	pending := s.pendingFiles(ctx, draft)

	if err := s.planner.PlanUploads(ctx, postID, pending); err != nil {
		return s.fail(ctx, postID, created, &domain.SubmissionError{Stage: domain.StagePlanning, Err: err})
	}

	// No OGP image chosen means the server derives one. Always evaluated,
	// on both the create and the update path.
	if draft.FileByKind(domain.MediaKindOgp) == nil {
		if err := s.api.GenerateOgpImage(ctx, postID); err != nil {
			return s.fail(ctx, postID, created, &domain.SubmissionError{Stage: domain.StagePlanning, Err: err})
		}
	}

	s.setPhase(domain.PhaseUploading, progressPlanned, "uploading media")

	window := domain.ProgressWindow{Base: progressPlanned, Span: progressUploaded - progressPlanned}
	if err := s.uploader.UploadAll(ctx, pending, window, s.reportUploading); err != nil {
		return s.fail(ctx, postID, created, &domain.SubmissionError{Stage: domain.StageUpload, Err: err})
	}

	if draft.TempVideo != nil && draft.TempVideo.TempStorageKey != "" {
		s.setPhase(domain.PhaseBatchTriggering, progressUploaded, "processing video")

		if err := s.api.TriggerBatchProcess(ctx, s.batchRequest(postID, draft)); err != nil {
			return s.fail(ctx, postID, created, &domain.SubmissionError{Stage: domain.StageBatchTrigger, Err: err})
		}
	}

	s.setPhase(domain.PhaseDone, 100, "post published")
	s.logger.Info("submission complete", "post_id", postID, "mode", draft.Mode)

	return &domain.SubmissionResult{PostID: postID, Phase: domain.PhaseDone}, nil
}

func (s *submissionService) createOrUpdatePost(ctx context.Context, draft *domain.PostDraft) (string, bool, error) {
	if draft.Mode == domain.SubmissionModeUpdate {
		if draft.PostID == "" {
			return "", false, fmt.Errorf("%w: update without post id", domain.ErrPostCreateRejected)
		}
		if err := s.api.UpdatePost(ctx, draft.PostID, draft.Metadata); err != nil {
			return "", false, fmt.Errorf("%w: %w", domain.ErrPostCreateRejected, err)
		}
		return draft.PostID, false, nil
	}

	postID, err := s.api.CreatePost(ctx, draft.Metadata)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", domain.ErrPostCreateRejected, err)
	}
	return postID, true, nil
}

// pendingFiles resolves orientations and filters out media that is already
// uploaded, which the update flow must not push again. The API needs the
// orientation to pick encode targets, so it is resolved before any grant is
// requested.
func (s *submissionService) pendingFiles(ctx context.Context, draft *domain.PostDraft) []*domain.MediaFile {
	pending := make([]*domain.MediaFile, 0, len(draft.Files))
	for _, f := range draft.Files {
		if f.Orientation == "" && f.Source != nil {
			f.Orientation = s.classifier.Classify(ctx, f.Source)
		}
		if f.Kind == domain.MediaKindMainVideo {
			// already staged in temp storage, consumed by the batch trigger
			continue
		}
		if f.Status == domain.UploadStatusDone && f.Source == nil {
			continue
		}
		pending = append(pending, f)
	}
	return pending
}

func (s *submissionService) batchRequest(postID string, draft *domain.PostDraft) domain.BatchProcessRequest {
	req := domain.BatchProcessRequest{
		PostID:         postID,
		TempStorageKey: draft.TempVideo.TempStorageKey,
	}

	if main := draft.FileByKind(domain.MediaKindMainVideo); main != nil {
		req.MainOrientation = main.Orientation
		req.ContentType = main.ContentType
	}
	if sample := draft.FileByKind(domain.MediaKindSampleVideo); sample != nil {
		req.SampleOrientation = sample.Orientation
	}
	if trim := draft.TempVideo.Trim; trim != nil {
		req.NeedTrim = true
		req.StartSeconds = trim.StartSeconds
		req.EndSeconds = trim.EndSeconds
	}
	return req
}

// fail classifies the error, rolls back the post record created in this
// run (best effort, its own failure is logged and swallowed so it never
// masks the original error) and moves the saga to its terminal state.
func (s *submissionService) fail(ctx context.Context, postID string, created bool, stageErr *domain.SubmissionError) (*domain.SubmissionResult, error) {
	if created && postID != "" {
		// percentage stays where it was; setPhase never lets it decrease
		s.setPhase(domain.PhaseRollingBack, 0, "rolling back post")

		// Rollback must still run when the submission ctx was cancelled.
		rollbackCtx := context.WithoutCancel(ctx)
		if err := s.api.DeletePost(rollbackCtx, postID); err != nil {
			s.logger.Error("rollback delete failed, post may be orphaned", "post_id", postID, "error", err)
		} else {
			s.logger.Info("rolled back post", "post_id", postID)
		}
	}

	s.setPhase(domain.PhaseFailed, 0, stageErr.Error())
	s.logger.Error("submission failed", "stage", stageErr.Stage, "error", stageErr.Err)

	return nil, stageErr
}
