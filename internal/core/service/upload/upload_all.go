package upload

import (
	"context"
	"fmt"
	"sort"
	"time"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

// UploadAll transfers the planned files one at a time in a fixed kind
// order. Sequential on purpose: it keeps in-memory sources valid when their
// turn comes and keeps the aggregate-progress math simple. The first
// failure stops the run; nothing after it is attempted.
func (s *uploaderService) UploadAll(ctx context.Context, files []*domain.MediaFile, window domain.ProgressWindow, onProgress port.ProgressFunc) error {

	ordered := make([]*domain.MediaFile, len(files))
	copy(ordered, files)
	sort.SliceStable(ordered, func(i, j int) bool {
		return uploadRank[ordered[i].Kind] < uploadRank[ordered[j].Kind]
	})

	total := len(ordered)
	completed := 0

	for _, f := range ordered {
		if f.Grant == nil {
			f.Status = domain.UploadStatusFailed
			return fmt.Errorf("%w: no grant for %s %s", domain.ErrUploadFailed, f.Kind, f.ID)
		}
		// A grant must never be reused past its expiry; an expired grant
		// needs re-planning, not a retry, so it is surfaced distinctly.
		if f.Grant.Expired(time.Now()) {
			f.Status = domain.UploadStatusFailed
			return fmt.Errorf("%w: %s %s", domain.ErrGrantExpired, f.Kind, f.ID)
		}

		f.Status = domain.UploadStatusUploading
		err := s.transport.Upload(ctx, *f.Grant, f.Source, func(percent float64) {
			if percent < f.ProgressPercent {
				percent = f.ProgressPercent
			}
			f.ProgressPercent = percent
			if onProgress != nil {
				onProgress(window.Overall(total, completed, percent))
			}
		})
		if err != nil {
			f.Status = domain.UploadStatusFailed
			return fmt.Errorf("upload %s: %w", f.Kind, err)
		}

		now := time.Now()
		f.Status = domain.UploadStatusDone
		f.ProgressPercent = 100
		f.UploadedAt = &now
		completed++
		s.logger.Info("file uploaded", "kind", f.Kind, "file_id", f.ID)
		if onProgress != nil {
			onProgress(window.Overall(total, completed, 0))
		}
	}

	return nil
}
