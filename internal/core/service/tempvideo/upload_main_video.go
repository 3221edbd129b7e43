package tempvideo

import (
	"context"
	"fmt"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

// UploadMainVideo stages the main video in temporary storage before the
// post record exists and returns the session the preview/trim UI works on.
// The size limit is checked before any byte leaves the client.
func (s *tempVideoService) UploadMainVideo(ctx context.Context, src domain.MediaSource, onProgress port.ProgressFunc) (*domain.TempVideoSession, error) {

	if src.Size() > s.cfg.MaxVideoSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", domain.ErrFileSizeTooBig, src.Size(), s.cfg.MaxVideoSize)
	}
	if !domain.IsVideoContentType(src.ContentType()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFileType, src.ContentType())
	}

	target, err := s.api.RequestTempVideoUpload(ctx, src.Name(), src.ContentType(), src.Size())
	if err != nil {
		return nil, fmt.Errorf("could not authorize temp video upload: %w", err)
	}

	if err := s.transport.Upload(ctx, target.Grant, src, onProgress); err != nil {
		return nil, fmt.Errorf("temp video upload: %w", err)
	}

	playbackURL, err := s.api.GetTempVideoPlaybackURL(ctx, target.TempStorageKey)
	if err != nil {
		return nil, fmt.Errorf("could not get playback url: %w", err)
	}

	session := &domain.TempVideoSession{
		TempStorageKey: target.TempStorageKey,
		PlaybackURL:    playbackURL,
	}

	// Duration feeds trim validation. A probe failure leaves it unknown;
	// the upper bound is then skipped rather than blocking the flow.
	meta, err := s.videoProbe.Metadata(ctx, src)
	if err != nil {
		s.logger.Warn("could not probe video duration", "file", src.Name(), "error", err)
	} else {
		session.DurationSeconds = meta.DurationSeconds
	}

	return session, nil
}
