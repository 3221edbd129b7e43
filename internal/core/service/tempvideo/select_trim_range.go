package tempvideo

import (
	"fmt"

	"post-pilot/internal/core/domain"
)

// SelectTrimRange records the cut of the staged video the sample clip will
// be derived from. Pure state mutation: nothing is re-uploaded, the range
// travels later as metadata on the batch-processing trigger. A rejected
// range leaves the session untouched.
func (s *tempVideoService) SelectTrimRange(session *domain.TempVideoSession, startSeconds, endSeconds float64) error {
	if session == nil {
		return domain.ErrNoTempVideo
	}
	if startSeconds < 0 || startSeconds >= endSeconds {
		return fmt.Errorf("%w: start=%g end=%g", domain.ErrInvalidTrimRange, startSeconds, endSeconds)
	}
	if session.DurationSeconds > 0 && endSeconds > session.DurationSeconds {
		return fmt.Errorf("%w: end=%g exceeds duration %g", domain.ErrInvalidTrimRange, endSeconds, session.DurationSeconds)
	}
	if endSeconds-startSeconds > s.cfg.MaxSampleDuration {
		return fmt.Errorf("%w: range %gs exceeds max sample duration %gs", domain.ErrInvalidTrimRange, endSeconds-startSeconds, s.cfg.MaxSampleDuration)
	}

	session.Trim = &domain.TrimRange{StartSeconds: startSeconds, EndSeconds: endSeconds}
	return nil
}
