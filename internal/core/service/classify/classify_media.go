package classify

import (
	"context"

	"post-pilot/internal/core/domain"
)

// Classify inspects a local image or video and returns its geometry class.
// It never fails: probe errors and timeouts degrade to square, and the
// degraded result is cached like any other so the submission flow is never
// blocked on a broken file.
func (s *classifierService) Classify(ctx context.Context, src domain.MediaSource) domain.Orientation {
	key := cacheKey(src)

	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return cached
	}
	if pending, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		<-pending.done
		return pending.result
	}
	pending := &pendingClassification{done: make(chan struct{})}
	s.inflight[key] = pending
	s.mu.Unlock()

	result := s.probe(ctx, src)

	s.mu.Lock()
	s.cache[key] = result
	delete(s.inflight, key)
	s.mu.Unlock()

	pending.result = result
	close(pending.done)

	return result
}

type probeResult struct {
	width  int
	height int
	err    error
}

// probe runs the metadata decode under the classify timeout. The probe
// goroutine owns any handle it opened and releases it on its own exit
// paths; a timed-out probe is abandoned, not joined.
func (s *classifierService) probe(ctx context.Context, src domain.MediaSource) domain.Orientation {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resultCh := make(chan probeResult, 1)
	go func() {
		var r probeResult
		switch {
		case domain.IsImageContentType(src.ContentType()):
			r.width, r.height, r.err = s.imageProbe.Dimensions(ctx, src)
		case domain.IsVideoContentType(src.ContentType()):
			var meta *domain.VideoMetadata
			meta, r.err = s.videoProbe.Metadata(ctx, src)
			if r.err == nil {
				r.width, r.height = meta.Width, meta.Height
			}
		default:
			r.err = domain.ErrInvalidFileType
		}
		resultCh <- r
	}()

	select {
	case r := <-resultCh:
		if r.err != nil {
			s.logger.Warn("classification probe failed, defaulting to square", "file", src.Name(), "error", r.err)
			return domain.OrientationSquare
		}
		return orientationFor(r.width, r.height)
	case <-ctx.Done():
		s.logger.Warn("classification probe timed out, defaulting to square", "file", src.Name())
		return domain.OrientationSquare
	}
}
