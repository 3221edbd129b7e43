package port

import "post-pilot/internal/core/domain"

// ProgressSink receives the stream of submission progress snapshots. A sink
// must not block; slow consumers drop updates on their own side.
type ProgressSink interface {
	Publish(update domain.ProgressUpdate)
}
