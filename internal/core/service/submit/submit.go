package submit

import (
	"log/slog"
	"sync"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

// Percentage consumed by each phase before the uploads start, and the
// budget the uploads may fill. Batch triggering takes the remainder; 100 is
// only ever reported together with the done phase.
const (
	progressPostCreated = 8.0
	progressPlanned     = 15.0
	progressUploaded    = 90.0
)

type submissionService struct {
	api        port.ContentAPI
	classifier port.ClassifierService
	planner    port.PlannerService
	uploader   port.UploaderService
	sink       port.ProgressSink
	logger     *slog.Logger

	mu          sync.Mutex
	phase       domain.Phase
	lastPercent float64
}

// NewSubmissionService creates a new submission saga. One service instance
// runs at most one submission at a time.
func NewSubmissionService(api port.ContentAPI, classifier port.ClassifierService, planner port.PlannerService, uploader port.UploaderService, sink port.ProgressSink, logger *slog.Logger) port.SubmissionService {
	return &submissionService{
		api:        api,
		classifier: classifier,
		planner:    planner,
		uploader:   uploader,
		sink:       sink,
		logger:     logger,
		phase:      domain.PhaseIdle,
	}
}

// Phase returns the current submission phase. The UI disables the submit
// action unless this is idle, done or failed.
func (s *submissionService) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// setPhase moves the saga into a phase and publishes one progress snapshot.
// The reported percentage never decreases across the whole submission.
func (s *submissionService) setPhase(phase domain.Phase, percent float64, message string) {
	s.mu.Lock()
	s.phase = phase
	if percent < s.lastPercent {
		percent = s.lastPercent
	}
	s.lastPercent = percent
	s.mu.Unlock()

	if s.sink != nil {
		s.sink.Publish(domain.ProgressUpdate{Phase: phase, OverallPercent: percent, Message: message})
	}
}

// reportUploading republishes the uploading phase with a fresh aggregate
// percentage while the byte transfers run.
func (s *submissionService) reportUploading(percent float64) {
	s.setPhase(domain.PhaseUploading, percent, "uploading media")
}
