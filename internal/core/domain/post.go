package domain

// SubmissionMode distinguishes the create flow from the edit flow. Both
// share one pipeline; update may skip media that is already uploaded.
type SubmissionMode string

const (
	SubmissionModeCreate SubmissionMode = "create"
	SubmissionModeUpdate SubmissionMode = "update"
)

// Phase is the state of one post submission.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseCreatingPost    Phase = "creating_post"
	PhasePlanningUploads Phase = "planning_uploads"
	PhaseUploading       Phase = "uploading"
	PhaseBatchTriggering Phase = "batch_triggering"
	PhaseDone            Phase = "done"
	PhaseRollingBack     Phase = "rolling_back"
	PhaseFailed          Phase = "failed"
)

// PostMetadata is the form state the Content API needs to create or update
// the post record. The full schema is the API's concern.
type PostMetadata struct {
	Title       string
	Description string
}

// PostDraft carries everything one submission needs: the validated metadata,
// the attached files in submission order and, for video posts, the already
// staged main video.
type PostDraft struct {
	Mode      SubmissionMode
	PostID    string // update mode only
	Metadata  PostMetadata
	Files     []*MediaFile
	TempVideo *TempVideoSession
}

// FileByKind returns the first file of the given kind, or nil.
func (d *PostDraft) FileByKind(kind MediaKind) *MediaFile {
	for _, f := range d.Files {
		if f.Kind == kind {
			return f
		}
	}
	return nil
}

// SubmissionResult is the terminal outcome of a submission.
type SubmissionResult struct {
	PostID string
	Phase  Phase
}
