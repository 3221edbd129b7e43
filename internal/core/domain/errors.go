package domain

import (
	"errors"
	"fmt"
)

// ErrFileSizeTooBig is an error thrown when file size is too big
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrInvalidFileType is an error thrown when file type is invalid
var ErrInvalidFileType = errors.New("invalid file type")

// ErrInvalidTrimRange is an error thrown when a trim range is rejected
var ErrInvalidTrimRange = errors.New("invalid trim range")

// ErrNoTempVideo is an error thrown when no staged main video exists
var ErrNoTempVideo = errors.New("no staged main video")

// ErrOrientationUnresolved is an error thrown when a file reaches planning
// without a resolved orientation
var ErrOrientationUnresolved = errors.New("orientation unresolved")

// ErrGrantExpired is an error thrown when an upload grant expired before use
var ErrGrantExpired = errors.New("upload grant expired")

// ErrGrantUnauthorized is an error thrown when storage rejects a grant
var ErrGrantUnauthorized = errors.New("upload grant unauthorized")

// ErrUploadFailed is an error thrown when a byte transfer fails
var ErrUploadFailed = errors.New("upload failed")

// ErrPostCreateRejected is an error thrown when the post record cannot be
// created or updated
var ErrPostCreateRejected = errors.New("post create rejected")

// ErrPlanningRejected is an error thrown when an upload-authorization
// request is rejected
var ErrPlanningRejected = errors.New("upload planning rejected")

// ErrBatchTriggerRejected is an error thrown when the transcode trigger is
// rejected
var ErrBatchTriggerRejected = errors.New("batch trigger rejected")

// ErrSubmissionInFlight is an error thrown when a second submission starts
// while one is still running
var ErrSubmissionInFlight = errors.New("submission already in flight")

// SubmissionStage names the saga step a failure was classified under.
type SubmissionStage string

const (
	StagePostCreate   SubmissionStage = "post_create"
	StagePlanning     SubmissionStage = "planning"
	StageUpload       SubmissionStage = "upload"
	StageBatchTrigger SubmissionStage = "batch_trigger"
)

// SubmissionError carries the original failure together with the stage it
// occurred in, so the UI can render one structured reason.
type SubmissionError struct {
	Stage SubmissionStage
	Err   error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
