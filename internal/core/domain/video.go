package domain

// TrimRange marks the cut of the main video the sample clip is derived
// from. The range is metadata only; bytes are never cut client-side.
type TrimRange struct {
	StartSeconds float64
	EndSeconds   float64
}

// TempVideoSession represents a main video staged in temporary storage
// before the post record exists. It is consumed by the batch-processing
// trigger and simply dropped if the creator removes the video again; temp
// objects expire server-side.
type TempVideoSession struct {
	TempStorageKey  string
	PlaybackURL     string
	DurationSeconds float64
	Trim            *TrimRange
}

// TempUploadTarget is the authorization returned for a temp-storage upload.
type TempUploadTarget struct {
	TempStorageKey string
	Grant          UploadGrant
}

// VideoMetadata is the container-level information a probe reads without
// decoding frames.
type VideoMetadata struct {
	Width           int
	Height          int
	DurationSeconds float64
}

// BatchProcessRequest hands a staged video off to server-side transcoding.
// Start/End are only meaningful when NeedTrim is set.
type BatchProcessRequest struct {
	PostID            string
	TempStorageKey    string
	NeedTrim          bool
	StartSeconds      float64
	EndSeconds        float64
	MainOrientation   Orientation
	SampleOrientation Orientation
	ContentType       string
}
