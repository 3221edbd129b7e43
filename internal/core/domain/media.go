package domain

import (
	"io"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaKind identifies the role a file plays in a post.
type MediaKind string

const (
	MediaKindMainVideo    MediaKind = "main_video"
	MediaKindSampleVideo  MediaKind = "sample_video"
	MediaKindThumbnail    MediaKind = "thumbnail"
	MediaKindOgp          MediaKind = "ogp"
	MediaKindGalleryImage MediaKind = "gallery_image"
)

// Orientation is a coarse aspect-ratio class used by the backend to pick
// encoding and display profiles.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
	OrientationSquare    Orientation = "square"
)

// UploadStatus represents the transfer state of one media file.
type UploadStatus string

const (
	UploadStatusPending   UploadStatus = "pending"
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusDone      UploadStatus = "done"
	UploadStatusFailed    UploadStatus = "failed"
)

// MediaSource is an opaque handle to a local file. It is never serialized
// and never leaves the client.
type MediaSource interface {
	Name() string
	Size() int64
	ModTime() time.Time
	ContentType() string
	Open() (io.ReadCloser, error)
}

// UploadGrant is a time-limited authorization to push bytes directly to
// storage. The headers must be sent exactly as issued.
type UploadGrant struct {
	URL       string
	Method    string
	Headers   map[string]string
	ExpiresAt time.Time
}

// Expired reports whether the grant must not be used anymore.
func (g *UploadGrant) Expired(now time.Time) bool {
	return !g.ExpiresAt.IsZero() && now.After(g.ExpiresAt)
}

// MediaFile describes one file attached to a submission. A submission owns
// its MediaFile list exclusively; descriptors are never shared across
// concurrent submissions.
type MediaFile struct {
	ID              uuid.UUID
	Kind            MediaKind
	ContentType     string
	Extension       string
	Orientation     Orientation
	Source          MediaSource
	Grant           *UploadGrant
	ProgressPercent float64
	Status          UploadStatus
	UploadedAt      *time.Time
}

// AllowedMediaMimeTypes is a whitelist of supported media MIME types and
// their extensions. Deterministic on purpose, no OS mime database involved.
var AllowedMediaMimeTypes = map[string][]string{
	// Images
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
	"image/gif":  {".gif"},
	"image/bmp":  {".bmp"},
	"image/tiff": {".tif", ".tiff"},

	// Videos
	"video/mp4":        {".mp4"},
	"video/webm":       {".webm"},
	"video/quicktime":  {".mov"},
	"video/x-msvideo":  {".avi"},
	"video/x-matroska": {".mkv"},
}

// ExtensionForContentType derives the canonical file extension for a MIME
// type, or "" when the type is not supported.
func ExtensionForContentType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	exts, ok := AllowedMediaMimeTypes[mimeType]
	if !ok || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// IsVideoContentType reports whether the MIME type is a video type.
func IsVideoContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "video/")
}

// IsImageContentType reports whether the MIME type is an image type.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
