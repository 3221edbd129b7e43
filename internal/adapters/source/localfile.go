package source

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"post-pilot/internal/core/domain"
)

// File is a MediaSource backed by a file on disk. Stat data is captured at
// construction so the classifier cache key stays stable for the handle's
// lifetime.
type File struct {
	path        string
	contentType string
	size        int64
	modTime     time.Time
}

// NewFile creates a file-backed media source. With an empty contentType the
// MIME type is derived from the extension.
func NewFile(path string, contentType string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(path))
	}

	return &File{
		path:        path,
		contentType: contentType,
		size:        info.Size(),
		modTime:     info.ModTime(),
	}, nil
}

func (f *File) Name() string        { return f.path }
func (f *File) Size() int64         { return f.size }
func (f *File) ModTime() time.Time  { return f.modTime }
func (f *File) ContentType() string { return f.contentType }

func (f *File) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

var _ domain.MediaSource = (*File)(nil)
