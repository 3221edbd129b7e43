package source

import (
	"bytes"
	"io"
	"time"

	"post-pilot/internal/core/domain"
)

// Bytes is an in-memory MediaSource, used for client-side generated images
// and in tests.
type Bytes struct {
	name        string
	contentType string
	modTime     time.Time
	data        []byte
}

// NewBytes creates an in-memory media source.
func NewBytes(name, contentType string, modTime time.Time, data []byte) *Bytes {
	return &Bytes{name: name, contentType: contentType, modTime: modTime, data: data}
}

func (b *Bytes) Name() string        { return b.name }
func (b *Bytes) Size() int64         { return int64(len(b.data)) }
func (b *Bytes) ModTime() time.Time  { return b.modTime }
func (b *Bytes) ContentType() string { return b.contentType }

func (b *Bytes) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.data)), nil
}

var _ domain.MediaSource = (*Bytes)(nil)
