package httpput

import (
	"io"

	"post-pilot/internal/core/port"
)

// progressReader counts the bytes the HTTP transport pulls through it and
// reports the fraction of the total. With an unknown total it stays silent;
// the uploader reports 100 once the transfer is confirmed.
type progressReader struct {
	inner      io.Reader
	total      int64
	read       int64
	lastReport float64
	onProgress port.ProgressFunc
}

func newProgressReader(inner io.Reader, total int64, onProgress port.ProgressFunc) *progressReader {
	return &progressReader{inner: inner, total: total, onProgress: onProgress}
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 {
		r.read += int64(n)
		r.report()
	}
	return n, err
}

func (r *progressReader) report() {
	if r.onProgress == nil || r.total <= 0 {
		return
	}
	percent := float64(r.read) / float64(r.total) * 100
	if percent > 100 {
		percent = 100
	}
	if percent <= r.lastReport {
		return
	}
	r.lastReport = percent
	r.onProgress(percent)
}
