package httpput

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

// Uploader pushes bytes straight to the grant's destination over HTTP,
// bypassing the API server. No client-wide timeout: large uploads are
// bounded by the caller's context instead.
type Uploader struct {
	httpClient *http.Client
}

// NewUploader returns Uploader
func NewUploader() *Uploader {
	return &Uploader{httpClient: &http.Client{}}
}

// Upload streams the file to the granted destination with exactly the
// headers the grant prescribes. Progress is reported monotonically from 0
// to 100. Authorization rejections are distinguished from network failures
// because the former need re-planning, not a retry.
func (u *Uploader) Upload(ctx context.Context, grant domain.UploadGrant, src domain.MediaSource, onProgress port.ProgressFunc) error {

	if grant.Expired(time.Now()) {
		return fmt.Errorf("%w: expired at %s", domain.ErrGrantExpired, grant.ExpiresAt.Format(time.RFC3339))
	}

	body, err := src.Open()
	if err != nil {
		return fmt.Errorf("%w: could not open source: %w", domain.ErrUploadFailed, err)
	}
	defer body.Close()

	method := grant.Method
	if method == "" {
		method = http.MethodPut
	}

	req, err := http.NewRequestWithContext(ctx, method, grant.URL, newProgressReader(body, src.Size(), onProgress))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
	}
	req.ContentLength = src.Size()
	for key, value := range grant.Headers {
		req.Header.Set(key, value)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: storage returned %d", domain.ErrGrantUnauthorized, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("%w: storage returned %d", domain.ErrUploadFailed, resp.StatusCode)
	}

	if onProgress != nil {
		onProgress(100)
	}
	return nil
}
