package httpapi

import (
	"context"
	"net/http"

	"post-pilot/internal/core/domain"
)

// RequestTempVideoUpload authorizes a main-video upload to temp storage.
func (c *Client) RequestTempVideoUpload(ctx context.Context, filename string, contentType string, sizeBytes int64) (*domain.TempUploadTarget, error) {
	body := struct {
		Filename    string `json:"filename"`
		ContentType string `json:"content_type"`
		SizeBytes   int64  `json:"size_bytes"`
	}{filename, contentType, sizeBytes}

	var out struct {
		TempStorageKey string       `json:"temp_storage_key"`
		Upload         grantPayload `json:"upload"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/uploads/temp-video", body, &out); err != nil {
		return nil, err
	}

	return &domain.TempUploadTarget{
		TempStorageKey: out.TempStorageKey,
		Grant:          out.Upload.toDomain(),
	}, nil
}

// GetTempVideoPlaybackURL returns a short-lived URL for the preview/trim
// UI, decoupled from the permanent CDN path used after publishing.
func (c *Client) GetTempVideoPlaybackURL(ctx context.Context, tempStorageKey string) (string, error) {
	var out struct {
		PlaybackURL string `json:"playback_url"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/uploads/temp-video/"+tempStorageKey+"/playback", nil, &out); err != nil {
		return "", err
	}
	return out.PlaybackURL, nil
}
