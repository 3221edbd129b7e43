package httpapi

import (
	"context"
	"net/http"

	"post-pilot/internal/core/domain"
)

type batchPayload struct {
	TempStorageKey    string   `json:"temp_storage_key"`
	NeedTrim          bool     `json:"need_trim"`
	StartSeconds      *float64 `json:"start_seconds,omitempty"`
	EndSeconds        *float64 `json:"end_seconds,omitempty"`
	MainOrientation   string   `json:"main_orientation"`
	SampleOrientation string   `json:"sample_orientation,omitempty"`
	ContentType       string   `json:"content_type"`
}

// TriggerBatchProcess hands the staged video off to server-side
// transcoding. The trim range only travels when the sample is derived by
// trimming.
func (c *Client) TriggerBatchProcess(ctx context.Context, req domain.BatchProcessRequest) error {
	body := batchPayload{
		TempStorageKey:    req.TempStorageKey,
		NeedTrim:          req.NeedTrim,
		MainOrientation:   string(req.MainOrientation),
		SampleOrientation: string(req.SampleOrientation),
		ContentType:       req.ContentType,
	}
	if req.NeedTrim {
		start, end := req.StartSeconds, req.EndSeconds
		body.StartSeconds = &start
		body.EndSeconds = &end
	}

	return c.doJSON(ctx, http.MethodPost, "/api/v1/posts/"+req.PostID+"/batch", body, nil)
}
