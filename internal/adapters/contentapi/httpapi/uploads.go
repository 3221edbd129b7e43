package httpapi

import (
	"context"
	"net/http"

	"post-pilot/internal/core/domain"
	"post-pilot/internal/core/port"
)

type planEntry struct {
	Kind        string `json:"kind"`
	ContentType string `json:"content_type"`
	Extension   string `json:"extension"`
	Orientation string `json:"orientation"`
}

type planRequestPayload struct {
	Files []planEntry `json:"files"`
}

type planResponsePayload struct {
	Grants []grantPayload `json:"grants"`
}

func (c *Client) planUploads(ctx context.Context, path string, requests []port.UploadPlanRequest) ([]domain.UploadGrant, error) {
	body := planRequestPayload{Files: make([]planEntry, 0, len(requests))}
	for _, r := range requests {
		body.Files = append(body.Files, planEntry{
			Kind:        string(r.Kind),
			ContentType: r.ContentType,
			Extension:   r.Extension,
			Orientation: string(r.Orientation),
		})
	}

	var out planResponsePayload
	if err := c.doJSON(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}

	grants := make([]domain.UploadGrant, 0, len(out.Grants))
	for _, g := range out.Grants {
		grants = append(grants, g.toDomain())
	}
	return grants, nil
}

// PlanImageUploads requests grants for thumbnail, OGP and gallery images.
// Grant order matches request order; the backend associates bytes with
// entries positionally.
func (c *Client) PlanImageUploads(ctx context.Context, postID string, requests []port.UploadPlanRequest) ([]domain.UploadGrant, error) {
	return c.planUploads(ctx, "/api/v1/posts/"+postID+"/uploads/images", requests)
}

// PlanVideoUploads requests grants for the sample video.
func (c *Client) PlanVideoUploads(ctx context.Context, postID string, requests []port.UploadPlanRequest) ([]domain.UploadGrant, error) {
	return c.planUploads(ctx, "/api/v1/posts/"+postID+"/uploads/videos", requests)
}

// GenerateOgpImage asks the backend to derive an OGP image server-side when
// the creator supplied none.
func (c *Client) GenerateOgpImage(ctx context.Context, postID string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/posts/"+postID+"/ogp/generate", nil, nil)
}
