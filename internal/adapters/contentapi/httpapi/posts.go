package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"post-pilot/internal/core/domain"
)

type postPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreatePost creates the post record and returns its id.
func (c *Client) CreatePost(ctx context.Context, meta domain.PostMetadata) (string, error) {
	var out struct {
		PostID string `json:"post_id"`
	}
	body := postPayload{Title: meta.Title, Description: meta.Description}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/posts", body, &out); err != nil {
		return "", err
	}
	if out.PostID == "" {
		return "", fmt.Errorf("content api returned empty post id")
	}
	return out.PostID, nil
}

// UpdatePost saves metadata changes on an existing post.
func (c *Client) UpdatePost(ctx context.Context, postID string, meta domain.PostMetadata) error {
	body := postPayload{Title: meta.Title, Description: meta.Description}
	return c.doJSON(ctx, http.MethodPut, "/api/v1/posts/"+postID, body, nil)
}

// DeletePost removes a post record. Used only for rollback.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/posts/"+postID, nil, nil)
}
