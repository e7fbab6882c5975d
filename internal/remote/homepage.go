package remote

import (
	"context"
	"fmt"
	"net/http"

	"travel-agency/internal/data/entity"
)

const (
	homepagePath      = "/api/homepage"
	adminHomepagePath = "/api/admin/homepage"
)

type HomepageClient struct {
	client *Client
}

func NewHomepageClient(client *Client) *HomepageClient {
	return &HomepageClient{client: client}
}

func (h *HomepageClient) Get(ctx context.Context) (entity.Homepage, error) {
	var doc entity.Homepage
	if err := h.client.Do(ctx, http.MethodGet, homepagePath, nil, &doc); err != nil {
		return entity.Homepage{}, fmt.Errorf("get homepage: %w", err)
	}
	return doc, nil
}

// Put persists doc and returns the document the backend echoes back.
func (h *HomepageClient) Put(ctx context.Context, doc entity.Homepage) (entity.Homepage, error) {
	var saved entity.Homepage
	if err := h.client.Do(ctx, http.MethodPut, adminHomepagePath, doc, &saved); err != nil {
		return entity.Homepage{}, fmt.Errorf("put homepage: %w", err)
	}
	return saved, nil
}
