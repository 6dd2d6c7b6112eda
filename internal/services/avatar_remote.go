package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// NewHTTPAvatarLookup builds an AvatarLookup against an image-search service
// that answers GET <baseURL>?seed=<name> with {"url": "..."}.
func NewHTTPAvatarLookup(baseURL string) AvatarLookup {
	client := resty.New().SetTimeout(10 * time.Second)

	return func(ctx context.Context, seed string) (string, error) {
		var body struct {
			URL string `json:"url"`
		}

		resp, err := client.R().
			SetContext(ctx).
			SetQueryParam("seed", seed).
			SetResult(&body).
			Get(baseURL)
		if err != nil {
			return "", fmt.Errorf("avatar lookup request failed: %w", err)
		}
		if resp.IsError() {
			return "", fmt.Errorf("avatar lookup returned status %d", resp.StatusCode())
		}
		if body.URL == "" {
			return "", fmt.Errorf("avatar lookup returned no url")
		}
		return body.URL, nil
	}
}
