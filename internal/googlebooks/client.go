// Package googlebooks is a small client for the Google Books volumes API,
// the upstream that powers the public book search. Only the handful of
// fields the catalog stores are decoded; everything else in the (large)
// volume payload is ignored.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bookworm-labs/bookvault/internal/model"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// Client performs volume searches against the Google Books API. APIKey is
// optional; when set it is appended to every request, which raises the
// upstream quota.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
}

// NewClient returns a Client with a bounded request timeout. The timeout
// doubles as our only defense against a slow upstream: there is no retry.
func NewClient(apiKey string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
	}
}

// volumesResponse mirrors the slice of the upstream payload we care about.
type volumesResponse struct {
	Items []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title       string   `json:"title"`
			Authors     []string `json:"authors"`
			Description string   `json:"description"`
			ImageLinks  struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
			InfoLink string `json:"infoLink"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Search queries the volumes endpoint for q and returns up to maxResults
// books. A query matching nothing yields an empty slice, not an error.
func (c *Client) Search(ctx context.Context, q string, maxResults int) ([]model.Book, error) {
	if maxResults <= 0 || maxResults > 40 {
		maxResults = 10
	}
	params := url.Values{}
	params.Set("q", q)
	params.Set("maxResults", strconv.Itoa(maxResults))
	if c.APIKey != "" {
		params.Set("key", c.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/volumes?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google books: unexpected status %d", resp.StatusCode)
	}

	var vr volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, err
	}

	books := make([]model.Book, 0, len(vr.Items))
	for _, it := range vr.Items {
		books = append(books, model.Book{
			BookID:      it.ID,
			Title:       it.VolumeInfo.Title,
			Authors:     it.VolumeInfo.Authors,
			Description: it.VolumeInfo.Description,
			Image:       it.VolumeInfo.ImageLinks.Thumbnail,
			Link:        it.VolumeInfo.InfoLink,
		})
	}
	return books, nil
}
