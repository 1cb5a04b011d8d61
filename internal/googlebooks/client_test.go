package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const volumesFixture = `{
  "items": [
    {
      "id": "vol-1",
      "volumeInfo": {
        "title": "Dune",
        "authors": ["Frank Herbert"],
        "description": "sand",
        "imageLinks": {"thumbnail": "http://img/dune.jpg"},
        "infoLink": "http://books/dune"
      }
    },
    {
      "id": "vol-2",
      "volumeInfo": {
        "title": "Anonymous Pamphlet"
      }
    }
  ]
}`

func testClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient("")
	c.BaseURL = srv.URL
	return c, srv
}

func TestSearch_MapsVolumes(t *testing.T) {
	t.Parallel()

	var gotQuery string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(volumesFixture))
	})

	books, err := c.Search(context.Background(), "dune", 10)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if gotQuery != "dune" {
		t.Fatalf("upstream saw q=%q, want %q", gotQuery, "dune")
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	b := books[0]
	if b.BookID != "vol-1" || b.Title != "Dune" || len(b.Authors) != 1 ||
		b.Description != "sand" || b.Image != "http://img/dune.jpg" || b.Link != "http://books/dune" {
		t.Fatalf("mapped book mismatch: %+v", b)
	}
	// Sparse volumes decode into zero-valued fields, not errors.
	if books[1].BookID != "vol-2" || books[1].Authors != nil {
		t.Fatalf("sparse volume mismatch: %+v", books[1])
	}
}

func TestSearch_EmptyResult(t *testing.T) {
	t.Parallel()

	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	books, err := c.Search(context.Background(), "nothing-matches", 10)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected no books, got %d", len(books))
	}
}

func TestSearch_UpstreamError(t *testing.T) {
	t.Parallel()

	c, _ := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	if _, err := c.Search(context.Background(), "dune", 10); err == nil {
		t.Fatalf("expected error for upstream 429")
	}
}

func TestSearch_APIKeyForwarded(t *testing.T) {
	t.Parallel()

	var gotKey string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		_, _ = w.Write([]byte(`{}`))
	})
	c.APIKey = "k-123"

	if _, err := c.Search(context.Background(), "dune", 10); err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if gotKey != "k-123" {
		t.Fatalf("api key not forwarded, got %q", gotKey)
	}
}
