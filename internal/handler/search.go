package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// SearchHandler proxies book searches to the Google Books volumes API.
// The route is public and sits behind the Redis response cache, so a hot
// query is answered without touching the upstream at all.
type SearchHandler struct {
	Volumes VolumeSearcher
}

func NewSearchHandler(v VolumeSearcher) *SearchHandler {
	return &SearchHandler{Volumes: v}
}

// Search handles GET /api/books/search?q=...&limit=N.
func (h *SearchHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q required"})
	}
	limit := 10
	if s := c.QueryParam("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	books, err := h.Volumes.Search(ctx, q, limit)
	if err != nil {
		// Upstream trouble is a server error to our clients; there is no
		// retry here, the client may simply search again.
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "book search failed"})
	}
	return c.JSON(http.StatusOK, books)
}
