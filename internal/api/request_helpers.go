package api

import (
	"fmt"
	"strconv"

	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/store"
)

// Pagination defaults for the post listing.
const (
	defaultPage = 1
	defaultSize = 10
)

// getPathID extracts a positive integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// pageParams is the parsed and validated pagination/search query.
type pageParams struct {
	Page    int
	Size    int
	Keyword string
}

// Filter converts user-facing page numbering to the store's offset/limit.
func (p pageParams) Filter() store.PostFilter {
	return store.PostFilter{
		Offset:  (p.Page - 1) * p.Size,
		Limit:   p.Size,
		Keyword: p.Keyword,
	}
}

// parsePageParams reads page, size, and keyword from the query string.
// Values outside the allowed bounds are a validation failure, never
// silently clamped.
func parsePageParams(r *http.Request) (pageParams, error) {
	params := pageParams{
		Page:    defaultPage,
		Size:    defaultSize,
		Keyword: r.URL.Query().Get("keyword"),
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return pageParams{}, fmt.Errorf("page must be an integer >= 1")
		}
		params.Page = page
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > store.MaxPageSize {
			return pageParams{}, fmt.Errorf("size must be an integer in [1, %d]", store.MaxPageSize)
		}
		params.Size = size
	}

	return params, nil
}
