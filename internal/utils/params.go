package utils

import (
	"fmt"
	"net/http"
	"strconv"

	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/go-chi/chi/v5"
)

// ParseID reads a positive int64 route parameter.
func ParseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.BadRequestError(fmt.Sprintf("Invalid %s", name))
	}

	return id, nil
}

// ParsePagination reads ?page (zero-based, default 0, at most models.MaxPage) and
// ?size (default 20, capped at models.MaxPageSize).
func ParsePagination(r *http.Request) (models.Pagination, error) {
	p := models.Pagination{Page: 0, Size: models.DefaultPageSize}
	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 || page > models.MaxPage {
			return p, appErrors.BadRequestError("Invalid page")
		}
		p.Page = page
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return p, appErrors.BadRequestError("Invalid size")
		}
		p.Size = min(size, models.MaxPageSize)
	}

	return p, nil
}
