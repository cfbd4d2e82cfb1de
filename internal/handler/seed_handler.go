package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sidehustle/internal/errors"
	"sidehustle/internal/repository"
	"sidehustle/internal/seed"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	entries repository.EntryRepository
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(entries repository.EntryRepository) *SeedHandler {
	return &SeedHandler{entries: entries}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Inserted int `json:"inserted"`
}

// Seed godoc
// @Summary Seed the catalog with sample entries
// @Description Creates indexes and inserts the built-in entries when the catalog is empty.
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=SeedResponse}
// @Failure 401 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	n, err := seed.Run(c.Request().Context(), h.entries)
	if err != nil {
		return err
	}

	msg := "catalog seeded"
	if n == 0 {
		msg = "catalog already has entries"
	}
	return c.JSON(http.StatusOK, apperrors.OK(SeedResponse{Inserted: n}, msg))
}
