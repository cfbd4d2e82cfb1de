package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "sidehustle/internal/errors"
	"sidehustle/internal/model"
	"sidehustle/internal/repository"
	"sidehustle/internal/service"
)

// CatalogHandler handles side-hustle catalog endpoints.
type CatalogHandler struct {
	catalog service.CatalogService
	audit   service.AuditRecorder
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog service.CatalogService, audit service.AuditRecorder) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, audit: audit}
}

// CreateEntryRequest is the body of a create request.
type CreateEntryRequest struct {
	Title        string       `json:"title" validate:"required"`
	Category     string       `json:"category" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	Tools        []string     `json:"tools" validate:"required"`
	Pricing      string       `json:"pricing" validate:"required"`
	Difficulty   string       `json:"difficulty" validate:"required,oneof=简单 中等 高"`
	Setup        string       `json:"setup"`
	Profit       string       `json:"profit"`
	Requirements []string     `json:"requirements"`
	Steps        []string     `json:"steps"`
	Pros         []string     `json:"pros"`
	Cons         []string     `json:"cons"`
	LastUpdated  string       `json:"lastUpdated" validate:"omitempty,datetime=2006-01-02"`
	Featured     bool         `json:"featured"`
	Status       model.Status `json:"status" validate:"omitempty,oneof=draft published archived"`
}

func (r CreateEntryRequest) toEntry() model.Entry {
	return model.Entry{
		Title:        r.Title,
		Category:     r.Category,
		Description:  r.Description,
		Tools:        r.Tools,
		Pricing:      r.Pricing,
		Difficulty:   r.Difficulty,
		Setup:        r.Setup,
		Profit:       r.Profit,
		Requirements: r.Requirements,
		Steps:        r.Steps,
		Pros:         r.Pros,
		Cons:         r.Cons,
		LastUpdated:  r.LastUpdated,
		Featured:     r.Featured,
		Status:       r.Status,
	}
}

// List godoc
// @Summary List or search side hustles
// @Tags side-hustles
// @Produce json
// @Param search query string false "Free-text term over title, description and tools"
// @Param category query string false "Category, 全部 for all"
// @Param status query string false "draft, published, archived or all" default(published)
// @Success 200 {object} errors.Response{data=[]model.Entry}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Router /side-hustles [get]
func (h *CatalogHandler) List(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("search"))
	category := c.QueryParam("category")
	status := c.QueryParam("status")
	if status == "" {
		status = string(model.StatusPublished)
	}

	if status != repository.StatusAll && !model.Status(status).Valid() {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	// Unpublished entries are only visible to signed-in users.
	if status != string(model.StatusPublished) {
		if _, ok := PrincipalFrom(c); !ok {
			return apperrors.ErrUnauthorized
		}
	}

	ctx := c.Request().Context()
	var entries []model.Entry
	if term != "" || !repository.IsAllCategories(category) {
		entries = h.catalog.Search(ctx, term, category, status)
	} else {
		entries = h.catalog.List(ctx, status)
	}

	return c.JSON(http.StatusOK, apperrors.OK(entries, ""))
}

// Get godoc
// @Summary Get a side hustle
// @Description Accepts either the numeric display id or the 24-character object id. Counts a view.
// @Tags side-hustles
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} errors.Response{data=model.Entry}
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /side-hustles/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	entry, err := h.catalog.GetByID(ctx, id)
	if err != nil {
		return err
	}

	h.catalog.IncrementViews(ctx, id)

	return c.JSON(http.StatusOK, apperrors.OK(entry, ""))
}

// Create godoc
// @Summary Create a side hustle
// @Tags side-hustles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEntryRequest true "Entry data"
// @Success 200 {object} errors.Response{data=model.Entry}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /side-hustles [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	var actor model.Principal
	if p, ok := PrincipalFrom(c); ok {
		actor = *p
	}

	ctx := c.Request().Context()
	entry, err := h.catalog.Create(ctx, req.toEntry(), actor.UserID)
	if err != nil {
		return err
	}

	h.audit.Record(ctx, model.AuditLog{
		Action:  model.AuditEntryCreate,
		EntryID: entry.ObjectID.Hex(),
		Actor:   actor.Email,
		Detail:  entry.Title,
	})

	return c.JSON(http.StatusOK, apperrors.OK(entry, "created"))
}

// Update godoc
// @Summary Update a side hustle
// @Description Partial update. Only fields present in the body change.
// @Tags side-hustles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body model.EntryPatch true "Fields to change"
// @Success 200 {object} errors.Response{data=model.Entry}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /side-hustles/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	var patch model.EntryPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&patch); err != nil {
		return validationError(err)
	}

	id := c.Param("id")
	ctx := c.Request().Context()

	entry, err := h.catalog.Update(ctx, id, patch)
	if err != nil {
		return err
	}

	actor, _ := PrincipalFrom(c)
	h.audit.Record(ctx, model.AuditLog{
		Action:  model.AuditEntryUpdate,
		EntryID: entry.ObjectID.Hex(),
		Actor:   actorEmail(actor),
		Detail:  id,
	})

	return c.JSON(http.StatusOK, apperrors.OK(entry, "updated"))
}

// Delete godoc
// @Summary Delete a side hustle
// @Tags side-hustles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /side-hustles/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	deleted, err := h.catalog.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrEntryNotFound
	}

	actor, _ := PrincipalFrom(c)
	h.audit.Record(ctx, model.AuditLog{
		Action:  model.AuditEntryDelete,
		EntryID: id,
		Actor:   actorEmail(actor),
	})

	return c.JSON(http.StatusOK, apperrors.OK(nil, "deleted"))
}

// Categories godoc
// @Summary List categories with entry counts
// @Tags side-hustles
// @Produce json
// @Success 200 {object} errors.Response{data=[]model.CategoryCount}
// @Router /categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, apperrors.OK(h.catalog.Categories(c.Request().Context()), ""))
}

func actorEmail(p *model.Principal) string {
	if p == nil {
		return ""
	}
	return p.Email
}
