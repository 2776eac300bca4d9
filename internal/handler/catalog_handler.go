package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/service"
)

// CatalogHandler handles the shared category/type endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateNameRequest represents a category or type creation request.
type CreateNameRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ListCategories godoc
// @Summary List all categories
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.ListCategories(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Register a category
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body CreateNameRequest true "Category name"
// @Success 201 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CreateNameRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	category, err := h.catalogService.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, category)
}

// ListTypes godoc
// @Summary List all types
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Type
// @Router /types [get]
func (h *CatalogHandler) ListTypes(c echo.Context) error {
	types, err := h.catalogService.ListTypes(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, types)
}

// CreateType godoc
// @Summary Register a type
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body CreateNameRequest true "Type name"
// @Success 201 {object} model.Type
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /types [post]
func (h *CatalogHandler) CreateType(c echo.Context) error {
	var req CreateNameRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	typ, err := h.catalogService.CreateType(c.Request().Context(), req.Name)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, typ)
}
