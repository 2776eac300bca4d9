package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"wardrobe/internal/auth"
	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
	"wardrobe/internal/service"
)

// ClothesHandler handles the owner-scoped clothes endpoints.
type ClothesHandler struct {
	clothesService service.ClothesService
}

// NewClothesHandler creates a new clothes handler.
func NewClothesHandler(clothesService service.ClothesService) *ClothesHandler {
	return &ClothesHandler{clothesService: clothesService}
}

// CreateClothesRequest represents a clothes creation request. There is no
// user_id field: the owner is always the authenticated caller.
type CreateClothesRequest struct {
	Name       string           `json:"name" validate:"required,max=255"`
	TypeID     uint             `json:"type_id" validate:"required"`
	CategoryID uint             `json:"category_id" validate:"required"`
	Color      string           `json:"color" validate:"omitempty,max=50"`
	Season     model.SeasonList `json:"season"`
}

// UpdateClothesRequest represents a partial update; absent fields are left
// unchanged.
type UpdateClothesRequest struct {
	Name       *string           `json:"name" validate:"omitempty,min=1,max=255"`
	TypeID     *uint             `json:"type_id"`
	CategoryID *uint             `json:"category_id"`
	Color      *string           `json:"color" validate:"omitempty,max=50"`
	Season     *model.SeasonList `json:"season"`
}

// ClothesResponse is the denormalized view of a clothes record, with the
// category and type names resolved inline.
type ClothesResponse struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	TypeID     uint             `json:"type_id"`
	Type       string           `json:"type"`
	CategoryID uint             `json:"category_id"`
	Category   string           `json:"category"`
	Color      string           `json:"color"`
	Season     model.SeasonList `json:"season"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func newClothesResponse(c *model.Clothes) ClothesResponse {
	return ClothesResponse{
		ID:         c.ID,
		Name:       c.Name,
		TypeID:     c.TypeID,
		Type:       c.Type.Name,
		CategoryID: c.CategoryID,
		Category:   c.Category.Name,
		Color:      c.Color,
		Season:     c.Season,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func newClothesListResponse(items []model.Clothes) []ClothesResponse {
	out := make([]ClothesResponse, 0, len(items))
	for i := range items {
		out = append(out, newClothesResponse(&items[i]))
	}
	return out
}

// filterFromQuery reads the optional selection criteria off the query string.
// Unparseable ids are treated as absent.
func filterFromQuery(c echo.Context) service.ClothesFilter {
	filter := service.ClothesFilter{
		Season: c.QueryParam("season"),
		Color:  c.QueryParam("color"),
	}
	if v, err := strconv.ParseUint(c.QueryParam("category_id"), 10, 64); err == nil {
		filter.CategoryID = uint(v)
	}
	if v, err := strconv.ParseUint(c.QueryParam("type_id"), 10, 64); err == nil {
		filter.TypeID = uint(v)
	}
	return filter
}

// List godoc
// @Summary List the caller's clothes
// @Tags clothes
// @Produce json
// @Security BearerAuth
// @Param season query string false "Season label"
// @Param color query string false "Color, case-insensitive"
// @Param category_id query int false "Category ID"
// @Param type_id query int false "Type ID"
// @Success 200 {array} ClothesResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /clothes [get]
func (h *ClothesHandler) List(c echo.Context) error {
	user := auth.CurrentUser(c)

	items, err := h.clothesService.List(c.Request().Context(), user, filterFromQuery(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newClothesListResponse(items))
}

// Create godoc
// @Summary Register a clothes record
// @Tags clothes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateClothesRequest true "Clothes data"
// @Success 201 {object} ClothesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /clothes [post]
func (h *ClothesHandler) Create(c echo.Context) error {
	var req CreateClothesRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	user := auth.CurrentUser(c)
	clothes, err := h.clothesService.Create(c.Request().Context(), user, service.CreateClothesInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		TypeID:     req.TypeID,
		Color:      req.Color,
		Season:     req.Season,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, newClothesResponse(clothes))
}

// Get godoc
// @Summary Get a single clothes record
// @Tags clothes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clothes ID"
// @Success 200 {object} ClothesResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clothes/{id} [get]
func (h *ClothesHandler) Get(c echo.Context) error {
	id, err := clothesID(c)
	if err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	clothes, err := h.clothesService.Get(c.Request().Context(), user, id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newClothesResponse(clothes))
}

// Update godoc
// @Summary Update a clothes record
// @Tags clothes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clothes ID"
// @Param request body UpdateClothesRequest true "Fields to change"
// @Success 200 {object} ClothesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /clothes/{id} [put]
func (h *ClothesHandler) Update(c echo.Context) error {
	id, err := clothesID(c)
	if err != nil {
		return err
	}

	var req UpdateClothesRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	user := auth.CurrentUser(c)
	clothes, err := h.clothesService.Update(c.Request().Context(), user, id, service.UpdateClothesInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		TypeID:     req.TypeID,
		Color:      req.Color,
		Season:     req.Season,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newClothesResponse(clothes))
}

// Delete godoc
// @Summary Delete a clothes record
// @Tags clothes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clothes ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clothes/{id} [delete]
func (h *ClothesHandler) Delete(c echo.Context) error {
	id, err := clothesID(c)
	if err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	if err := h.clothesService.Delete(c.Request().Context(), user, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "deleted successfully"})
}

// clothesID parses the path id. An unparseable id cannot name any record, so
// it answers 404 like any other missing record.
func clothesID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrClothesNotFound)
		return 0, echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return uint(id), nil
}
