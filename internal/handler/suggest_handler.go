package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wardrobe/internal/auth"
	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/service"
)

// SuggestHandler handles the random outfit suggestion endpoint.
type SuggestHandler struct {
	suggestService service.SuggestService
}

// NewSuggestHandler creates a new suggest handler.
func NewSuggestHandler(suggestService service.SuggestService) *SuggestHandler {
	return &SuggestHandler{suggestService: suggestService}
}

// SuggestResponse wraps the suggested record. Clothes is null when nothing in
// the caller's wardrobe matched the criteria; that is a normal outcome, not
// an error.
type SuggestResponse struct {
	Clothes *ClothesResponse `json:"clothes"`
}

// Suggest godoc
// @Summary Pick one of the caller's clothes at random
// @Tags clothes
// @Produce json
// @Security BearerAuth
// @Param season query string false "Season label"
// @Param color query string false "Color, case-insensitive"
// @Param category_id query int false "Category ID"
// @Param type_id query int false "Type ID"
// @Success 200 {object} SuggestResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /clothes/suggest [get]
func (h *SuggestHandler) Suggest(c echo.Context) error {
	user := auth.CurrentUser(c)

	clothes, err := h.suggestService.PickRandom(c.Request().Context(), user, filterFromQuery(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := SuggestResponse{}
	if clothes != nil {
		r := newClothesResponse(clothes)
		resp.Clothes = &r
	}
	return c.JSON(http.StatusOK, resp)
}
