package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"healthbridge/internal/errors"
	"healthbridge/internal/service"
)

// DiseaseHandler serves the disease reference catalog.
type DiseaseHandler struct {
	diseaseService service.DiseaseService
}

// NewDiseaseHandler creates a new disease handler.
func NewDiseaseHandler(diseaseService service.DiseaseService) *DiseaseHandler {
	return &DiseaseHandler{diseaseService: diseaseService}
}

// List godoc
// @Summary List all diseases, or search with ?q=
// @Tags diseases
// @Produce json
// @Param q query string false "Search term for name, symptoms, or category"
// @Success 200 {array} model.Disease
// @Router /diseases [get]
func (h *DiseaseHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if q := c.QueryParam("q"); q != "" {
		diseases, err := h.diseaseService.SearchDiseases(ctx, q)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, diseases)
	}

	diseases, err := h.diseaseService.ListDiseases(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, diseases)
}

// Get godoc
// @Summary Get one disease by id
// @Tags diseases
// @Produce json
// @Param id path int true "Disease ID"
// @Success 200 {object} model.Disease
// @Failure 404 {object} errors.ErrorResponse
// @Router /diseases/{id} [get]
func (h *DiseaseHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid disease id",
			Code:  "INVALID_ID",
		})
	}

	disease, err := h.diseaseService.GetDisease(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, disease)
}
