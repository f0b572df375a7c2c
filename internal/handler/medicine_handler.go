package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"healthbridge/internal/errors"
	"healthbridge/internal/service"
)

// MedicineHandler serves the public pharmacy catalog.
type MedicineHandler struct {
	medicineService service.MedicineService
}

// NewMedicineHandler creates a new medicine handler.
func NewMedicineHandler(medicineService service.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// List godoc
// @Summary List medicines, searchable with ?q= and filterable with ?category=
// @Tags medicines
// @Produce json
// @Param q query string false "Search term for name, description, or category"
// @Param category query string false "Category filter"
// @Success 200 {array} model.Medicine
// @Router /medicines [get]
func (h *MedicineHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if q := c.QueryParam("q"); q != "" {
		medicines, err := h.medicineService.SearchMedicines(ctx, q)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, medicines)
	}

	if category := c.QueryParam("category"); category != "" {
		medicines, err := h.medicineService.ListByCategory(ctx, category)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, medicines)
	}

	medicines, err := h.medicineService.ListMedicines(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, medicines)
}

// Get godoc
// @Summary Get one medicine by id
// @Tags medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} model.Medicine
// @Failure 404 {object} errors.ErrorResponse
// @Router /medicines/{id} [get]
func (h *MedicineHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid medicine id",
			Code:  "INVALID_ID",
		})
	}

	medicine, err := h.medicineService.GetMedicine(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, medicine)
}

// Images godoc
// @Summary List medicines that have a product image
// @Tags medicines
// @Produce json
// @Success 200 {array} model.Medicine
// @Router /medicines/images [get]
func (h *MedicineHandler) Images(c echo.Context) error {
	medicines, err := h.medicineService.ListMedicineImages(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, medicines)
}
