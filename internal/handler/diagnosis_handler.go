package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"healthbridge/internal/errors"
	"healthbridge/internal/service"
)

// DiagnosisHandler serves the symptom-triage endpoint and the consultation
// log behind it.
type DiagnosisHandler struct {
	diagnosisService service.DiagnosisService
}

// NewDiagnosisHandler creates a new diagnosis handler.
func NewDiagnosisHandler(diagnosisService service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{diagnosisService: diagnosisService}
}

// DiagnoseRequest represents a triage request.
type DiagnoseRequest struct {
	Name     string `json:"name" validate:"required"`
	Symptoms string `json:"symptoms" validate:"required"`
}

// Diagnose godoc
// @Summary Run symptom triage for a patient
// @Tags diagnosis
// @Accept json
// @Produce json
// @Param request body DiagnoseRequest true "Patient name and symptom description"
// @Success 200 {object} service.DiagnosisResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /diagnosis [post]
func (h *DiagnosisHandler) Diagnose(c echo.Context) error {
	var req DiagnoseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	result, err := h.diagnosisService.Diagnose(c.Request().Context(), req.Name, req.Symptoms)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// Records godoc
// @Summary List consultation records, searchable with ?q=
// @Tags diagnosis
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search term for patient name, diagnosis, or disease"
// @Success 200 {array} model.PatientRecord
// @Router /admin/records [get]
func (h *DiagnosisHandler) Records(c echo.Context) error {
	ctx := c.Request().Context()

	if q := c.QueryParam("q"); q != "" {
		records, err := h.diagnosisService.SearchRecords(ctx, q)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, records)
	}

	records, err := h.diagnosisService.ListRecords(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, records)
}

// Record godoc
// @Summary Get one consultation record
// @Tags diagnosis
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} model.PatientRecord
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/records/{id} [get]
func (h *DiagnosisHandler) Record(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid record id",
			Code:  "INVALID_ID",
		})
	}

	record, err := h.diagnosisService.GetRecord(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, record)
}
