package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"healthbridge/internal/backup"
	"healthbridge/internal/errors"
	"healthbridge/internal/service"
)

// allowedImageTypes is the upload whitelist, keyed by multipart content type.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// AdminHandler serves the admin panel: dashboard, user and order management,
// medicine CRUD, and product image uploads.
type AdminHandler struct {
	authService     service.AuthService
	orderService    service.OrderService
	medicineService service.MedicineService
	archiver        backup.Archiver
	staticDir       string
	logger          zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	authService service.AuthService,
	orderService service.OrderService,
	medicineService service.MedicineService,
	archiver backup.Archiver,
	staticDir string,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		authService:     authService,
		orderService:    orderService,
		medicineService: medicineService,
		archiver:        archiver,
		staticDir:       staticDir,
		logger:          logger,
	}
}

// MedicineRequest represents an admin create or update of a medicine.
type MedicineRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Dosage      string `json:"dosage"`
	Stock       int    `json:"stock" validate:"min=0"`
	ImageURL    string `json:"image_url"`
}

// StatusRequest represents an order status update.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UploadResponse carries the public URL of an uploaded image.
type UploadResponse struct {
	ImageURL string `json:"image_url"`
}

func (r *MedicineRequest) toInput() (service.MedicineInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return service.MedicineInput{}, err
	}
	return service.MedicineInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       price,
		Dosage:      r.Dosage,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
	}, nil
}

// Dashboard godoc
// @Summary Store counters and recent orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.orderService.Dashboard(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

// Users godoc
// @Summary List registered users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// Orders godoc
// @Summary List all orders, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/orders [get]
func (h *AdminHandler) Orders(c echo.Context) error {
	orders, err := h.orderService.ListAllOrders(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus godoc
// @Summary Set the status of an order
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} model.Order
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid order id",
			Code:  "INVALID_ID",
		})
	}

	var req StatusRequest
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

	order, err := h.orderService.UpdateOrderStatus(c.Request().Context(), uint(id), req.Status)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, order)
}

// CreateMedicine godoc
// @Summary Add a medicine to the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MedicineRequest true "Medicine data"
// @Success 201 {object} model.Medicine
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/medicines [post]
func (h *AdminHandler) CreateMedicine(c echo.Context) error {
	var req MedicineRequest
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

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}

	medicine, err := h.medicineService.CreateMedicine(c.Request().Context(), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, medicine)
}

// UpdateMedicine godoc
// @Summary Update an existing medicine
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medicine ID"
// @Param request body MedicineRequest true "Medicine data"
// @Success 200 {object} model.Medicine
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/medicines/{id} [put]
func (h *AdminHandler) UpdateMedicine(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid medicine id",
			Code:  "INVALID_ID",
		})
	}

	var req MedicineRequest
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

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}

	medicine, err := h.medicineService.UpdateMedicine(c.Request().Context(), uint(id), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, medicine)
}

// DeleteMedicine godoc
// @Summary Remove a medicine from the catalog
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Medicine ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/medicines/{id} [delete]
func (h *AdminHandler) DeleteMedicine(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid medicine id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.medicineService.DeleteMedicine(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Upload a product image for a medicine
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medicine ID"
// @Param file formData file true "Image file (jpeg, png, gif, webp)"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/medicines/{id}/image [post]
func (h *AdminHandler) UploadImage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid medicine id",
			Code:  "INVALID_ID",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "file field is required",
			Code:  "MISSING_FILE",
		})
	}

	ext, ok := allowedImageTypes[fileHeader.Header.Get("Content-Type")]
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrUnsupportedFileType)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	name := uuid.NewString() + ext
	dstPath := filepath.Join(h.staticDir, "images", name)
	if err := saveUpload(fileHeader, dstPath); err != nil {
		h.logger.Error().Err(err).Str("path", dstPath).Msg("image save failed")
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	imageURL := "/static/images/" + name
	if _, err := h.medicineService.SetImage(c.Request().Context(), uint(id), imageURL); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.archiver.ArchiveFile(dstPath, name); err != nil {
		h.logger.Warn().Err(err).Str("file", name).Msg("image archive failed")
	}

	return c.JSON(http.StatusOK, UploadResponse{ImageURL: imageURL})
}

func saveUpload(fileHeader *multipart.FileHeader, dstPath string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
