package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"healthbridge/internal/errors"
	"healthbridge/internal/service"
)

// SessionHeader carries the anonymous cart session id. A missing or blank
// header gets a fresh id, echoed back so the client can persist it.
const SessionHeader = "X-Session-ID"

// CartHandler manages the per-session shopping cart.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddItemRequest represents an add-to-cart request.
type AddItemRequest struct {
	MedicineID uint `json:"medicine_id" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1"`
}

// UpdateItemRequest represents a quantity update.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CountResponse carries the cart item count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// sessionID reads the session header, minting a new id when absent. The id
// in use is always echoed back on the response.
func sessionID(c echo.Context) string {
	id := c.Request().Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Response().Header().Set(SessionHeader, id)
	return id
}

// Add godoc
// @Summary Add a medicine to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param request body AddItemRequest true "Item data"
// @Success 200 {object} model.CartItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req AddItemRequest
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

	item, err := h.cartService.AddItem(c.Request().Context(), sessionID(c), req.MedicineID, req.Quantity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, item)
}

// Get godoc
// @Summary Get the session's cart with totals
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} service.Cart
// @Router /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.cartService.GetCart(c.Request().Context(), sessionID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cart)
}

// Update godoc
// @Summary Set the quantity of a cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param id path int true "Cart item ID"
// @Param request body UpdateItemRequest true "New quantity"
// @Success 200 {object} model.CartItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/items/{id} [put]
func (h *CartHandler) Update(c echo.Context) error {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid cart item id",
			Code:  "INVALID_ID",
		})
	}

	var req UpdateItemRequest
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

	item, err := h.cartService.UpdateItem(c.Request().Context(), sessionID(c), uint(itemID), req.Quantity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, item)
}

// Remove godoc
// @Summary Remove one item from the cart
// @Tags cart
// @Param X-Session-ID header string false "Cart session id"
// @Param id path int true "Cart item ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid cart item id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.cartService.RemoveItem(c.Request().Context(), sessionID(c), uint(itemID)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Clear godoc
// @Summary Remove every item from the cart
// @Tags cart
// @Param X-Session-ID header string false "Cart session id"
// @Success 204
// @Router /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cartService.ClearCart(c.Request().Context(), sessionID(c)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Count godoc
// @Summary Count items in the cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} CountResponse
// @Router /cart/count [get]
func (h *CartHandler) Count(c echo.Context) error {
	count, err := h.cartService.CountItems(c.Request().Context(), sessionID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}
