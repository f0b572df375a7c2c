package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDiseaseNotFound is returned when a disease lookup misses.
	ErrDiseaseNotFound = errors.New("disease not found")
	// ErrMedicineNotFound is returned when a medicine lookup misses.
	ErrMedicineNotFound = errors.New("medicine not found")
	// ErrCartItemNotFound is returned when a cart item lookup misses.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrOrderNotFound is returned when an order lookup misses.
	ErrOrderNotFound = errors.New("order not found")
	// ErrPatientNotFound is returned when a patient record lookup misses.
	ErrPatientNotFound = errors.New("patient record not found")
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrDuplicateMedicine is returned when creating a medicine whose name already exists.
	ErrDuplicateMedicine = errors.New("medicine with this name already exists")
	// ErrInvalidQuantity is returned for zero or negative cart quantities.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidPrice is returned for negative medicine prices.
	ErrInvalidPrice = errors.New("price must not be negative")
	// ErrUnsupportedFileType is returned for uploads outside the image whitelist.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrForbidden is returned when a non-admin calls an admin endpoint.
	ErrForbidden = errors.New("admin access required")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned on login with a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrDiseaseNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "DISEASE_NOT_FOUND")
	case ErrMedicineNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEDICINE_NOT_FOUND")
	case ErrCartItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CART_ITEM_NOT_FOUND")
	case ErrOrderNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case ErrPatientNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PATIENT_NOT_FOUND")
	case ErrEmptyCart:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CART")
	case ErrDuplicateMedicine:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_MEDICINE")
	case ErrInvalidQuantity:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case ErrInvalidPrice:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case ErrUnsupportedFileType:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNSUPPORTED_FILE_TYPE")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrUserAlreadyExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_EXISTS")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
