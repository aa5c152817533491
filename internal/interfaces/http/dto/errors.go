package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Form validation failures map to 422: the request itself was well
// formed, the order just is not ready for hand-off yet.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,

	// Malformed input -> 400 Bad Request
	"INVALID_INPUT":          http.StatusBadRequest,
	"INVALID_NAME":           http.StatusBadRequest,
	"INVALID_CATEGORY":       http.StatusBadRequest,
	"INVALID_UNIT":           http.StatusBadRequest,
	"INVALID_PRICE":          http.StatusBadRequest,
	"INVALID_SLUG":           http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD": http.StatusBadRequest,
	"INVALID_CARD_TYPE":      http.StatusBadRequest,
	"INVALID_RESIDENCE_TYPE": http.StatusBadRequest,
	"INVALID_CEP":            http.StatusBadRequest,
	"MISSING_SESSION":        http.StatusBadRequest,

	// Missing resources -> 404 Not Found
	"CEP_NOT_FOUND": http.StatusNotFound,

	// Checkout readiness -> 422 Unprocessable Entity
	"INVALID_STATE":            http.StatusUnprocessableEntity,
	"EMPTY_CART":               http.StatusUnprocessableEntity,
	"PRODUCT_UNAVAILABLE":      http.StatusUnprocessableEntity,
	"MISSING_NAME":             http.StatusUnprocessableEntity,
	"MISSING_ADDRESS":          http.StatusUnprocessableEntity,
	"MISSING_STREET_NUMBER":    http.StatusUnprocessableEntity,
	"MISSING_APARTMENT_NUMBER": http.StatusUnprocessableEntity,
	"MISSING_CARD_TYPE":        http.StatusUnprocessableEntity,
	"MISSING_CHANGE_FOR":       http.StatusUnprocessableEntity,

	// Deployment gaps -> 503 Service Unavailable
	"NOT_CONFIGURED":          http.StatusServiceUnavailable,
	"WHATSAPP_NOT_CONFIGURED": http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
