package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "ERR_INTERNAL"
	ErrCodeValidation = "ERR_VALIDATION"
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	ErrCodeNotFound   = "ERR_NOT_FOUND"
	ErrCodeConflict   = "ERR_CONFLICT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Domain
// error codes keep their original value in the response body; this map
// only decides the status line.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,
	ErrCodeConflict:   http.StatusConflict,

	// Missing resources -> 404 Not Found
	"NOT_FOUND": http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status for a domain error code. Codes
// not listed above are business rule violations and map to 400; that
// includes uniqueness collisions such as a duplicate SKU.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
