package api

const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeValidationError = "VALIDATION_ERROR"

	ErrCodeInternalError = "INTERNAL_ERROR"
)

// ApiError - тело ответа с ошибкой
type ApiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InternalError - тело ответа для ошибок, не попавших ни в одну категорию
var InternalError = ApiError{
	Code:    ErrCodeInternalError,
	Message: "internal server error",
}
