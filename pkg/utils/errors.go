package utils

import (
	"net/http"

	apperrors "forms-backend/pkg/errors"
)

// ErrorList maps the failure taxonomy onto HTTP status codes.
var ErrorList = map[error]int{
	apperrors.ErrMissingAttachment: http.StatusBadRequest,
	apperrors.ErrInvalidUpload:     http.StatusBadRequest,
	apperrors.ErrBadRequest:        http.StatusBadRequest,
	apperrors.ErrNotFound:          http.StatusNotFound,
	apperrors.ErrPoolExhausted:     http.StatusServiceUnavailable,
	apperrors.ErrPersistence:       http.StatusInternalServerError,
	apperrors.ErrNotification:      http.StatusInternalServerError,
}
