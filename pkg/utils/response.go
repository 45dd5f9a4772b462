package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "forms-backend/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	message := err.Error()
	code := http.StatusInternalServerError

	var httpErr *apperrors.HttpError
	var echoErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = httpErr.Message
	} else if errors.As(err, &echoErr) {
		code = echoErr.Code
		message = fmt.Sprintf("%v", echoErr.Message)
	} else {
		for sentinel, statusCode := range ErrorList {
			if errors.Is(err, sentinel) {
				message = sentinel.Error()
				code = statusCode
				break
			}
		}
	}

	if code >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", zap.Int("code", code), zap.Error(err))
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
	})
}
