package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"hirehack/internal/pkg/response"
	"hirehack/internal/relay"
)

// AppError is the handler-level error carrying an HTTP status.
type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

// ErrorMiddleware converts every error surfacing from a handler (AppError,
// relay.Error, fiber.Error, or a panic) into the response envelope. Internal
// details never leak past a 5xx message.
type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: %v", r)
				err = response.Fail(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := m.normalize(err)
		return response.Fail(c, status, msg)
	}
}

func (m *ErrorMiddleware) normalize(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			m.logger.Printf("internal error: %v", appErr)
			return status, response.MessageInternalServerError
		}
		return status, appErr.Message
	}

	var relayErr *relay.Error
	if errors.As(err, &relayErr) {
		status := relayErr.Status
		if status <= 0 {
			status = relayErr.Kind.HTTPStatus()
		}
		if status >= 500 {
			m.logger.Printf("relay error: kind=%s err=%v", relayErr.Kind, relayErr)
			return status, response.MessageBadGateway
		}
		return status, relayErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			m.logger.Printf("internal error: %v", fiberErr)
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		return status, fiberErr.Message
	}

	m.logger.Printf("internal error: %v", err)
	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
