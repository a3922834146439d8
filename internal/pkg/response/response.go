package response

import "github.com/gofiber/fiber/v3"

// Envelope is the uniform JSON body of every gateway response. Successes
// carry Message/Data, failures carry Error.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageNotFound            = "not found"
	MessageBadGateway          = "upstream error"
	MessageInternalServerError = "internal server error"
)

func Success(c fiber.Ctx, status int, message string, data any) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(Envelope{Status: st, Message: message, Data: data})
}

func Fail(c fiber.Ctx, status int, errMsg string) error {
	st := normalizeStatus(status)
	if errMsg == "" {
		errMsg = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(Envelope{Status: st, Error: errMsg})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusBadGateway:
		return MessageBadGateway
	default:
		return MessageInternalServerError
	}
}
