package relay

import "github.com/gofiber/fiber/v3"

// ErrorKind is the closed failure taxonomy every relay call reports through.
// UI-facing handlers branch on the kind instead of inspecting ad hoc fields.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNetwork
	KindUnauthorized
	KindValidation
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// HTTPStatus maps a kind to the status the gateway answers with when the
// relay call itself carried no usable status.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindNetwork, KindUpstream:
		return fiber.StatusBadGateway
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindValidation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// Error is the single error shape returned by relay operations.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String() + " error"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind ErrorKind, status int, message string, cause error) *Error {
	if status == 0 {
		status = kind.HTTPStatus()
	}
	return &Error{Kind: kind, Status: status, Message: message, Cause: cause}
}
