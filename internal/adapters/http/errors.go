package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/samirrijal/tunimap/internal/pkg/logging"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // Error code: bad_request, not_found, internal_error, etc.
	Error     string `json:"error"`   // Short status text
	Message   string `json:"message"` // Human-readable message
	RequestID string `json:"request_id,omitempty"`
}

const (
	internalErrorText    = "Internal server error"
	internalErrorMessage = "Failed to process request"
)

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code, text, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Error:     text,
		Message:   message,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusBadRequest, "bad_request", "Bad request", msg)
}

// errInternal logs err and returns the generic 500 body. Internals never
// reach the client.
func errInternal(c *fiber.Ctx, err error) error {
	logging.FromContext(c.UserContext()).Error("request failed",
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return newError(c, fiber.StatusInternalServerError, "internal_error", internalErrorText, internalErrorMessage)
}

// ErrorHandler is the fiber.Config error handler. Errors created with
// fiber.NewError keep their status; anything else, recovered panics
// included, becomes the generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code != fiber.StatusInternalServerError {
		return newError(c, fe.Code, codeFor(fe.Code), utils.StatusMessage(fe.Code), fe.Message)
	}
	return errInternal(c, err)
}

func codeFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad_request"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusMethodNotAllowed:
		return "method_not_allowed"
	case fiber.StatusRequestTimeout:
		return "timeout"
	case fiber.StatusTooManyRequests:
		return "rate_limited"
	case fiber.StatusServiceUnavailable:
		return "unavailable"
	default:
		return "error"
	}
}
