package http

import (
	"errors"
	"fmt"
	"net/http"

	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/services"
	"cuboids/internal/generated/servers"
	"cuboids/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Response messages. Clients match on them, keep them stable.
const (
	MsgCuboidNotFound        = "Cuboid not found"
	MsgBagNotFound           = "Bag not found"
	MsgInsufficientCapacity  = "Insufficient capacity in bag"
	MsgCuboidDeleted         = "Cuboid deleted"
	MsgBagDeleted            = "Bag deleted"
	MsgInternalServerError   = "Internal Server Error"
	msgObjectNotFoundGeneric = "Not found"
)

// HTTPError is an error with the status and message it is rendered with.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// ToHTTPError classifies err:
//   - errs.ObjectNotFoundError is 404 with a message naming the entity
//   - insufficient capacity and shrinking a bag below its payload are 422
//   - invalid or missing values are 400
//   - echo errors keep their code
//   - anything else is 500
func ToHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return &HTTPError{Status: http.StatusNotFound, Message: notFoundMessage(notFound.ParamName), Err: err}
	}

	if errors.Is(err, services.ErrInsufficientCapacity) || errors.Is(err, bag.ErrVolumeBelowPayload) {
		return &HTTPError{Status: http.StatusUnprocessableEntity, Message: MsgInsufficientCapacity, Err: err}
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return &HTTPError{Status: http.StatusBadRequest, Message: err.Error(), Err: err}
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return &HTTPError{Status: echoErr.Code, Message: echoMessage(echoErr), Err: err}
	}

	return &HTTPError{Status: http.StatusInternalServerError, Message: MsgInternalServerError, Err: err}
}

// NewErrorHandler renders every error returned by a handler or middleware as
// a servers.Message body. Server faults are logged with the original error;
// the client only sees MsgInternalServerError.
func NewErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		httpErr := ToHTTPError(err)

		if httpErr.Status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", requestID(c)).
				Int("status", httpErr.Status).
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Msg("request failed")
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(httpErr.Status)
			return
		}

		_ = c.JSON(httpErr.Status, servers.Message{Message: httpErr.Message})
	}
}

func notFoundMessage(paramName string) string {
	switch paramName {
	case "cuboid":
		return MsgCuboidNotFound
	case "bag":
		return MsgBagNotFound
	default:
		return msgObjectNotFoundGeneric
	}
}

func echoMessage(err *echo.HTTPError) string {
	switch msg := err.Message.(type) {
	case string:
		return msg
	case error:
		return msg.Error()
	default:
		return http.StatusText(err.Code)
	}
}
