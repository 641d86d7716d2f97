package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RequestID tags every request with a UUID unless the client sent one.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLogger writes one line per request. The level follows the status:
// 5xx is error, 4xx is warn, everything else is info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// The error handler has not written the response yet when the
			// handler returned an error, so v.Status is still 200.
			status := v.Status
			if v.Error != nil {
				status = ToHTTPError(v.Error).Status
			}

			var e *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				e = log.Error().Err(v.Error)
			case status >= http.StatusBadRequest:
				e = log.Warn()
				if v.Error != nil {
					e = e.Str("reason", v.Error.Error())
				}
			default:
				e = log.Info()
			}

			e.
				Str("request_id", requestID(c)).
				Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("ip", c.RealIP()).
				Msg("request")

			return nil
		},
	})
}

// OpenAPIValidator rejects requests that do not match doc with 400. Paths
// that doc does not describe (health, swagger, the document itself) pass
// through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				// The router returns fresh *routers.RouteError values, not
				// the ErrPathNotFound and ErrMethodNotAllowed sentinels.
				// echo answers these requests itself, with 404 or 405.
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					return next(c)
				}
				return err
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return &HTTPError{Status: http.StatusBadRequest, Message: validationMessage(err), Err: err}
			}

			return next(c)
		}
	}, nil
}

// validationMessage keeps the first line of a kin-openapi error. The rest is
// a dump of the schema that failed.
func validationMessage(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}

func requestID(c echo.Context) string {
	id := c.Request().Header.Get(echo.HeaderXRequestID)
	if id == "" {
		id = c.Response().Header().Get(echo.HeaderXRequestID)
	}
	return id
}
