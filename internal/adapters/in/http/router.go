package http

import (
	"fmt"
	"net/http"

	"cuboids/api"
	"cuboids/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving server together with the
// health check, the OpenAPI document and the swagger UI. Requests to API
// routes are validated against doc before they reach server.
func NewRouter(server servers.ServerInterface, doc *openapi3.T, log zerolog.Logger) (*echo.Echo, error) {
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build request validator: %w", err)
	}

	if err := api.RegisterSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.OFF)
	e.HTTPErrorHandler = NewErrorHandler(log)

	e.Use(
		RequestID(),
		RequestLogger(log),
		middleware.Recover(),
		validator,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Spec())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
