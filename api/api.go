//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yaml openapi.yaml

// Package api embeds the OpenAPI document that describes the HTTP interface
// and exposes it to kin-openapi and the swagger UI.
package api

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var spec []byte

var registerOnce sync.Once

// Spec returns the raw YAML document.
func Spec() []byte {
	return spec
}

// Load parses and validates the embedded document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return doc, nil
}

// RegisterSwagger publishes doc under swag's default instance name so that
// echo-swagger can serve it. Only the first call has an effect.
func RegisterSwagger(doc *openapi3.T) error {
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode openapi document: %w", err)
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Title:           doc.Info.Title,
			Version:         doc.Info.Version,
			Description:     doc.Info.Description,
			SwaggerTemplate: string(docJSON),
		})
	})

	return nil
}
