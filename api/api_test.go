package api_test

import (
	"testing"

	"cuboids/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)

	assert.Equal(t, "Cuboids", doc.Info.Title)
	for _, path := range []string{"/cuboids", "/cuboids/{id}", "/bags", "/bags/{id}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRegisterSwagger(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)

	require.NoError(t, api.RegisterSwagger(doc))
	require.NoError(t, api.RegisterSwagger(doc), "registering twice is harmless")

	out, err := swag.ReadDoc()
	require.NoError(t, err)
	assert.Contains(t, out, `"/cuboids/{id}"`)
}
