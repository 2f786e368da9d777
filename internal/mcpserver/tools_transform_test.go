package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petDocument = `
schemas:
  Pet:
    type: object
usage:
  $ref: "#/schemas/Pet"
paths:
  /pets/{petId}:
    get: {}
`

func TestHandleTransform(t *testing.T) {
	t.Run("transforms inline content", func(t *testing.T) {
		result, output, err := handleTransform(context.Background(), nil, transformInput{
			Doc: docInput{Content: petDocument},
		})
		require.NoError(t, err)
		require.Nil(t, result)
		assert.True(t, output.Stable)
		assert.Equal(t, 1, output.ResolvedRefs)
		assert.GreaterOrEqual(t, output.ClassifiedFields, 1)
		assert.Empty(t, output.Diagnostics)
		assert.Empty(t, output.FullDocument)
	})

	t.Run("full output returns the enriched document", func(t *testing.T) {
		result, output, err := handleTransform(context.Background(), nil, transformInput{
			Doc:  docInput{Content: petDocument},
			Full: true,
		})
		require.NoError(t, err)
		require.Nil(t, result)
		assert.Contains(t, output.FullDocument, `"type":"object"`)
		assert.NotContains(t, output.FullDocument, "$ref")
	})

	t.Run("unresolvable references surface as diagnostics", func(t *testing.T) {
		result, output, err := handleTransform(context.Background(), nil, transformInput{
			Doc: docInput{Content: `{"usage": {"$ref": "#/missing"}}`},
		})
		require.NoError(t, err)
		require.Nil(t, result)
		assert.True(t, output.Stable)
		require.NotEmpty(t, output.Diagnostics)
		assert.Contains(t, output.Diagnostics[0], "#/missing")
	})

	t.Run("no_resolve keeps references in place", func(t *testing.T) {
		result, output, err := handleTransform(context.Background(), nil, transformInput{
			Doc:       docInput{Content: petDocument},
			NoResolve: true,
			Full:      true,
		})
		require.NoError(t, err)
		require.Nil(t, result)
		assert.Equal(t, 0, output.ResolvedRefs)
		assert.Contains(t, output.FullDocument, "$ref")
	})

	t.Run("bad input is a tool error", func(t *testing.T) {
		result, _, err := handleTransform(context.Background(), nil, transformInput{})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}
