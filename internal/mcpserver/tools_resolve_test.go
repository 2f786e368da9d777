package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleResolve(t *testing.T) {
	t.Run("resolves an inline pointer", func(t *testing.T) {
		result, output, err := handleResolve(context.Background(), nil, resolveInput{
			Doc:     docInput{Content: petDocument},
			Pointer: "#/schemas/Pet",
		})
		require.NoError(t, err)
		require.Nil(t, result)
		assert.Equal(t, "inline", output.Source)
		assert.Equal(t, "#/schemas/Pet", output.Pointer)
		assert.Contains(t, output.Resolved, `"type":"object"`)
	})

	t.Run("missing pointer is a tool error", func(t *testing.T) {
		result, _, err := handleResolve(context.Background(), nil, resolveInput{
			Doc: docInput{Content: petDocument},
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})

	t.Run("unresolvable pointer is a tool error", func(t *testing.T) {
		result, _, err := handleResolve(context.Background(), nil, resolveInput{
			Doc:     docInput{Content: petDocument},
			Pointer: "#/schemas/Missing",
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}
