package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/specerrors"
)

func TestResolveAsync(t *testing.T) {
	doc := node.Object(
		node.Field("schemas", node.Object(
			node.Field("Pet", node.Object(
				node.Field("type", node.String("object")),
			)),
			node.Field("Tag", node.Object(
				node.Field("type", node.String("string")),
			)),
		)),
	)

	r, err := New()
	require.NoError(t, err)

	t.Run("delivers exactly one result", func(t *testing.T) {
		result := <-r.ResolveAsync(context.Background(), doc, "#/schemas/Pet")
		require.NoError(t, result.Err)
		require.NotNil(t, result.Ref)
		typ, ok := result.Ref.Node.Get("type")
		require.True(t, ok)
		assert.Equal(t, "object", typ.Str)
	})

	t.Run("interleaves pending resolutions", func(t *testing.T) {
		pet := r.ResolveAsync(context.Background(), doc, "#/schemas/Pet")
		tag := r.ResolveAsync(context.Background(), doc, "#/schemas/Tag")

		petResult, tagResult := <-pet, <-tag
		require.NoError(t, petResult.Err)
		require.NoError(t, tagResult.Err)

		petType, _ := petResult.Ref.Node.Get("type")
		tagType, _ := tagResult.Ref.Node.Get("type")
		assert.Equal(t, "object", petType.Str)
		assert.Equal(t, "string", tagType.Str)
	})

	t.Run("errors travel on the channel", func(t *testing.T) {
		result := <-r.ResolveAsync(context.Background(), doc, "#/schemas/Missing")
		require.Error(t, result.Err)
		assert.Nil(t, result.Ref)
		assert.ErrorIs(t, result.Err, specerrors.ErrPointerNotFound)
	})
}
