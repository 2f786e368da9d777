package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/specerrors"
)

// tagAs returns a rewrite function that sets a type tag.
func tagAs(tag string) RewriteFunc {
	return func(_ *Context, n *node.Node) (*node.Node, error) {
		n.TypeTag = tag
		return n, nil
	}
}

func TestLookupUnknownTagFallsBackToIdentity(t *testing.T) {
	table := NewTable()
	entry, err := table.Lookup("no-such-type")
	require.NoError(t, err)

	n := node.String("unchanged")
	out, err := entry.apply(&Context{Table: table}, n)
	require.NoError(t, err)
	assert.Same(t, n, out)
}

func TestLookupValueEntryOverride(t *testing.T) {
	table := NewTable()
	table.RegisterFunc("value", func(_ *Context, n *node.Node) (*node.Node, error) {
		n.AddClass("touched")
		return n, nil
	})

	out, err := table.Dispatch(node.Object())
	require.NoError(t, err)
	assert.True(t, out.HasClass("touched"))
}

func TestLookupResolvesSingleIndirection(t *testing.T) {
	table := NewTable()
	table.RegisterFunc("schema", tagAs("schema"))
	table.Register("definition", Ref("schema"))

	n := node.Object()
	n.TypeTag = "definition"
	out, err := table.Dispatch(n)
	require.NoError(t, err)
	assert.Equal(t, "schema", out.TypeTag)
}

func TestLookupRejectsChainedIndirection(t *testing.T) {
	table := NewTable()
	table.RegisterFunc("schema", tagAs("schema"))
	table.Register("definition", Ref("schema"))
	table.Register("model", Ref("definition"))

	_, err := table.Lookup("model")
	require.Error(t, err)
	assert.ErrorIs(t, err, specerrors.ErrConfig)
	assert.Contains(t, err.Error(), "chained indirection")
}

func TestLookupRejectsDanglingIndirection(t *testing.T) {
	table := NewTable()
	table.Register("definition", Ref("missing"))

	_, err := table.Lookup("definition")
	require.Error(t, err)
	assert.ErrorIs(t, err, specerrors.ErrConfig)
}

func TestIndirectionThroughNestedTable(t *testing.T) {
	sub := NewTable()
	sub.RegisterFunc("schema", tagAs("schema"))

	table := NewTable()
	table.Register("components", Nested(sub))
	table.Register("definition", Ref("components/schema"))

	n := node.Object()
	n.TypeTag = "definition"
	out, err := table.Dispatch(n)
	require.NoError(t, err)
	assert.Equal(t, "schema", out.TypeTag)
}

func TestFixedFieldRouting(t *testing.T) {
	table := NewTable()
	table.RegisterFunc("info", tagAs("info"))
	table.RegisterFields("document", FixedFields{
		"info": Func(tagAs("info")),
	})

	doc := node.Object(
		node.Field("info", node.Object(node.Field("title", node.String("Pets")))),
		node.Field("x-internal", node.Bool(true)),
		node.Field("wild", node.String("preserved")),
	)
	doc.TypeTag = "document"

	out, err := table.Dispatch(doc)
	require.NoError(t, err)

	// All three members survive with original values.
	info, ok := out.Get("info")
	require.True(t, ok)
	title, _ := info.Get("title")
	assert.Equal(t, "Pets", title.Str)

	ext, ok := out.Get("x-internal")
	require.True(t, ok)
	assert.True(t, ext.Bool)

	wild, ok := out.Get("wild")
	require.True(t, ok)
	assert.Equal(t, "preserved", wild.Str)

	// Differentiated only by tags and metadata.
	assert.Equal(t, "info", info.TypeTag)
	assert.Equal(t, "info", info.MetaString(MetaFixedField))
	assert.True(t, info.HasClass(ClassFixedField))

	v, _ := ext.Meta(MetaExtension)
	assert.Equal(t, true, v)
	assert.True(t, ext.HasClass(ClassExtension))
	assert.False(t, ext.Typed())

	v, _ = wild.Meta(MetaFallback)
	assert.Equal(t, true, v)
	assert.True(t, wild.HasClass(ClassFallback))
	assert.False(t, wild.Typed())
}

func TestFixedFieldEntryErrorBecomesDiagnostic(t *testing.T) {
	table := NewTable()
	table.RegisterFields("document", FixedFields{
		"info": Func(func(_ *Context, _ *node.Node) (*node.Node, error) {
			return nil, errors.New("broken rewrite")
		}),
	})

	doc := node.Object(node.Field("info", node.Object()))
	doc.TypeTag = "document"

	out, err := table.Dispatch(doc)
	require.NoError(t, err)

	info, _ := out.Get("info")
	ds := info.Diagnostics()
	require.Len(t, ds, 1)
	assert.Contains(t, ds[0].Message, "broken rewrite")
	// The field itself is preserved and still tagged as a fixed field.
	assert.Equal(t, "info", info.MetaString(MetaFixedField))
}

func TestDispatchIdempotent(t *testing.T) {
	table := NewTable()
	table.RegisterFunc("document", tagAs("document"))
	table.RegisterFunc("info", tagAs("info"))
	table.RegisterFields("document", FixedFields{
		"info": Func(tagAs("info")),
	})

	doc := node.Object(
		node.Field("info", node.Object()),
		node.Field("x-vendor", node.String("v")),
		node.Field("unknown", node.Null()),
	)
	doc.TypeTag = "document"

	once, err := table.Dispatch(doc)
	require.NoError(t, err)
	snapshot := once.Clone()

	twice, err := table.Dispatch(once)
	require.NoError(t, err)
	assert.True(t, node.Equal(snapshot, twice), "re-dispatch must not change structure, tags, or classes")
}

func TestDispatchPathBreadcrumbs(t *testing.T) {
	table := NewTable()
	var seen string
	table.RegisterFields("document", FixedFields{
		"info": Func(func(c *Context, n *node.Node) (*node.Node, error) {
			seen = c.Path
			return n, nil
		}),
	})

	doc := node.Object(node.Field("info", node.Object()))
	doc.TypeTag = "document"

	out, err := table.DispatchPath(doc, "document")
	require.NoError(t, err)
	assert.Equal(t, "document.info", seen)
	assert.Equal(t, "document", out.MetaString(MetaPath))
}

func TestNestedEntryDispatchesThroughSubTable(t *testing.T) {
	sub := NewTable()
	sub.RegisterFunc("object", tagAs("schema"))

	table := NewTable()
	table.Register("object", Nested(sub))

	n := node.Object()
	n.TypeTag = "object"
	out, err := table.Dispatch(n)
	require.NoError(t, err)
	assert.Equal(t, "schema", out.TypeTag)
}
