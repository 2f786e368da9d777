package fold

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/specfold/node"
)

// deepCopy rebuilds the whole tree through the default traversals.
type deepCopy struct{ Identity }

func (d deepCopy) FoldObject(n *node.Node) (*node.Node, error) { return Object(d, n) }
func (d deepCopy) FoldArray(n *node.Node) (*node.Node, error)  { return Array(d, n) }

// upper rewrites string values (keys included) to upper case.
type upper struct{ Identity }

func (u upper) FoldString(n *node.Node) (*node.Node, error) {
	return node.String(strings.ToUpper(n.Str)), nil
}
func (u upper) FoldObject(n *node.Node) (*node.Node, error) { return Object(u, n) }
func (u upper) FoldArray(n *node.Node) (*node.Node, error)  { return Array(u, n) }

// failOnBool errors on boolean nodes to exercise error propagation.
type failOnBool struct{ Identity }

func (f failOnBool) FoldBoolean(*node.Node) (*node.Node, error) {
	return nil, errors.New("no booleans allowed")
}
func (f failOnBool) FoldObject(n *node.Node) (*node.Node, error) { return Object(f, n) }
func (f failOnBool) FoldArray(n *node.Node) (*node.Node, error)  { return Array(f, n) }

func sampleDoc() *node.Node {
	doc := node.Object(
		node.Field("info", node.Object(node.Field("title", node.String("pets")))),
		node.Field("tags", node.Array(node.String("a"), node.Number(2))),
	)
	doc.TypeTag = "document"
	doc.AddClass("root")
	doc.SetMeta("source", "test")
	return doc
}

func TestIdentityReturnsInputUnchanged(t *testing.T) {
	doc := sampleDoc()
	out, err := Fold(Identity{}, doc)
	require.NoError(t, err)
	assert.Same(t, doc, out)
}

func TestDefaultTraversalDeepCopies(t *testing.T) {
	doc := sampleDoc()
	out, err := Fold(deepCopy{}, doc)
	require.NoError(t, err)

	require.True(t, node.Equal(doc, out))
	assert.NotSame(t, doc, out)

	// Container shell state travels with the copy.
	assert.Equal(t, "document", out.TypeTag)
	assert.True(t, out.HasClass("root"))
	assert.Equal(t, "test", out.MetaString("source"))

	// The output owns its structure: mutating it leaves the input intact.
	info, _ := out.Get("info")
	info.Set("title", node.String("changed"))
	origInfo, _ := doc.Get("info")
	title, _ := origInfo.Get("title")
	assert.Equal(t, "pets", title.Str)
}

func TestScalarOverrideReachesNestedChildren(t *testing.T) {
	doc := sampleDoc()
	out, err := Fold(upper{}, doc)
	require.NoError(t, err)

	// Keys and values are both rewritten.
	info, ok := out.Get("INFO")
	require.True(t, ok)
	title, ok := info.Get("TITLE")
	require.True(t, ok)
	assert.Equal(t, "PETS", title.Str)

	tags, _ := out.Get("TAGS")
	assert.Equal(t, "A", tags.Items[0].Str)
	assert.Equal(t, 2.0, tags.Items[1].Number)

	// Input untouched.
	_, ok = doc.Get("info")
	assert.True(t, ok)
}

func TestFoldErrorPropagates(t *testing.T) {
	doc := node.Object(
		node.Field("a", node.Array(node.String("x"), node.Bool(true))),
	)
	_, err := Fold(failOnBool{}, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no booleans allowed")
}

func TestFoldNilNode(t *testing.T) {
	_, err := Fold(Identity{}, nil)
	assert.Error(t, err)
}
