package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	orig := Object(
		Field("info", Object(Field("title", String("Pets")))),
		Field("tags", Array(String("a"), String("b"))),
	)
	orig.TypeTag = "document"
	orig.AddClass("root")
	orig.SetMeta("source", "pets.yaml")
	orig.AddDiagnostic(Diagnostic{Message: "note", Severity: SeverityInfo})

	cp := orig.Clone()
	require.True(t, Equal(orig, cp))

	// Mutating the copy must not affect the original.
	info, _ := cp.Get("info")
	info.Set("title", String("Changed"))
	cp.AddClass("extra")
	cp.SetMeta("source", "other.yaml")
	cp.AddDiagnostic(Diagnostic{Message: "second", Severity: SeverityWarning})

	title, _ := mustGet(t, orig, "info").Get("title")
	assert.Equal(t, "Pets", title.Str)
	assert.Equal(t, []string{"root"}, orig.Classes)
	assert.Equal(t, "pets.yaml", orig.MetaString("source"))
	assert.Len(t, orig.Diagnostics(), 1)
}

func TestCloneNil(t *testing.T) {
	var n *Node
	assert.Nil(t, n.Clone())
}

func mustGet(t *testing.T, n *Node, name string) *Node {
	t.Helper()
	v, ok := n.Get(name)
	require.True(t, ok, "missing member %q", name)
	return v
}
