package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualScalars(t *testing.T) {
	assert.True(t, Equal(Null(), Null()))
	assert.True(t, Equal(Bool(true), Bool(true)))
	assert.False(t, Equal(Bool(true), Bool(false)))
	assert.True(t, Equal(Number(1.5), Number(1.5)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.True(t, Equal(String("a"), String("a")))
	assert.False(t, Equal(String("a"), String("b")))
	assert.False(t, Equal(String("1"), Number(1)))
}

func TestEqualNil(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Null(), nil))
	assert.False(t, Equal(nil, Null()))
}

func TestEqualStructural(t *testing.T) {
	a := Object(
		Field("paths", Object(Field("/pets", Object()))),
		Field("tags", Array(String("x"))),
	)
	b := Object(
		Field("paths", Object(Field("/pets", Object()))),
		Field("tags", Array(String("x"))),
	)
	assert.True(t, Equal(a, b))

	// Member order is structural.
	c := Object(
		Field("tags", Array(String("x"))),
		Field("paths", Object(Field("/pets", Object()))),
	)
	assert.False(t, Equal(a, c))
}

func TestEqualTypeTagsAndClasses(t *testing.T) {
	a := Object()
	b := Object()
	assert.True(t, Equal(a, b))

	b.TypeTag = "schema"
	assert.False(t, Equal(a, b))

	a.TypeTag = "schema"
	assert.True(t, Equal(a, b))

	b.AddClass("fixed-field")
	assert.False(t, Equal(a, b))
}

func TestEqualIgnoresMetadata(t *testing.T) {
	a := Object(Field("name", String("Pet")))
	b := a.Clone()
	b.SetMeta("resolver.source", "cache")
	b.AddDiagnostic(Diagnostic{Message: "note", Severity: SeverityInfo})

	assert.True(t, Equal(a, b))
}
