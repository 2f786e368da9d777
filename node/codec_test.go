package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAMLPreservesOrder(t *testing.T) {
	data := []byte(`
openapi: 3.1.0
info:
  title: Pets
  version: 1.0.0
paths:
  /pets/{id}:
    get:
      responses:
        "200":
          description: ok
`)
	doc, err := FromYAML(data)
	require.NoError(t, err)
	require.Equal(t, KindObject, doc.Kind)

	keys := make([]string, 0, len(doc.Members))
	for _, m := range doc.Members {
		keys = append(keys, m.Key.Str)
	}
	assert.Equal(t, []string{"openapi", "info", "paths"}, keys)

	info := mustGet(t, doc, "info")
	assert.Equal(t, "title", info.Members[0].Key.Str)
	assert.Equal(t, "version", info.Members[1].Key.Str)
}

func TestFromYAMLScalars(t *testing.T) {
	doc, err := FromYAML([]byte(`
s: hello
i: 42
f: 2.5
b: true
n: null
quoted: "200"
`))
	require.NoError(t, err)

	assert.Equal(t, KindString, mustGet(t, doc, "s").Kind)
	assert.Equal(t, "hello", mustGet(t, doc, "s").Str)
	assert.Equal(t, 42.0, mustGet(t, doc, "i").Number)
	assert.Equal(t, 2.5, mustGet(t, doc, "f").Number)
	assert.True(t, mustGet(t, doc, "b").Bool)
	assert.Equal(t, KindNull, mustGet(t, doc, "n").Kind)
	// Quoted scalars stay strings.
	assert.Equal(t, "200", mustGet(t, doc, "quoted").Str)
}

func TestFromYAMLAcceptsJSON(t *testing.T) {
	doc, err := FromYAML([]byte(`{"a": [1, 2], "b": {"c": false}}`))
	require.NoError(t, err)
	a := mustGet(t, doc, "a")
	require.Equal(t, KindArray, a.Kind)
	assert.Equal(t, 2.0, a.Items[1].Number)
}

func TestFromJSONPreservesOrder(t *testing.T) {
	doc, err := FromJSON([]byte(`{"z": 1, "a": {"y": true, "b": null}, "m": ["x", 2.5]}`))
	require.NoError(t, err)

	assert.Equal(t, "z", doc.Members[0].Key.Str)
	assert.Equal(t, "a", doc.Members[1].Key.Str)
	assert.Equal(t, "m", doc.Members[2].Key.Str)

	inner := mustGet(t, doc, "a")
	assert.Equal(t, "y", inner.Members[0].Key.Str)
	assert.Equal(t, KindNull, inner.Members[1].Value.Kind)
}

func TestFromJSONRejectsTrailingContent(t *testing.T) {
	_, err := FromJSON([]byte(`{"a": 1} {"b": 2}`))
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	src := `{"openapi":"3.1.0","paths":{"/pets/{id}":{"get":{"deprecated":false,"x-rate":2.5}}},"tags":[null,"a"]}`
	doc, err := FromJSON([]byte(src))
	require.NoError(t, err)

	out, err := doc.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestYAMLRoundTripStructure(t *testing.T) {
	src := []byte("a: 1\nb:\n  - x\n  - true\n")
	doc, err := FromYAML(src)
	require.NoError(t, err)

	out, err := doc.ToYAML()
	require.NoError(t, err)

	again, err := FromYAML(out)
	require.NoError(t, err)
	assert.True(t, Equal(doc, again))
}

func TestFromAnySortsKeys(t *testing.T) {
	n := FromAny(map[string]any{"b": 1, "a": []any{true, nil}})
	require.Equal(t, KindObject, n.Kind)
	assert.Equal(t, "a", n.Members[0].Key.Str)
	assert.Equal(t, "b", n.Members[1].Key.Str)

	arr := mustGet(t, n, "a")
	require.Equal(t, KindArray, arr.Kind)
	assert.True(t, arr.Items[0].Bool)
	assert.Equal(t, KindNull, arr.Items[1].Kind)
}

func TestToAny(t *testing.T) {
	doc, err := FromJSON([]byte(`{"a": 1, "b": [true, "x"]}`))
	require.NoError(t, err)

	v, ok := doc.ToAny().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1.0, v["a"])
	assert.Equal(t, []any{true, "x"}, v["b"])
}
