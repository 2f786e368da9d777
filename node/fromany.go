package node

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// FromAny converts an already-decoded Go value (map[string]any, []any,
// scalars) into a tree. Go maps carry no ordering, so object members are
// sorted by key for determinism; use FromYAML or FromJSON when source
// order matters.
func FromAny(v any) *Node {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return String(t.String())
		}
		return Number(f)
	case string:
		return String(t)
	case []any:
		arr := Array()
		for _, item := range t {
			arr.Items = append(arr.Items, FromAny(item))
		}
		return arr
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := Object()
		for _, k := range keys {
			obj.Members = append(obj.Members, Field(k, FromAny(t[k])))
		}
		return obj
	default:
		return String(fmt.Sprint(t))
	}
}

// ToAny converts the tree back into plain Go values. Object member order
// is lost (maps are unordered); use ToJSON or ToYAML to serialize with
// order preserved.
func (n *Node) ToAny() any {
	switch n.Kind {
	case KindNull:
		return nil
	case KindBoolean:
		return n.Bool
	case KindNumber:
		return n.Number
	case KindString:
		return n.Str
	case KindArray:
		items := make([]any, len(n.Items))
		for i, item := range n.Items {
			items[i] = item.ToAny()
		}
		return items
	case KindObject:
		m := make(map[string]any, len(n.Members))
		for _, member := range n.Members {
			m[member.Key.Str] = member.Value.ToAny()
		}
		return m
	default:
		return nil
	}
}
