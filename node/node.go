package node

// Kind identifies the structural variant of a Node.
type Kind int

const (
	// KindNull is the null value.
	KindNull Kind = iota
	// KindBoolean is a true/false value.
	KindBoolean
	// KindNumber is a double-precision number.
	KindNumber
	// KindString is a UTF-8 string.
	KindString
	// KindArray is an ordered sequence of nodes.
	KindArray
	// KindObject is an ordered sequence of key/value members.
	KindObject
)

// String returns the generic tag name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a key/value pair inside an object node.
// The key is always a string node so that it can carry classification
// labels and metadata of its own (pattern-field results attach here).
type Member struct {
	Key   *Node
	Value *Node
}

// Node is the universal tree unit. Exactly one payload field is meaningful
// for a given Kind: Bool for booleans, Number for numbers, Str for strings,
// Items for arrays, Members for objects.
type Node struct {
	// Kind is the structural variant. It never changes after construction.
	Kind Kind

	// TypeTag starts as the generic kind name and is set to a
	// specification type (e.g. "schema", "pathItem") by dispatch.
	TypeTag string

	// Classes is the ordered list of semantic labels attached to the node.
	// Duplicates are avoided by AddClass.
	Classes []string

	// Metadata records provenance, diagnostics, and processing outcomes.
	// It is allocated lazily by SetMeta.
	Metadata map[string]any

	Bool   bool
	Number float64
	Str    string

	Items   []*Node
	Members []Member
}

// Null returns a new null node.
func Null() *Node {
	return &Node{Kind: KindNull, TypeTag: "null"}
}

// Bool returns a new boolean node.
func Bool(v bool) *Node {
	return &Node{Kind: KindBoolean, TypeTag: "boolean", Bool: v}
}

// Number returns a new number node.
func Number(v float64) *Node {
	return &Node{Kind: KindNumber, TypeTag: "number", Number: v}
}

// String returns a new string node.
func String(v string) *Node {
	return &Node{Kind: KindString, TypeTag: "string", Str: v}
}

// Array returns a new array node with the given items.
func Array(items ...*Node) *Node {
	return &Node{Kind: KindArray, TypeTag: "array", Items: items}
}

// Object returns a new object node with the given members.
func Object(members ...Member) *Node {
	return &Node{Kind: KindObject, TypeTag: "object", Members: members}
}

// Field builds a member with a plain string key.
func Field(name string, value *Node) Member {
	return Member{Key: String(name), Value: value}
}

// IsScalar reports whether the node is a terminal (non-container) node.
func (n *Node) IsScalar() bool {
	return n.Kind != KindArray && n.Kind != KindObject
}

// Typed reports whether dispatch has assigned the node a specification
// type beyond its generic kind name.
func (n *Node) Typed() bool {
	return n.TypeTag != n.Kind.String()
}

// Get returns the value of the named member and whether it exists.
// Only meaningful for object nodes.
func (n *Node) Get(name string) (*Node, bool) {
	for _, m := range n.Members {
		if m.Key != nil && m.Key.Str == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Set replaces the named member's value in place, or appends a new member
// if the name is not present. Member order is preserved on replace.
func (n *Node) Set(name string, value *Node) {
	for i, m := range n.Members {
		if m.Key != nil && m.Key.Str == name {
			n.Members[i].Value = value
			return
		}
	}
	n.Members = append(n.Members, Field(name, value))
}

// Delete removes the named member and reports whether it was present.
func (n *Node) Delete(name string) bool {
	for i, m := range n.Members {
		if m.Key != nil && m.Key.Str == name {
			n.Members = append(n.Members[:i], n.Members[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of children: members for objects, items for
// arrays, zero for scalars.
func (n *Node) Len() int {
	switch n.Kind {
	case KindObject:
		return len(n.Members)
	case KindArray:
		return len(n.Items)
	default:
		return 0
	}
}

// AddClass appends a classification label unless it is already present.
func (n *Node) AddClass(class string) {
	for _, c := range n.Classes {
		if c == class {
			return
		}
	}
	n.Classes = append(n.Classes, class)
}

// HasClass reports whether the node carries the given classification label.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// SetMeta records a metadata entry, allocating the map on first use.
func (n *Node) SetMeta(key string, value any) {
	if n.Metadata == nil {
		n.Metadata = make(map[string]any)
	}
	n.Metadata[key] = value
}

// Meta returns a metadata entry and whether it exists.
func (n *Node) Meta(key string) (any, bool) {
	v, ok := n.Metadata[key]
	return v, ok
}

// MetaString returns a metadata entry as a string, or "" when absent or
// not a string.
func (n *Node) MetaString(key string) string {
	if v, ok := n.Metadata[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
