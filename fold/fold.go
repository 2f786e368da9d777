package fold

import (
	"fmt"

	"github.com/erraggy/specfold/node"
)

// Folder is the recursive rewrite contract: one override point per node
// kind. An override is responsible for producing a fully-formed
// replacement; if it wants generic recursive behavior over children it
// must invoke Object or Array explicitly.
type Folder interface {
	FoldNull(n *node.Node) (*node.Node, error)
	FoldBoolean(n *node.Node) (*node.Node, error)
	FoldNumber(n *node.Node) (*node.Node, error)
	FoldString(n *node.Node) (*node.Node, error)
	FoldArray(n *node.Node) (*node.Node, error)
	FoldObject(n *node.Node) (*node.Node, error)
}

// Fold dispatches n to the folder method matching its kind.
func Fold(f Folder, n *node.Node) (*node.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("fold: nil node")
	}
	switch n.Kind {
	case node.KindNull:
		return f.FoldNull(n)
	case node.KindBoolean:
		return f.FoldBoolean(n)
	case node.KindNumber:
		return f.FoldNumber(n)
	case node.KindString:
		return f.FoldString(n)
	case node.KindArray:
		return f.FoldArray(n)
	case node.KindObject:
		return f.FoldObject(n)
	default:
		return nil, fmt.Errorf("fold: unsupported node kind %d", n.Kind)
	}
}

// Object is the default object traversal: it copies the node's shell
// (type tag, classes, metadata) and rewrites every member key and value
// through the folder. The result is always a new node.
func Object(f Folder, n *node.Node) (*node.Node, error) {
	out := shell(n)
	if n.Members != nil {
		out.Members = make([]node.Member, 0, len(n.Members))
		for _, m := range n.Members {
			key, err := Fold(f, m.Key)
			if err != nil {
				return nil, err
			}
			value, err := Fold(f, m.Value)
			if err != nil {
				return nil, err
			}
			out.Members = append(out.Members, node.Member{Key: key, Value: value})
		}
	}
	return out, nil
}

// Array is the default array traversal: it copies the node's shell and
// rewrites every item through the folder. The result is always a new node.
func Array(f Folder, n *node.Node) (*node.Node, error) {
	out := shell(n)
	if n.Items != nil {
		out.Items = make([]*node.Node, 0, len(n.Items))
		for _, item := range n.Items {
			child, err := Fold(f, item)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, child)
		}
	}
	return out, nil
}

// shell copies everything about a container node except its children.
func shell(n *node.Node) *node.Node {
	cp := &node.Node{
		Kind:    n.Kind,
		TypeTag: n.TypeTag,
		Bool:    n.Bool,
		Number:  n.Number,
		Str:     n.Str,
	}
	if n.Classes != nil {
		cp.Classes = make([]string, len(n.Classes))
		copy(cp.Classes, n.Classes)
	}
	if n.Metadata != nil {
		cp.Metadata = make(map[string]any, len(n.Metadata))
		for k, v := range n.Metadata {
			cp.Metadata[k] = v
		}
	}
	return cp
}

// Identity is a Folder that returns every node unchanged. Embed it to
// override selected kinds; when an embedded override must reach nested
// children, also override the container kinds and invoke the default
// traversal with the outer folder (Go method promotion cannot recover it):
//
//	func (u upper) FoldObject(n *node.Node) (*node.Node, error) {
//	    return fold.Object(u, n)
//	}
type Identity struct{}

// FoldNull implements Folder.
func (Identity) FoldNull(n *node.Node) (*node.Node, error) { return n, nil }

// FoldBoolean implements Folder.
func (Identity) FoldBoolean(n *node.Node) (*node.Node, error) { return n, nil }

// FoldNumber implements Folder.
func (Identity) FoldNumber(n *node.Node) (*node.Node, error) { return n, nil }

// FoldString implements Folder.
func (Identity) FoldString(n *node.Node) (*node.Node, error) { return n, nil }

// FoldArray implements Folder.
func (Identity) FoldArray(n *node.Node) (*node.Node, error) { return n, nil }

// FoldObject implements Folder.
func (Identity) FoldObject(n *node.Node) (*node.Node, error) { return n, nil }

// Ensure Identity implements Folder at compile time.
var _ Folder = Identity{}
