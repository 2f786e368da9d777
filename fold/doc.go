// Package fold provides the recursive rewrite contract applied node-by-node
// over a document tree.
//
// A [Folder] has one override point per node kind. [Fold] dispatches a node
// to the matching method; the [Object] and [Array] helpers implement the
// default traversal, deep-copying structure while recursively rewriting
// every child value (and, for objects, every child key) through the same
// contract. Embed [Identity] to override only the kinds you care about:
//
//	type upper struct{ fold.Identity }
//
//	func (u upper) FoldString(n *node.Node) (*node.Node, error) {
//	    return node.String(strings.ToUpper(n.Str)), nil
//	}
//
//	func (u upper) FoldObject(n *node.Node) (*node.Node, error) {
//	    return fold.Object(u, n) // default traversal with the outer folder
//	}
//
//	func (u upper) FoldArray(n *node.Node) (*node.Node, error) {
//	    return fold.Array(u, n)
//	}
//
//	out, err := fold.Fold(upper{}, doc)
//
// A fold never returns an aliased mutable reference into the source tree:
// every call yields either the original node untouched or a newly owned
// replacement, so concurrent read-only fan-out over the input tree is safe
// while the output tree is being built.
package fold
