package node

// Clone returns a deep copy of the node. Children, classification labels,
// and the metadata map are copied; metadata values are copied as-is except
// for diagnostic slices, which are duplicated so that annotating the copy
// never mutates the original.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	cp := &Node{
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
			if ds, ok := v.([]Diagnostic); ok {
				dup := make([]Diagnostic, len(ds))
				copy(dup, ds)
				cp.Metadata[k] = dup
				continue
			}
			cp.Metadata[k] = v
		}
	}

	if n.Items != nil {
		cp.Items = make([]*Node, len(n.Items))
		for i, item := range n.Items {
			cp.Items[i] = item.Clone()
		}
	}

	if n.Members != nil {
		cp.Members = make([]Member, len(n.Members))
		for i, m := range n.Members {
			cp.Members[i] = Member{Key: m.Key.Clone(), Value: m.Value.Clone()}
		}
	}

	return cp
}
