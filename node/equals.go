package node

// Equal reports whether two trees are structurally equal: same kinds,
// scalar payloads, type tags, classification labels, and children (member
// keys included, in order). Metadata is excluded so that annotation-only
// changes do not register as structural change; this is what the pass
// scheduler's default change policy relies on.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.TypeTag != b.TypeTag {
		return false
	}
	if !stringSlicesEqual(a.Classes, b.Classes) {
		return false
	}

	switch a.Kind {
	case KindNull:
		return true
	case KindBoolean:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Number == b.Number
	case KindString:
		return a.Str == b.Str
	case KindArray:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if !Equal(a.Members[i].Key, b.Members[i].Key) {
				return false
			}
			if !Equal(a.Members[i].Value, b.Members[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
