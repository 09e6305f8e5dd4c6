package ebtree

// walkDown descends from tr keeping to one side until a leaf is
// reached. On an empty slot the Leaf-tagged None unpacks straight to
// NoRef, so the empty tree needs no special case.
func walkDown(nodes []Node, tr TaggedRef, side int) Ref {
	for tr.Tag() == Branch {
		tr = nodes[tr.Ref()].b[side]
	}
	return tr.Ref()
}

// First returns the record with the smallest key, NoRef on an empty
// tree.
func First(nodes []Node, root *Root) Ref {
	return walkDown(nodes, root.b[left], left)
}

// Last returns the record with the largest key, NoRef on an empty tree.
func Last(nodes []Node, root *Root) Ref {
	return walkDown(nodes, root.b[left], right)
}

// Next returns the record following i in key order, NoRef at the end.
func Next(nodes []Node, i Ref) Ref {
	t := nodes[i].leafP
	// Climb while hanging off a right branch; a right link can never
	// belong to the tree handle.
	for t.side() == right {
		t = nodes[t.Ref()].nodeP
	}
	if t.Ref() == RootRef {
		return NoRef
	}
	return walkDown(nodes, nodes[t.Ref()].b[right], left)
}

// Prev returns the record preceding i in key order, NoRef at the start.
func Prev(nodes []Node, i Ref) Ref {
	t := nodes[i].leafP
	for t.side() == left {
		if t.Ref() == RootRef {
			return NoRef
		}
		t = nodes[t.Ref()].nodeP
	}
	return walkDown(nodes, nodes[t.Ref()].b[left], right)
}

// NextDup returns the record following i within its duplicate group,
// NoRef once the group is exhausted. The group enumerates in the order
// InsertDup linked it.
func NextDup(nodes []Node, i Ref) Ref {
	t := nodes[i].leafP
	for t.side() == right {
		t = nodes[t.Ref()].nodeP
	}
	if t.Ref() == RootRef || nodes[t.Ref()].bit >= 0 {
		// Leaving the duplicate subtree.
		return NoRef
	}
	return walkDown(nodes, nodes[t.Ref()].b[right], left)
}

// NextUnique returns the first record after i with a different key,
// skipping the remainder of i's duplicate group, NoRef at the end.
func NextUnique(nodes []Node, i Ref) Ref {
	t := nodes[i].leafP
	for {
		if t.side() == left {
			if t.Ref() == RootRef {
				return NoRef
			}
			// A left link under an ordinary branch leaves every
			// duplicate of i behind.
			if nodes[t.Ref()].bit >= 0 {
				break
			}
		}
		t = nodes[t.Ref()].nodeP
	}
	return walkDown(nodes, nodes[t.Ref()].b[right], left)
}
