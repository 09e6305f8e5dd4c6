package ebtree

// InsertDup links the record at index new, whose key is known to be
// identical to the keys of the duplicate group rooted at sub, into that
// group, and returns the record now occupying the position (always
// new).
//
// Duplicate groups use negative split bits: the group's root carries
// the most negative bit and bits increase by one down the right spine,
// ending at -1 just above the newest leaf. New members graft onto the
// deepest hole in that spine when deletions have left one, otherwise
// above the spine's top, so an undisturbed group enumerates in
// insertion order.
func InsertDup(nodes []Node, root *Root, sub, new Ref) Ref {
	// Find the deepest hole on the right spine, if any.
	head := sub
	for nodes[head].b[right].Tag() == Branch {
		last := head
		head = nodes[head].b[right].Ref()
		if nodes[head].bit > nodes[last].bit+1 {
			// A level is missing below last; the subtree from here
			// down is where the new member belongs.
			sub = head
		}
	}

	if nodes[head].bit < -1 {
		// A hole sits right before head's leaf: the new record's
		// branch aspect fills the -1 level, keeping the old leaf on
		// its left.
		leaf := nodes[head].b[right].Ref()
		nodes[new].bit = -1
		nodes[head].b[right] = Tagged(new, Branch)

		nodes[new].nodeP = nodes[leaf].leafP
		nodes[new].leafP = upRef(new, right)
		nodes[leaf].leafP = upRef(new, left)
		nodes[new].b[left] = Tagged(leaf, Leaf)
		nodes[new].b[right] = Tagged(new, Leaf)
		return new
	}

	// No hole: insert above sub, one level lower than it. sub is not
	// necessarily on its parent's right, as it may be the group's
	// head.
	nodes[new].bit = nodes[sub].bit - 1
	up := nodes[sub].nodeP
	*slotPtr(nodes, root, up) = Tagged(new, Branch)

	nodes[new].nodeP = up
	nodes[new].leafP = upRef(new, right)
	nodes[sub].nodeP = upRef(new, left)
	nodes[new].b[left] = Tagged(sub, Branch)
	nodes[new].b[right] = Tagged(new, Leaf)
	return new
}
