package ebtree

// Delete unsplices the record at index i from the tree. Detached
// records are a no-op. The record's key buffer is untouched and the
// record may be reinserted afterwards.
//
// Removing a leaf frees exactly one branch position: the one its own
// parent occupied. When the deleted record's branch aspect is in use
// elsewhere in the tree, the freed parent record takes that role over,
// so no other subtree is disturbed.
func Delete(nodes []Node, root *Root, i Ref) {
	node := &nodes[i]
	if node.leafP == None {
		return
	}

	pside := node.leafP.side()
	parent := node.leafP.Ref()
	if parent == RootRef {
		// Sole leaf of the tree; only the root slot needs clearing.
		root.b[left] = None
		unlink(node)
		return
	}

	// Reparent the sibling directly onto the grandparent, releasing
	// the parent record's branch aspect.
	g := nodes[parent].nodeP
	sib := nodes[parent].b[1-pside]
	*slotPtr(nodes, root, g) = sib
	if sib.Tag() == Leaf {
		nodes[sib.Ref()].leafP = g
	} else {
		nodes[sib.Ref()].nodeP = g
	}

	// If parent == i this also marks our own branch aspect unused,
	// which the check below relies on.
	nodes[parent].nodeP = None

	if node.nodeP == None {
		unlink(node)
		return
	}

	// Our branch aspect is in use and parent is a different record,
	// by now spare: it inherits the role. Its key sits below i's
	// split position, so it bit-matches everything i distinguished.
	nodes[parent].nodeP = node.nodeP
	nodes[parent].b = node.b
	nodes[parent].bit = node.bit

	*slotPtr(nodes, root, nodes[parent].nodeP) = Tagged(parent, Branch)
	for side := 0; side <= 1; side++ {
		c := nodes[parent].b[side]
		if c.Tag() == Leaf {
			nodes[c.Ref()].leafP = upRef(parent, side)
		} else {
			nodes[c.Ref()].nodeP = upRef(parent, side)
		}
	}
	unlink(node)
}

// unlink resets a record to the detached state.
func unlink(n *Node) {
	n.leafP = None
	n.nodeP = None
	n.b[left] = None
	n.b[right] = None
}
