package ebtree

import "fmt"

// Verify audits the structural invariants of the tree: child slots
// reference the arena and are correctly tagged, every record's parent
// links name the slots actually holding it, split bits strictly
// increase along every root-to-leaf path, every leaf sits on the side
// its key bit selects at each ordinary split, duplicate-group structure
// appears only below an anchor, and never in a unique-mode tree.
//
// This walks the whole tree and is meant for tests and storage
// migration checks, not for the hot path.
func Verify(nodes []Node, root *Root) error {
	if root.b[left] == None {
		return nil
	}
	return verifyChild(nodes, root.b[left], upRef(RootRef, left), -1, root.Unique())
}

// verifyChild checks the subtree hanging from tr, whose occupant's
// parent link must read up. floor is the nearest ordinary split bit
// above, -2 once inside a duplicate group.
func verifyChild(nodes []Node, tr, up TaggedRef, floor int, unique bool) error {
	i := tr.Ref()
	if uint64(i) >= uint64(len(nodes)) {
		return fmt.Errorf("%w: ref=%d arena=%d", ErrBadChildRef, i, len(nodes))
	}
	n := &nodes[i]

	if tr.Tag() == Leaf {
		if n.leafP != up {
			return fmt.Errorf("%w: leaf ref=%d", ErrBadParentLink, i)
		}
		return nil
	}

	if n.nodeP != up {
		return fmt.Errorf("%w: branch ref=%d", ErrBadParentLink, i)
	}
	if n.b[left] == None || n.b[right] == None {
		return fmt.Errorf("%w: ref=%d", ErrHalfBranch, i)
	}

	bit := int(n.bit)
	if bit < 0 {
		if unique {
			return fmt.Errorf("%w: ref=%d", ErrAnchorInUnique, i)
		}
	} else {
		if floor == -2 {
			// Ordinary split below a duplicate anchor.
			return fmt.Errorf("%w: ref=%d bit=%d inside a duplicate group", ErrBitOrder, i, bit)
		}
		if bit <= floor {
			return fmt.Errorf("%w: ref=%d bit=%d under bit=%d", ErrBitOrder, i, bit, floor)
		}
		for side := 0; side <= 1; side++ {
			if err := checkLeafBits(nodes, n.b[side], bit, side); err != nil {
				return fmt.Errorf("%w: below ref=%d", err, i)
			}
		}
	}

	childFloor := bit
	if bit < 0 {
		childFloor = -2
	}
	for side := 0; side <= 1; side++ {
		if err := verifyChild(nodes, n.b[side], upRef(i, side), childFloor, unique); err != nil {
			return err
		}
	}
	return nil
}

// checkLeafBits verifies every leaf key below tr carries bit value want
// at position bit.
func checkLeafBits(nodes []Node, tr TaggedRef, bit, want int) error {
	i := tr.Ref()
	if tr.Tag() == Leaf {
		k := nodes[i].Key
		if int(k[bit>>3]>>(7-uint(bit)&7))&1 != want {
			return fmt.Errorf("%w: leaf ref=%d bit=%d want=%d", ErrSplitBitSide, i, bit, want)
		}
		return nil
	}
	if err := checkLeafBits(nodes, nodes[i].b[left], bit, want); err != nil {
		return err
	}
	return checkLeafBits(nodes, nodes[i].b[right], bit, want)
}
