package ebtree

import "bytes"

// Lookup returns the leftmost record whose key agrees with key on its
// first n bytes, NoRef when no stored key does. n == 0 places no
// constraint and returns the smallest key in the tree, ignoring key
// entirely. Because left subtrees hold the smaller keys, the leftmost
// match is the smallest stored key beginning with the n-byte prefix,
// which makes Lookup a prefix search when the tree holds terminated
// strings.
//
// The caller guarantees n does not exceed what may be read from key or
// from any stored key sharing its path; nothing is validated.
func Lookup(nodes []Node, root *Root, key []byte, n int) Ref {
	tr := root.b[left]
	if tr == None {
		return NoRef
	}
	if n == 0 {
		return walkDown(nodes, tr, left)
	}

	// pos counts the key bytes verified equal so far. Bytes before pos
	// are never re-read.
	pos := 0
	for {
		i := tr.Ref()
		node := &nodes[i]
		if tr.Tag() == Leaf {
			if !bytes.Equal(node.Key[pos:n], key[pos:n]) {
				return NoRef
			}
			return i
		}

		nb := int(node.bit)
		if nb < 0 {
			// Duplicate subtree: one full comparison against the
			// representative key decides; the group's first member is
			// its leftmost leaf.
			if !bytes.Equal(node.Key[pos:n], key[pos:n]) {
				return NoRef
			}
			return walkDown(nodes, node.b[left], left)
		}

		// Catch up whole bytes until the one holding the split bit.
		// shift is the split bit's offset from the low end of its
		// byte, negative while that byte is still ahead of pos.
		shift := pos<<3 + 7 - nb
		if shift < 0 {
			for {
				if node.Key[pos] != key[pos] {
					return NoRef
				}
				pos++
				if pos == n {
					// The whole requested prefix matched before any
					// split decision was needed: every leaf below
					// shares it, the leftmost is the answer.
					return walkDown(nodes, node.b[left], left)
				}
				shift += 8
				if shift >= 0 {
					break
				}
			}
		}

		// Only the split byte remains. If the keys differ above the
		// split bit the prefix is absent; otherwise the split bit
		// itself picks the side.
		side := key[pos] >> uint(shift)
		if (node.Key[pos]>>uint(shift))^side > 1 {
			return NoRef
		}
		tr = node.b[side&1]
	}
}

// Insert links the record at index new, whose Key must already be set,
// into the tree, comparing keys over their first n bytes. It returns
// the record present in the tree for that key afterwards: new itself,
// or, in a unique-mode tree whose first n key bytes are already stored,
// the incumbent record, in which case the tree is unchanged and the
// caller detects the rejection by the returned index differing from
// new.
//
// The new record contributes its own branch aspect wherever a split is
// needed, so no allocation ever happens here.
func Insert(nodes []Node, root *Root, new Ref, n int) Ref {
	newNode := &nodes[new]
	side := left
	parent := RootRef
	tr := root.b[left]
	if tr == None {
		root.b[left] = Tagged(new, Leaf)
		newNode.leafP = upRef(RootRef, left)
		newNode.nodeP = None // branch aspect unused until a split lands here
		return new
	}

	lenBits := n << 3

	// bit carries the number of leading bits known equal between the
	// new key and every key of the subtree under inspection. As long
	// as keys agree, descent follows the correct side, so bits below
	// the nodes actually visited never need comparing twice.
	bit := 0
	for {
		if tr.Tag() == Leaf {
			old := tr.Ref()
			oldNode := &nodes[old]

			bit = EqualBits(newNode.Key, oldNode.Key, bit, lenBits)
			diff := 0
			if bit>>3 < n {
				diff = CmpBits(newNode.Key, oldNode.Key, bit)
			}

			if diff == 0 && root.Unique() {
				return old
			}

			// The new record's branch aspect takes over the slot the
			// old leaf hung from; both records become its children.
			newNode.nodeP = oldNode.leafP
			if diff < 0 {
				newNode.leafP = upRef(new, left)
				oldNode.leafP = upRef(new, right)
				newNode.b[left] = Tagged(new, Leaf)
				newNode.b[right] = Tagged(old, Leaf)
			} else {
				oldNode.leafP = upRef(new, left)
				newNode.leafP = upRef(new, right)
				newNode.b[left] = Tagged(old, Leaf)
				newNode.b[right] = Tagged(new, Leaf)
				if diff == 0 {
					// Keys identical over the compared length: the
					// new branch anchors a duplicate group instead of
					// splitting on a bit.
					newNode.bit = -1
					setSlot(nodes, root, parent, side, Tagged(new, Branch))
					return new
				}
			}
			break
		}

		old := tr.Ref()
		oldNode := &nodes[old]
		oldBit := int(oldNode.bit)

		if oldBit < 0 {
			// Above a duplicate subtree equality can only be decided
			// over the whole compared length.
			bit = EqualBits(newNode.Key, oldNode.Key, bit, lenBits)
		} else {
			if bit < oldBit {
				bit = EqualBits(newNode.Key, oldNode.Key, bit, oldBit)
			}
			if bit >= oldBit {
				// All bits up to this split are shared: walk down the
				// side the new key's split bit selects.
				parent = old
				side = int(newNode.Key[oldBit>>3]>>(7-uint(oldBit)&7)) & 1
				tr = oldNode.b[side]
				continue
			}
		}

		// The divergence lies above this node: splice the new record
		// in, reattaching the entire existing subtree intact as one
		// child.
		diff := 0
		if bit>>3 < n {
			diff = CmpBits(newNode.Key, oldNode.Key, bit)
		}
		if diff == 0 {
			// Fully equal over the compared length, which only
			// happens against a duplicate anchor: hand the record to
			// the group.
			return InsertDup(nodes, root, old, new)
		}

		newNode.nodeP = oldNode.nodeP
		if diff < 0 {
			newNode.leafP = upRef(new, left)
			oldNode.nodeP = upRef(new, right)
			newNode.b[left] = Tagged(new, Leaf)
			newNode.b[right] = Tagged(old, Branch)
		} else {
			oldNode.nodeP = upRef(new, left)
			newNode.leafP = upRef(new, right)
			newNode.b[left] = Tagged(old, Branch)
			newNode.b[right] = Tagged(new, Leaf)
		}
		break
	}

	// The slot the displaced child occupied still reads (parent, side);
	// the new branch splits there, at the first-difference bit found
	// on this step.
	newNode.bit = int32(bit)
	setSlot(nodes, root, parent, side, Tagged(new, Branch))
	return new
}
