package ebtree

import "errors"

// Node is one caller-owned record. It supplies both a leaf aspect (its
// key's position in the order) and, once a later insertion splits at
// it, a branch aspect. Records live in a caller-owned []Node arena and
// are addressed by Ref; the engine never allocates one.
//
// Key references externally owned bytes and is never copied or freed.
// The caller sets it before inserting the record and keeps the buffer
// valid and unchanged for as long as the record stays linked.
type Node struct {
	b     [2]TaggedRef // child slots, used by the branch aspect
	nodeP TaggedRef    // parent link of the branch aspect; None while unused
	leafP TaggedRef    // parent link of the leaf aspect; None while detached
	bit   int32        // split bit index; negative inside duplicate groups
	Key   []byte
}

// InTree reports whether the record's leaf aspect is linked.
func (n *Node) InTree() bool { return n.leafP != None }

// AsBranch reports whether the record's branch aspect is in use, that
// is, whether some insertion has split at this record.
func (n *Node) AsBranch() bool { return n.nodeP != None }

// SplitBit returns the branch aspect's split bit index. Negative values
// mark duplicate-group structure. Meaningless unless AsBranch.
func (n *Node) SplitBit() int { return int(n.bit) }

// Root is the tree handle. b[left] holds the tree; the tag bit of
// b[right], never its value, flags unique mode. The zero Root is an
// empty tree admitting duplicate keys.
type Root struct {
	b [2]TaggedRef
}

// UniqueRoot returns an empty tree that rejects exact-duplicate keys on
// insert.
func UniqueRoot() Root {
	var r Root
	r.b[right] = 1
	return r
}

// Unique reports whether the tree rejects exact-duplicate keys.
func (r *Root) Unique() bool { return r.b[right]&1 != 0 }

// Empty reports whether the tree holds no records.
func (r *Root) Empty() bool { return r.b[left] == None }

// setSlot writes the branch slot (parent, side), treating the tree
// handle like any other branch pair.
func setSlot(nodes []Node, root *Root, parent Ref, side int, v TaggedRef) {
	if parent == RootRef {
		root.b[side] = v
		return
	}
	nodes[parent].b[side] = v
}

// slotPtr resolves a parent link to the slot it names.
func slotPtr(nodes []Node, root *Root, up TaggedRef) *TaggedRef {
	if up.Ref() == RootRef {
		return &root.b[up.side()]
	}
	return &nodes[up.Ref()].b[up.side()]
}

// Verification errors. The hot-path operations never return errors:
// absence is NoRef and unique-mode rejection is the incumbent record.
var (
	ErrBadChildRef    = errors.New("ebtree: child slot references an index outside the arena")
	ErrBadParentLink  = errors.New("ebtree: parent link does not name the slot holding the record")
	ErrHalfBranch     = errors.New("ebtree: branch node with an empty child slot")
	ErrBitOrder       = errors.New("ebtree: split bits do not strictly increase along the path")
	ErrSplitBitSide   = errors.New("ebtree: leaf key bit does not match the side it is stored on")
	ErrAnchorInUnique = errors.New("ebtree: duplicate anchor found in a unique-mode tree")
)
