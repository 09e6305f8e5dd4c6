package ebtree

// Ref is an arena record index.
type Ref uint32

const (
	// NoRef is returned by lookups and walks when no record matches.
	NoRef = ^Ref(0)

	// RootRef is the reserved index naming the tree handle in parent
	// links. It is never a valid arena index.
	RootRef Ref = 1<<31 - 2

	// MaxNodes is the largest arena capacity the packing supports.
	MaxNodes = int(RootRef)
)

// Tag is the role discriminant carried by a child slot.
type Tag uint32

const (
	Leaf   Tag = 0
	Branch Tag = 1
)

// Sides of a branch. The left subtree holds the lexicographically
// smaller keys. The same values tag parent links with the side the
// record hangs from.
const (
	left  = 0
	right = 1
)

// TaggedRef packs a Ref with one discriminant bit: the aspect role in a
// child slot, the side in a parent link. The packing is biased by one
// so the zero value is the empty reference.
type TaggedRef uint32

// None is the empty reference: the state of every slot in zero-filled
// storage.
const None TaggedRef = 0

// Tagged packs i with a role tag for use in a child slot.
func Tagged(i Ref, t Tag) TaggedRef {
	return TaggedRef(i+1)<<1 | TaggedRef(t)
}

// upRef packs i with a side for use in a parent link.
func upRef(i Ref, side int) TaggedRef {
	return TaggedRef(i+1)<<1 | TaggedRef(side)
}

// Ref unpacks the record index. None unpacks to NoRef, which walkDown
// relies on when it runs off an empty root slot.
func (t TaggedRef) Ref() Ref {
	return Ref(t>>1) - 1
}

// Tag unpacks the role bit of a child slot.
func (t TaggedRef) Tag() Tag {
	return Tag(t & 1)
}

// side unpacks the side bit of a parent link.
func (t TaggedRef) side() int {
	return int(t & 1)
}
