package ebtree

/*

# Elastic binary tree primitives (in-place, allocation-free)

This package provides an ordered index over byte-string keys, encoded as
a crit-bit trie on top of a classic binary tree skeleton. It is intended
as the indexing primitive beneath higher level tables that need a
deterministic memory footprint and no allocation on the hot path.

It follows the same "functional primitives" style as the rest of this
family of packages:

- small, composable functions
- records held in preallocated, caller-owned storage
- index arithmetic instead of pointers
- a burden of knowledge on the caller for hot paths

## The one-record, two-roles trick

A tree over N keys needs N leaves and N-1 internal branch points. Every
Node carries both aspects: a leaf part (its own key's position in the
order) and a node part (a split point distinguishing two subtrees by one
key bit). The Nth inserted record contributes, through its own storage,
both the new leaf and - when the insertion splits an edge - the new
branch. Insertion therefore never allocates: all it does is rewire
reference slots around records the caller already owns.

A record's role is implied by which slots point at it, not by a stored
type tag. After a later insertion splits below it, the same record is
addressed as a leaf from above its leaf parent and as a branch from
above its node parent, simultaneously.

## References

All addressing is by Ref, an index into a caller-owned []Node arena. A
TaggedRef packs a Ref with one discriminant bit:

  - in a child slot, the bit is the role of the aspect referenced
    (Leaf or Branch);
  - in a parent link, the bit is the side the record hangs from.

The packing is (ref+1)<<1 | bit, so the zero TaggedRef is the empty
reference and zero-filled arenas are valid storage. The reserved index
RootRef names the tree handle itself in parent links, which lets the
splice and unsplice paths treat the root slot like any other branch
slot.

## Bit numbering

Keys are compared as bit strings, most significant bit first: bit 0 is
the top bit of byte 0. An ordinary branch with split bit b has all keys
with bit value 0 at b in its left subtree and all keys with bit value 1
in its right subtree, and split bits strictly increase along every
root-to-leaf path. Consequently the in-order walk (First/Next) visits
keys in lexicographic byte order.

Descent does not test every bit. As long as two keys agree, descent
follows the correct side regardless of which bits were actually
examined, so both lookup and insertion compare whole bytes and fall
back to bit arithmetic only inside the single byte known to hold the
decisive bit.

## Duplicate trees

A tree whose root is not unique-mode admits key-identical records. The
first duplicate converts the existing leaf's position into a duplicate
anchor: a branch with bit index -1 whose subtree holds only identical
keys. Further members are linked below by InsertDup, growing the group
rightward (bits -2, -3, ... above, holes refilled first), so an
undisturbed group enumerates in insertion order and the group's first
member remains the leftmost leaf. Lookup resolves a group by a single
full-length comparison against the anchor's representative key.

Unique-mode is flagged by the tag bit of the root's right slot, which is
never otherwise used; a unique-mode insertion of an existing key leaves
the tree untouched and returns the incumbent record.

## Caller contract

The engine performs no allocation, no I/O, no blocking and no bounds
validation. Keys are referenced, never copied: the caller keeps every
key buffer valid and unchanged while its record is inserted, keeps
records in the arena for as long as they are linked, and never passes a
length exceeding what may be read from the buffers involved. There is
no internal synchronization: concurrent lookups are safe only in the
absence of a writer. Violating any of this is undefined behavior, not a
detected error.

## Sources

The algorithms follow Willy Tarreau's elastic binary trees:

- https://1wt.eu/articles/ebtree/
- https://github.com/wtarreau/ebtree

with the pointer-and-tag representation transposed to arena indices.
General crit-bit background:

- https://cr.yp.to/critbit.html
- https://dotat.at/prog/qp/blog-2015-10-04.html

*/
