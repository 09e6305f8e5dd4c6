package ebtree

import "bytes"

// String-keyed trees store their keys terminated: Node.Key holds the
// string bytes followed by one zero byte, and comparisons run up to and
// including the terminator. Because no string byte is zero, distinct
// strings always differ within the compared range and a shorter string
// orders before its extensions, so the in-order walk is plain
// lexicographic string order. The caller guarantees every key in a
// string tree is terminated; StringKey prepares one.

// StringKey returns a terminated key for s. This is a caller-side
// convenience and the only allocating function in the package; records
// on the hot path reference buffers the caller prepared ahead of time.
func StringKey(s string) []byte {
	k := make([]byte, len(s)+1)
	copy(k, s)
	return k
}

// StringInsert links the record at index new, whose Key must be a
// terminated string key, into the tree. Unique-mode rejection works as
// in Insert: the incumbent record is returned and the tree is left
// unchanged.
func StringInsert(nodes []Node, root *Root, new Ref) Ref {
	n := bytes.IndexByte(nodes[new].Key, 0)
	return Insert(nodes, root, new, n+1)
}

// StringLookup returns the record whose key is exactly key, NoRef when
// absent. A stored key merely extending key does not match.
func StringLookup(nodes []Node, root *Root, key []byte) Ref {
	return StringLookupLen(nodes, root, key, len(key))
}

// StringLookupLen is StringLookup over the first l bytes of key: it
// returns a record only if a stored key holds exactly those bytes
// followed by the terminator. The leftmost record sharing the l-byte
// prefix is the shortest, so one terminator check on it decides.
func StringLookupLen(nodes []Node, root *Root, key []byte, l int) Ref {
	i := Lookup(nodes, root, key, l)
	if i == NoRef || nodes[i].Key[l] != 0 {
		return NoRef
	}
	return i
}
