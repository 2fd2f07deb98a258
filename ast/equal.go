// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/creachadair/jdom"

// Equal reports whether a and b are structurally equal JSON values. A nil
// Value is equal to Null.
//
// Arrays are equal if they have equal elements in the same order. Objects are
// equal if their members are equal as multisets of key-value pairs: the order
// of members does not matter, but duplicate keys must occur the same number
// of times with equal values. Numbers are compared as by jdom.Number.Equal.
func Equal(a, b Value) bool {
	ka := KindOf(a)
	if ka != KindOf(b) {
		return false
	}
	switch ka {
	case jdom.NullKind, jdom.TrueKind, jdom.FalseKind:
		return true

	case jdom.StringKind:
		sa, ok1 := a.(String)
		sb, ok2 := b.(String)
		return ok1 && ok2 && sa == sb

	case jdom.NumberKind:
		na, ok1 := a.(Number)
		nb, ok2 := b.(Number)
		return ok1 && ok2 && na.Equal(nb.Number)

	case jdom.ArrayKind:
		xa, ok1 := a.(Array)
		xb, ok2 := b.(Array)
		if !ok1 || !ok2 || len(xa) != len(xb) {
			return false
		}
		for i := range xa {
			if !Equal(xa[i], xb[i]) {
				return false
			}
		}
		return true

	case jdom.ObjectKind:
		oa, ok1 := a.(Object)
		ob, ok2 := b.(Object)
		return ok1 && ok2 && equalMembers(oa, ob)
	}
	return false
}

// equalMembers reports whether a and b contain the same multiset of members.
// Since Equal is an equivalence, matching each member of a greedily against
// the first unused equal member of b finds a complete matching if one exists.
func equalMembers(a, b Object) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
nextMember:
	for i, m := range a {
		// Check the corresponding position first, as members are often in
		// the same order.
		if !used[i] && memberEqual(m, b[i]) {
			used[i] = true
			continue
		}
		for j, n := range b {
			if !used[j] && memberEqual(m, n) {
				used[j] = true
				continue nextMember
			}
		}
		return false
	}
	return true
}

func memberEqual(m, n *Member) bool { return m.Key == n.Key && Equal(m.Value, n.Value) }
