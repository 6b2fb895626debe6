package json

// IsEqual reports whether a and b are structurally equal: same tag,
// numbers compared with IEEE-754 equality (so NaN != NaN and
// +0 == -0), strings by byte content, arrays element-wise in order, and
// objects by key set with order-insensitive, first-match value comparison.
func IsEqual(a, b *Value) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case Null, True, False:
		return true
	case Number:
		return a.num == b.num
	case String:
		return a.str == b.str
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !IsEqual(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for _, am := range a.obj {
			bv := b.FindObjectValue(am.key)
			if bv == nil || !IsEqual(am.val, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal reports whether v and other are structurally equal. It exists
// so github.com/google/go-cmp can compare *Value trees without reflecting
// into the unexported fields: cmp.Diff detects and calls this method
// instead of falling back to a field-by-field comparison.
func (v *Value) Equal(other *Value) bool {
	return IsEqual(v, other)
}

// Copy performs a deep, recursive clone of src into dst, freeing dst's
// prior payload first. The JSON value graph is always a tree (the parser
// cannot construct a cycle and this API never splices a subtree without
// copying), so the recursion always terminates.
func Copy(dst, src *Value) {
	if dst == src {
		return
	}
	dst.Free()
	switch src.typ {
	case Null, False, True:
		dst.typ = src.typ
	case Number:
		dst.typ = Number
		dst.num = src.num
	case String:
		// Go strings are immutable, so sharing the backing bytes between
		// src and dst cannot violate the "no aliased owned buffer" rule;
		// there is no mutable buffer to alias.
		dst.typ = String
		dst.str = src.str
	case Array:
		dst.typ = Array
		dst.arr = make([]*Value, len(src.arr))
		for i, e := range src.arr {
			nv := &Value{}
			Copy(nv, e)
			dst.arr[i] = nv
		}
	case Object:
		dst.typ = Object
		dst.obj = make([]member, len(src.obj))
		for i, m := range src.obj {
			nv := &Value{}
			Copy(nv, m.val)
			// Keys are copied by direct assignment of the (immutable)
			// string, never routed through SetString on a borrowed
			// *Value — the "copy a key via lept_set_string" bug the
			// original C source has doesn't translate to this
			// representation in the first place.
			dst.obj[i] = member{key: m.key, val: nv}
		}
	}
}

// Move transfers all payload from src to dst and resets src to Null. In Go,
// "transfer owned storage" is exactly a struct move: dst's old payload is
// simply orphaned for the garbage collector, and src's slice/string headers
// become dst's — no manual free-then-steal dance is needed, nor is one
// safe to skip a step of, the way it would be in a hand-rolled allocator.
func Move(dst, src *Value) {
	if dst == src {
		return
	}
	*dst = *src
	*src = Value{}
}

// Swap exchanges a and b's full representations. Swap is its own inverse:
// calling it twice in a row restores the original state of both values.
func Swap(a, b *Value) {
	if a == b {
		return
	}
	*a, *b = *b, *a
}
