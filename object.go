package json

import "fmt"

func (v *Value) assertObject(op string) {
	if v.typ != Object {
		panic(fmt.Sprintf("%s: %s called on %s value", ErrType, op, v.typ))
	}
}

// SetObject frees v's prior payload and makes it an empty Object with the
// given capacity preallocated (capacity == 0 allocates nothing).
func (v *Value) SetObject(capacity int) {
	v.Free()
	v.typ = Object
	if capacity > 0 {
		v.obj = make([]member, 0, capacity)
	}
}

// GetObjectSize returns the number of live members.
func (v *Value) GetObjectSize() int {
	v.assertObject("GetObjectSize")
	return len(v.obj)
}

// GetObjectCapacity returns the number of allocated member slots.
func (v *Value) GetObjectCapacity() int {
	v.assertObject("GetObjectCapacity")
	return cap(v.obj)
}

func growObjectCapacity(obj []member, need int) []member {
	if need <= cap(obj) {
		return obj
	}
	newCap := cap(obj)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < need {
		newCap *= 2
	}
	next := make([]member, len(obj), newCap)
	copy(next, obj)
	return next
}

// ReserveObject grows capacity to at least capacity, never shrinking.
func (v *Value) ReserveObject(capacity int) {
	v.assertObject("ReserveObject")
	if capacity > cap(v.obj) {
		next := make([]member, len(v.obj), capacity)
		copy(next, v.obj)
		v.obj = next
	}
}

// ShrinkObject reallocates so that capacity equals the current size.
func (v *Value) ShrinkObject() {
	v.assertObject("ShrinkObject")
	if cap(v.obj) == len(v.obj) {
		return
	}
	next := make([]member, len(v.obj))
	copy(next, v.obj)
	v.obj = next
}

// ClearObject frees every member's value and empties the member list,
// keeping the existing capacity for reuse.
func (v *Value) ClearObject() {
	v.assertObject("ClearObject")
	for _, m := range v.obj {
		m.val.Free()
	}
	v.obj = v.obj[:0]
}

// GetObjectKey returns the i'th member's key.
func (v *Value) GetObjectKey(i int) string {
	v.assertObject("GetObjectKey")
	return v.obj[i].key
}

// GetObjectKeyLength returns len(GetObjectKey(i)).
func (v *Value) GetObjectKeyLength(i int) int {
	v.assertObject("GetObjectKeyLength")
	return len(v.obj[i].key)
}

// GetObjectValue returns the i'th member's value.
func (v *Value) GetObjectValue(i int) *Value {
	v.assertObject("GetObjectValue")
	return v.obj[i].val
}

// FindObjectIndex returns the index of the first member with the given key,
// or NotFound if no such member exists.
func (v *Value) FindObjectIndex(key string) int {
	v.assertObject("FindObjectIndex")
	for i, m := range v.obj {
		if m.key == key {
			return i
		}
	}
	return NotFound
}

// FindObjectValue returns the value of the first member with the given key,
// or nil if absent.
func (v *Value) FindObjectValue(key string) *Value {
	i := v.FindObjectIndex(key)
	if i == NotFound {
		return nil
	}
	return v.obj[i].val
}

// SetObjectValue returns the existing value slot for key if present;
// otherwise it appends a new (key, Null) member, growing capacity per the
// doubling policy, and returns the new Null slot. Calling this twice with
// the same key is idempotent: the second call neither grows size nor
// allocates a new member.
func (v *Value) SetObjectValue(key string) *Value {
	v.assertObject("SetObjectValue")
	if i := v.FindObjectIndex(key); i != NotFound {
		return v.obj[i].val
	}
	v.obj = growObjectCapacity(v.obj, len(v.obj)+1)
	nv := &Value{}
	v.obj = append(v.obj, member{key: key, val: nv})
	return nv
}

// RemoveObjectValue frees the key and value at index i directly and shifts
// the remaining members left. Unlike a naive port, this does not perform a
// second find-by-key lookup before removing.
func (v *Value) RemoveObjectValue(i int) {
	v.assertObject("RemoveObjectValue")
	v.obj[i].val.Free()
	copy(v.obj[i:], v.obj[i+1:])
	v.obj = v.obj[:len(v.obj)-1]
}
