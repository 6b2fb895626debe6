package json

import "fmt"

func (v *Value) assertArray(op string) {
	if v.typ != Array {
		panic(fmt.Sprintf("%s: %s called on %s value", ErrType, op, v.typ))
	}
}

// SetArray frees v's prior payload and makes it an empty Array with the
// given capacity preallocated (capacity == 0 allocates nothing).
func (v *Value) SetArray(capacity int) {
	v.Free()
	v.typ = Array
	if capacity > 0 {
		v.arr = make([]*Value, 0, capacity)
	}
}

// GetArraySize returns the number of live elements.
func (v *Value) GetArraySize() int {
	v.assertArray("GetArraySize")
	return len(v.arr)
}

// GetArrayCapacity returns the number of allocated element slots.
func (v *Value) GetArrayCapacity() int {
	v.assertArray("GetArrayCapacity")
	return cap(v.arr)
}

// growArrayCapacity enlarges v.arr's capacity to at least need, following
// the doubling policy: 0 -> 1, otherwise current capacity * 2. It never
// shrinks and never changes len(v.arr).
func growArrayCapacity(arr []*Value, need int) []*Value {
	if need <= cap(arr) {
		return arr
	}
	newCap := cap(arr)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < need {
		newCap *= 2
	}
	next := make([]*Value, len(arr), newCap)
	copy(next, arr)
	return next
}

// ReserveArray grows capacity to at least capacity, never shrinking.
func (v *Value) ReserveArray(capacity int) {
	v.assertArray("ReserveArray")
	if capacity > cap(v.arr) {
		next := make([]*Value, len(v.arr), capacity)
		copy(next, v.arr)
		v.arr = next
	}
}

// ShrinkArray reallocates so that capacity equals the current size.
func (v *Value) ShrinkArray() {
	v.assertArray("ShrinkArray")
	if cap(v.arr) == len(v.arr) {
		return
	}
	next := make([]*Value, len(v.arr))
	copy(next, v.arr)
	v.arr = next
}

// ClearArray frees every element and sets size to 0, keeping the existing
// capacity for reuse.
func (v *Value) ClearArray() {
	v.assertArray("ClearArray")
	for _, e := range v.arr {
		e.Free()
	}
	v.arr = v.arr[:0]
}

// GetArrayElement returns the i'th element. Out-of-range i panics like any
// Go slice index would; this is caller error, not a recoverable condition.
func (v *Value) GetArrayElement(i int) *Value {
	v.assertArray("GetArrayElement")
	return v.arr[i]
}

// PushBackArrayElement appends and returns a freshly-initialized Null slot,
// growing capacity per the doubling policy if needed.
func (v *Value) PushBackArrayElement() *Value {
	v.assertArray("PushBackArrayElement")
	v.arr = growArrayCapacity(v.arr, len(v.arr)+1)
	nv := &Value{}
	v.arr = append(v.arr, nv)
	return nv
}

// PopBackArrayElement frees and removes the last element.
func (v *Value) PopBackArrayElement() {
	v.assertArray("PopBackArrayElement")
	n := len(v.arr)
	v.arr[n-1].Free()
	v.arr = v.arr[:n-1]
}

// InsertArrayElement grows capacity if needed, shifts elements at and after
// i one slot to the right, and returns the freshly-initialized Null slot at
// index i.
func (v *Value) InsertArrayElement(i int) *Value {
	v.assertArray("InsertArrayElement")
	v.arr = growArrayCapacity(v.arr, len(v.arr)+1)
	v.arr = append(v.arr, nil)
	copy(v.arr[i+1:], v.arr[i:len(v.arr)-1])
	nv := &Value{}
	v.arr[i] = nv
	return nv
}

// EraseArrayElement frees elements [i, i+n) and shifts the remainder left.
func (v *Value) EraseArrayElement(i, n int) {
	v.assertArray("EraseArrayElement")
	for j := i; j < i+n; j++ {
		v.arr[j].Free()
	}
	copy(v.arr[i:], v.arr[i+n:])
	v.arr = v.arr[:len(v.arr)-n]
}
