package json

// growBuffer is the single growable byte arena shared by the parser (as its
// string-decoding scratch) and the stringifier (as its output buffer). It
// grows by 1.5x once its initial 256-byte capacity is exceeded, a fixed
// growth discipline chosen deliberately rather than relying on whatever
// factor append(...) happens to pick.
//
// Pushes are relative to a saved "top" offset so that a caller can discard
// everything it pushed on failure without touching what came before it.
// A slice taken directly from buf is only valid until the next push — the
// same reallocation hazard the original C implementation's stack has —
// which is why bytesFrom hands out an independent copy instead.
type growBuffer struct {
	buf []byte
}

const growBufferInitialCap = 256

func (b *growBuffer) top() int { return len(b.buf) }

func (b *growBuffer) truncate(top int) { b.buf = b.buf[:top] }

func (b *growBuffer) grow(extra int) {
	need := len(b.buf) + extra
	if need <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf)
	if newCap == 0 {
		newCap = growBufferInitialCap
	}
	for newCap < need {
		newCap += newCap / 2
	}
	next := make([]byte, len(b.buf), newCap)
	copy(next, b.buf)
	b.buf = next
}

func (b *growBuffer) pushByte(c byte) {
	b.grow(1)
	b.buf = append(b.buf, c)
}

func (b *growBuffer) pushString(s string) {
	b.grow(len(s))
	b.buf = append(b.buf, s...)
}

func (b *growBuffer) pushBytes(p []byte) {
	b.grow(len(p))
	b.buf = append(b.buf, p...)
}

// bytesFrom returns the region [from, top()) as a freshly-cut, independently
// owned string, so the caller may keep it across further pushes (which can
// reallocate the shared backing array).
func (b *growBuffer) bytesFrom(from int) string {
	return string(b.buf[from:])
}
