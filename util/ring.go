package util

// Ring is a fixed-capacity FIFO that overwrites its oldest entry when full.
type Ring[A any] struct {
	buf   []A
	start int
	size  int
}

func NewRing[A any](capacity int) *Ring[A] {
	return &Ring[A]{buf: make([]A, capacity)}
}

func (r *Ring[A]) Len() int {
	return r.size
}

func (r *Ring[A]) Push(v A) {
	if len(r.buf) == 0 {
		return
	}
	if r.size < len(r.buf) {
		r.buf[(r.start+r.size)%len(r.buf)] = v
		r.size++
		return
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
}

// At returns the i-th oldest entry.
func (r *Ring[A]) At(i int) A {
	return r.buf[(r.start+i)%len(r.buf)]
}

// Last returns the newest entry and false if the ring is empty.
func (r *Ring[A]) Last() (A, bool) {
	var zero A
	if r.size == 0 {
		return zero, false
	}
	return r.At(r.size - 1), true
}

func (r *Ring[A]) Reset() {
	r.start = 0
	r.size = 0
}

// Slice copies the entries out, oldest first.
func (r *Ring[A]) Slice() []A {
	res := make([]A, r.size)
	for i := range res {
		res[i] = r.At(i)
	}
	return res
}
