package pp

// ring is a fixed-capacity double-ended queue over a single array.
// Elements are addressed by absolute indices that grow monotonically as
// elements are appended, so a position recorded while an element is
// buffered stays valid as the front advances. Overflow and underflow are
// internal invariant violations and panic.
type ring[T any] struct {
	buf   []T
	start int // buf position of the front element
	n     int
	off   int // absolute index of the front element
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{buf: make([]T, capacity)}
}

func (r *ring[T]) len() int { return r.n }

// firstIndex returns the absolute index of the front element.
func (r *ring[T]) firstIndex() int { return r.off }

// pushBack appends v and returns its absolute index.
func (r *ring[T]) pushBack(v T) int {
	if r.n == len(r.buf) {
		panic("pp: ring buffer overflow")
	}
	pos := r.start + r.n
	if pos >= len(r.buf) {
		pos -= len(r.buf)
	}
	r.buf[pos] = v
	r.n++
	return r.off + r.n - 1
}

func (r *ring[T]) popFront() T {
	if r.n == 0 {
		panic("pp: ring buffer underflow")
	}
	v := r.buf[r.start]
	r.start++
	if r.start == len(r.buf) {
		r.start = 0
	}
	r.n--
	r.off++
	return v
}

func (r *ring[T]) popBack() T {
	if r.n == 0 {
		panic("pp: ring buffer underflow")
	}
	r.n--
	pos := r.start + r.n
	if pos >= len(r.buf) {
		pos -= len(r.buf)
	}
	return r.buf[pos]
}

func (r *ring[T]) front() T { return r.at(r.off) }

func (r *ring[T]) back() T { return r.at(r.off + r.n - 1) }

// at returns the element at absolute index i.
func (r *ring[T]) at(i int) T { return r.buf[r.pos(i)] }

// set overwrites the element at absolute index i in place.
func (r *ring[T]) set(i int, v T) { r.buf[r.pos(i)] = v }

func (r *ring[T]) pos(i int) int {
	if i < r.off || i >= r.off+r.n {
		panic("pp: ring index outside buffered window")
	}
	pos := r.start + (i - r.off)
	if pos >= len(r.buf) {
		pos -= len(r.buf)
	}
	return pos
}

// clear resets the ring without reallocating.
func (r *ring[T]) clear() {
	r.start = 0
	r.n = 0
	r.off = 0
}
