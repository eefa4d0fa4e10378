package audio

import "sync"

// Overflow decides what the producer does when the ring is full.
type Overflow int

const (
	// Drop discards the new sample and counts it.
	Drop Overflow = iota

	// Block waits until the consumer makes room or the ring is closed.
	Block
)

func (o Overflow) String() string {
	switch o {
	case Drop:
		return "drop"
	case Block:
		return "block"
	}
	return "unknown"
}

// Ring is a fixed capacity single-producer/single-consumer queue of samples.
// The emulation pushes from its own goroutine and the audio device reads
// from another. Read never blocks.
type Ring struct {
	crit  sync.Mutex
	space *sync.Cond

	data   []float32
	head   int
	count  int
	policy Overflow
	closed bool

	dropped uint64
}

func NewRing(capacity int, policy Overflow) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	r := &Ring{
		data:   make([]float32, capacity),
		policy: policy,
	}
	r.space = sync.NewCond(&r.crit)
	return r
}

// PushSample implements the Sink interface.
func (r *Ring) PushSample(sample float32) {
	r.crit.Lock()
	defer r.crit.Unlock()

	for r.count == len(r.data) && r.policy == Block && !r.closed {
		r.space.Wait()
	}

	if r.closed || r.count == len(r.data) {
		r.dropped++
		return
	}

	r.data[(r.head+r.count)%len(r.data)] = sample
	r.count++
}

// Read copies up to len(p) samples into p, oldest first, and returns the
// number copied.
func (r *Ring) Read(p []float32) int {
	r.crit.Lock()
	defer r.crit.Unlock()

	n := 0
	for n < len(p) && r.count > 0 {
		p[n] = r.data[r.head]
		r.head = (r.head + 1) % len(r.data)
		r.count--
		n++
	}

	if n > 0 {
		r.space.Signal()
	}
	return n
}

func (r *Ring) Len() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.count
}

func (r *Ring) Cap() int {
	return len(r.data)
}

// Dropped returns the number of samples discarded because the ring was full
// or closed.
func (r *Ring) Dropped() uint64 {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.dropped
}

// Close releases a blocked producer. Samples pushed after Close are dropped.
func (r *Ring) Close() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.closed = true
	r.space.Broadcast()
}
