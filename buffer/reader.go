// SPDX-License-Identifier: EPL-2.0

package buffer

import "github.com/ik5/audsynth/signal"

// Exhaust selects what a reader does past the end of its buffer.
type Exhaust int

const (
	// Once plays the buffer a single time: silence past the end.
	Once Exhaust = iota
	// Loop wraps around forever.
	Loop
)

// Reader plays a buffer one frame per sample under an exhaustion policy.
// The reader never mutates the buffer, so many readers can share one.
type Reader struct {
	buf   *Buffer
	mode  Exhaust
	index int
}

// NewReader attaches a reader with the given policy.
func NewReader(buf *Buffer, mode Exhaust) *Reader {
	return &Reader{buf: buf, mode: mode}
}

// NewOnce attaches a play-once reader.
func NewOnce(buf *Buffer) *Reader { return NewReader(buf, Once) }

// NewLoop attaches a looping reader.
func NewLoop(buf *Buffer) *Reader { return NewReader(buf, Loop) }

// Buffer returns the shared buffer.
func (r *Reader) Buffer() *Buffer { return r.buf }

// Index is the current frame position.
func (r *Reader) Index() int { return r.index }

func (r *Reader) Get() signal.Frame {
	return r.buf.at(r.index, r.mode)
}

func (r *Reader) Advance() {
	r.index++
	if r.mode == Loop {
		r.index %= r.buf.Len()
	}
}

// Retrigger rewinds to the first frame.
func (r *Reader) Retrigger() {
	r.index = 0
}

// Stop truncates playback immediately: the buffer has no release shape of
// its own, so the cut is hard. Looping readers stop looping.
func (r *Reader) Stop() {
	r.mode = Once
	r.index = r.buf.Len()
}

// Done reports completion for play-once readers; a looping reader is never
// done until stopped.
func (r *Reader) Done() bool {
	return r.mode == Once && r.index >= r.buf.Len()
}
