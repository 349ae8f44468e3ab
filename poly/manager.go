// SPDX-License-Identifier: EPL-2.0

package poly

import "github.com/ik5/audsynth/signal"

// Manager holds the live voices of a polyphonic signal, keyed by K.
type Manager[K comparable] struct {
	voices map[K]signal.Voice
}

// NewManager builds an empty voice manager.
func NewManager[K comparable]() *Manager[K] {
	return &Manager[K]{voices: make(map[K]signal.Voice)}
}

// Add inserts a voice under key. If the key is already live, the previous
// voice is replaced without an explicit release; callers that want the old
// tail to ring out must pick distinct keys per note instance.
func (m *Manager[K]) Add(key K, v signal.Voice) {
	m.voices[key] = v
}

// Voice returns the live voice under key, if any.
func (m *Manager[K]) Voice(key K) (signal.Voice, bool) {
	v, ok := m.voices[key]
	return v, ok
}

// Len is the number of live voices, including ones in their release tail.
func (m *Manager[K]) Len() int {
	return len(m.voices)
}

// Release begins the release tail of the voice under key. Releasing a key
// that is not live is a no-op: the voice may simply have finished and been
// pruned already.
func (m *Manager[K]) Release(key K) {
	if v, ok := m.voices[key]; ok {
		v.Stop()
	}
}

// StopAll begins the release tail of every live voice.
func (m *Manager[K]) StopAll() {
	for _, v := range m.voices {
		v.Stop()
	}
}

// Get sums the current frame over every live voice.
func (m *Manager[K]) Get() signal.Frame {
	var sum signal.Frame
	for _, v := range m.voices {
		sum = sum.Add(v.Get())
	}
	return sum
}

// Advance moves every voice forward one sample, then prunes the ones that
// report completion, so a finished voice is absent starting the next sample.
func (m *Manager[K]) Advance() {
	for key, v := range m.voices {
		v.Advance()

		if v.Done() {
			delete(m.voices, key)
		}
	}
}

// Retrigger drops every voice, returning the manager to its initial state.
func (m *Manager[K]) Retrigger() {
	clear(m.voices)
}

// Stop implements signal.Voice by stopping every voice.
func (m *Manager[K]) Stop() {
	m.StopAll()
}

// Done reports true while no voices are live. An empty manager produces
// only silence, though adding a voice revives it.
func (m *Manager[K]) Done() bool {
	return len(m.voices) == 0
}
