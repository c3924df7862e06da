// Package display bridges opaque backend string identifiers with the numeric
// keys the UI layer needs for list rendering and local cross-referencing.
//
// The mapping lives for the process lifetime only: it is rebuilt lazily as
// entities are converted and is never persisted. A display identifier is
// resolvable back to its backend identifier only after that entity has been
// converted at least once in the current process.
package display

import (
	"math"
	"sync"
	"unicode/utf16"
)

// HashID computes the session key for a backend identifier: a polynomial
// rolling hash (h = h*31 + c) over the UTF-16 code units of s, wrapped to a
// 32-bit signed integer at every step, absolute value taken. The empty
// string hashes to 0. Collisions between distinct inputs are possible and
// tolerated; the value is a rendering key, not an identity.
func HashID(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return absInt32(h)
}

// absInt32 takes the absolute value, pinned to int32: math.MinInt32 has no
// positive counterpart, so it clamps to MaxInt32 rather than reuse the empty
// string's 0.
func absInt32(h int32) int32 {
	switch {
	case h == math.MinInt32:
		return math.MaxInt32
	case h < 0:
		return -h
	}
	return h
}

// Adapter owns the bidirectional identifier tables for one app session.
// Construct one per session (or per test) rather than sharing ambient state.
type Adapter struct {
	mu      sync.Mutex
	forward map[string]int32
	reverse map[int32]string
}

func NewAdapter() *Adapter {
	return &Adapter{
		forward: make(map[string]int32),
		reverse: make(map[int32]string),
	}
}

// ToDisplayID converts a backend identifier to its numeric display key and
// records the pair in both tables, overwriting any prior mapping for
// remoteID. It never fails; any input, including the empty string, yields a
// value.
func (a *Adapter) ToDisplayID(remoteID string) int32 {
	id := HashID(remoteID)

	a.mu.Lock()
	a.forward[remoteID] = id
	a.reverse[id] = remoteID
	a.mu.Unlock()

	return id
}

// FromDisplayID resolves a display key back to the backend identifier that
// produced it. The second return is false when the key was never produced by
// ToDisplayID in this process; callers must abort the operation in that case
// rather than guess which entity was meant.
func (a *Adapter) FromDisplayID(id int32) (string, bool) {
	a.mu.Lock()
	remoteID, ok := a.reverse[id]
	a.mu.Unlock()
	return remoteID, ok
}

// Len reports how many backend identifiers are currently mapped.
func (a *Adapter) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.forward)
}
