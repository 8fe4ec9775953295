// Package session holds the current location of a running display.
package session

import (
	"sync"

	"github.com/agent-platform/tools/yearprogress/internal/catalog"
)

// Session owns the single current-location slot. A manual selection always
// replaces the location; a detection result only applies while the user has
// not chosen one and the session is open. It is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	loc    catalog.Location
	set    bool
	manual bool
	closed bool
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Select records a location chosen by the user.
func (s *Session) Select(loc catalog.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.loc, s.set, s.manual = loc, true, true
}

// Detected records the result of automatic detection and reports whether it
// was applied. Results arriving after a manual selection or after Close are
// discarded.
func (s *Session) Detected(loc catalog.Location) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.manual {
		return false
	}
	s.loc, s.set = loc, true
	return true
}

// Current returns the current location, if any.
func (s *Session) Current() (catalog.Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loc, s.set
}

// Manual reports whether the current location was chosen by the user.
func (s *Session) Manual() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manual
}

// Close ends the session; later updates are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
