// Package session keeps the live state of every signed-in identity: the identity itself,
// a snapshot of its profile and, for customers, the running notification deriver.
package session

import (
	"sync"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/usecase/live"
)

// Session is the process-side state of one signed-in identity.
type Session struct {
	uid     string
	changed *live.Signal

	mu       sync.Mutex
	identity entity.Identity
	profile  entity.UserProfile
	deriver  Deriver
	lastSeen time.Time
	streams  int
}

// New builds a session that no registry tracks. It runs no deriver.
func New(identity *entity.Identity, profile *entity.UserProfile) *Session {
	return newSession(identity, profile, time.Now())
}

func newSession(identity *entity.Identity, profile *entity.UserProfile, now time.Time) *Session {
	s := &Session{
		uid:      identity.UID,
		changed:  live.NewSignal(),
		identity: *identity,
		lastSeen: now,
	}
	s.setProfile(profile)

	return s
}

func (s *Session) setProfile(profile *entity.UserProfile) {
	if profile == nil {
		s.profile = entity.UserProfile{ID: s.uid}

		return
	}
	s.profile = *profile
}

// UID returns the identity UID.
func (s *Session) UID() string {
	return s.uid
}

// Identity returns a copy of the identity.
func (s *Session) Identity() *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity := s.identity

	return &identity
}

// Profile returns a copy of the profile snapshot.
func (s *Session) Profile() *entity.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.profile

	return &profile
}

// IsAdmin reports whether the profile snapshot carries the privileged flag.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.profile.AdminCheck
}

// DisplayName returns the name shown for this identity.
func (s *Session) DisplayName() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return entity.DisplayName(s.uid, &s.profile)
}

// Changed fires whenever the notification inbox of this session changes.
func (s *Session) Changed() *live.Signal {
	return s.changed
}

// DeriverState reports the notification deriver state, StateClosed when none runs.
func (s *Session) DeriverState() live.State {
	s.mu.Lock()
	d := s.deriver
	s.mu.Unlock()

	if d == nil {
		return live.StateClosed
	}

	return d.State()
}

// Acquire marks the session as used by a long-lived stream. Acquired sessions are never evicted.
// The returned function releases it and is idempotent.
func (s *Session) Acquire(now time.Time) func(time.Time) {
	s.mu.Lock()
	s.streams++
	s.lastSeen = now
	s.mu.Unlock()

	var once sync.Once

	return func(at time.Time) {
		once.Do(func() {
			s.mu.Lock()
			s.streams--
			s.lastSeen = at
			s.mu.Unlock()
		})
	}
}

func (s *Session) touch(identity *entity.Identity, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if identity != nil {
		s.identity = *identity
	}
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return now.Sub(s.lastSeen), s.streams > 0
}

func (s *Session) swapDeriver(d Deriver) Deriver {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.deriver
	s.deriver = d

	return prev
}
