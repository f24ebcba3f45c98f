package usecase

import "canteen/internal/usecase/session"

// Actor is the signed-in identity performing an operation.
type Actor struct {
	UID   string
	Name  string
	Admin bool
}

// ActorOf snapshots the acting identity of a session.
func ActorOf(s *session.Session) Actor {
	return Actor{
		UID:   s.UID(),
		Name:  s.DisplayName(),
		Admin: s.IsAdmin(),
	}
}
