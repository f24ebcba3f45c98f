package impl

import (
	"io"
	"log/slog"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/usecase/session"
)

var fixedNow = time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(uid string, verified, admin bool) *session.Session {
	return session.New(
		&entity.Identity{UID: uid, Email: uid + "@example.com", EmailVerified: verified},
		&entity.UserProfile{ID: uid, Name: "Name " + uid, AdminCheck: admin},
	)
}

func newTestSessionFrom(identity *entity.Identity, profile *entity.UserProfile) *session.Session {
	return session.New(identity, profile)
}
