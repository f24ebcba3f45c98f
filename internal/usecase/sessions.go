package usecase

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/usecase/session"
)

// SessionRegistry tracks the sessions of signed-in identities. It is implemented by *session.Registry.
type SessionRegistry interface {
	Activate(ctx context.Context, identity *entity.Identity) (*session.Session, error)
	Get(uid string) (*session.Session, bool)
	Refresh(ctx context.Context, uid string) error
	End(ctx context.Context, uid string)
}

var _ SessionRegistry = (*session.Registry)(nil)
