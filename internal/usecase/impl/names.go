package impl

import (
	"context"
	"sync"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/util"

	"github.com/pkg/errors"
)

// nameLookup resolves display names for the UIDs shown on one screen. Names are fetched in
// batches no larger than the backend's membership limit and cached for the lifetime of the lookup.
type nameLookup struct {
	users repository.UserRepository

	mu    sync.Mutex
	names map[string]string
}

func newNameLookup(users repository.UserRepository) *nameLookup {
	return &nameLookup{
		users: users,
		names: make(map[string]string),
	}
}

// Resolve makes sure every uid has a name and returns the names keyed by UID.
// Missing profiles fall back to entity.DisplayName.
func (l *nameLookup) Resolve(ctx context.Context, uids []string) (map[string]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var missing []string
	for _, uid := range util.Dedupe(uids) {
		if _, ok := l.names[uid]; !ok {
			missing = append(missing, uid)
		}
	}

	for _, batch := range util.Chunk(nonEmpty(missing), repository.MaxInValues) {
		profiles, err := l.users.FindByIDs(ctx, batch)
		if err != nil {
			return nil, errors.Wrap(err, "failed to look up display names")
		}
		for _, uid := range batch {
			l.names[uid] = entity.DisplayName(uid, profiles[uid])
		}
	}

	resolved := make(map[string]string, len(uids))
	for _, uid := range uids {
		name, ok := l.names[uid]
		if !ok {
			name = entity.DisplayName(uid, nil)
		}
		resolved[uid] = name
	}

	return resolved, nil
}

func nonEmpty(uids []string) []string {
	out := uids[:0:0]
	for _, uid := range uids {
		if uid != "" {
			out = append(out, uid)
		}
	}

	return out
}
