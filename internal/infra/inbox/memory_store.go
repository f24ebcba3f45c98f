package inbox

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
)

type userInbox struct {
	notes  []entity.Notification
	unread bool
}

// memoryStore keeps inboxes in process memory. They are lost on restart.
type memoryStore struct {
	maxItems int

	mu      sync.Mutex
	inboxes map[string]*userInbox
}

// NewMemoryStore creates an in-process inbox store bounded to maxItems entries per user.
func NewMemoryStore(maxItems int) repository.InboxRepository {
	return &memoryStore{maxItems: maxItems, inboxes: make(map[string]*userInbox)}
}

func (s *memoryStore) Add(_ context.Context, uid string, notes []entity.Notification) error {
	if len(notes) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	box, ok := s.inboxes[uid]
	if !ok {
		box = &userInbox{}
		s.inboxes[uid] = box
	}
	box.notes = merge(box.notes, notes, s.maxItems)
	box.unread = true

	return nil
}

func (s *memoryStore) List(_ context.Context, uid string) ([]entity.Notification, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	box, ok := s.inboxes[uid]
	if !ok {
		return []entity.Notification{}, false, nil
	}

	return slices.Clone(box.notes), box.unread, nil
}

func (s *memoryStore) MarkRead(_ context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if box, ok := s.inboxes[uid]; ok {
		box.unread = false
	}

	return nil
}

func (s *memoryStore) Clear(_ context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inboxes, uid)

	return nil
}

// merge replaces entries of existing that share an ID with one of added, orders the result
// most recent first (ties by ID) and keeps the first maxItems.
func merge(existing, added []entity.Notification, maxItems int) []entity.Notification {
	byID := make(map[string]entity.Notification, len(existing)+len(added))
	for _, note := range existing {
		byID[note.ID] = note
	}
	for _, note := range added {
		byID[note.ID] = note
	}

	merged := make([]entity.Notification, 0, len(byID))
	for _, note := range byID {
		merged = append(merged, note)
	}
	sortNewestFirst(merged)
	if maxItems > 0 && len(merged) > maxItems {
		merged = merged[:maxItems]
	}

	return merged
}

func sortNewestFirst(notes []entity.Notification) {
	slices.SortFunc(notes, func(a, b entity.Notification) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
}
