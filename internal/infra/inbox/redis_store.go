package inbox

import (
	"context"
	"encoding/json"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix       = "canteen:inbox:"
	maxTxAttempts   = 5
	defaultInboxTTL = 30 * 24 * time.Hour
)

// redisStore keeps inboxes in Redis so every API instance sees the same list. Each user has a
// hash of notifications keyed by ID and a flag key for the unread state.
type redisStore struct {
	client   *redis.Client
	maxItems int
	ttl      time.Duration
}

// NewRedisStore creates a Redis-backed inbox store bounded to maxItems entries per user.
func NewRedisStore(client *redis.Client, maxItems int) repository.InboxRepository {
	return &redisStore{client: client, maxItems: maxItems, ttl: defaultInboxTTL}
}

func notesKey(uid string) string  { return keyPrefix + uid + ":notes" }
func unreadKey(uid string) string { return keyPrefix + uid + ":unread" }

// Add merges notes under an optimistic transaction on the user's hash and retries when a
// concurrent writer touched it.
func (s *redisStore) Add(ctx context.Context, uid string, notes []entity.Notification) error {
	if len(notes) == 0 {
		return nil
	}

	key := notesKey(uid)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return errors.Wrap(err, "failed to read inbox")
		}
		existing, err := decodeAll(raw)
		if err != nil {
			return err
		}
		kept := merge(existing, notes, s.maxItems)

		keep := make(map[string]struct{}, len(kept))
		values := make([]any, 0, 2*len(kept))
		for _, note := range kept {
			keep[note.ID] = struct{}{}
			data, err := json.Marshal(note)
			if err != nil {
				return errors.WithStack(err)
			}
			values = append(values, note.ID, data)
		}
		var evicted []string
		for _, note := range existing {
			if _, ok := keep[note.ID]; !ok {
				evicted = append(evicted, note.ID)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, values...)
			if len(evicted) > 0 {
				pipe.HDel(ctx, key, evicted...)
			}
			pipe.Expire(ctx, key, s.ttl)
			pipe.Set(ctx, unreadKey(uid), "1", s.ttl)

			return nil
		})

		return err
	}

	for range maxTxAttempts {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to add notifications")
		}

		return nil
	}

	return errors.New("failed to add notifications: too much contention")
}

func (s *redisStore) List(ctx context.Context, uid string) ([]entity.Notification, bool, error) {
	var (
		all    *redis.MapStringStringCmd
		unread *redis.IntCmd
	)
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		all = pipe.HGetAll(ctx, notesKey(uid))
		unread = pipe.Exists(ctx, unreadKey(uid))

		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read inbox")
	}

	notes, err := decodeAll(all.Val())
	if err != nil {
		return nil, false, err
	}
	sortNewestFirst(notes)

	return notes, unread.Val() == 1, nil
}

func (s *redisStore) MarkRead(ctx context.Context, uid string) error {
	return errors.Wrap(s.client.Del(ctx, unreadKey(uid)).Err(), "failed to mark inbox read")
}

func (s *redisStore) Clear(ctx context.Context, uid string) error {
	return errors.Wrap(s.client.Del(ctx, notesKey(uid), unreadKey(uid)).Err(), "failed to clear inbox")
}

func decodeAll(raw map[string]string) ([]entity.Notification, error) {
	notes := make([]entity.Notification, 0, len(raw))
	for id, data := range raw {
		var note entity.Notification
		if err := json.Unmarshal([]byte(data), &note); err != nil {
			return nil, errors.Wrapf(err, "failed to decode notification %s", id)
		}
		notes = append(notes, note)
	}

	return notes, nil
}
