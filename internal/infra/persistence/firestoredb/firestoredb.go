// Package firestoredb implements the document store on Cloud Firestore, the managed backend
// the canteen runs on in production. Live queries are Firestore snapshot listeners.
package firestoredb

import (
	"context"
	"log/slog"
	"reflect"
	"sync"

	"canteen/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names.
const (
	CollectionUsers   = "Users"
	CollectionMenu    = "MenuItems"
	CollectionOrders  = "Orders"
	CollectionSupport = "Support"
)

// maxWritesPerCommit is the Firestore limit on writes in one transaction.
const maxWritesPerCommit = 500

// fields lists the document fields a collection may be filtered or ordered by.
type fields map[string]struct{}

func newFields(names ...string) fields {
	f := make(fields, len(names))
	for _, name := range names {
		f[name] = struct{}{}
	}

	return f
}

// build translates q onto base. It reports matchesNothing when an empty membership filter
// makes the result empty, since Firestore rejects "in" with no values.
func (f fields) build(base firestore.Query, q repository.Query) (query firestore.Query, matchesNothing bool, err error) {
	query = base
	for _, filter := range q.Filters {
		if _, ok := f[filter.Field]; !ok {
			return query, false, errors.Errorf("unsupported query field %q", filter.Field)
		}

		switch filter.Op {
		case repository.OpEqual, repository.OpLess, repository.OpLessEqual, repository.OpGreater, repository.OpGreaterEqual:
			query = query.Where(filter.Field, string(filter.Op), normalizeValue(filter.Value))
		case repository.OpIn:
			values := normalizeList(filter.Value)
			if len(values) > repository.MaxInValues {
				return query, false, errors.Errorf("%q filter on %s carries %d values, at most %d allowed", filter.Op, filter.Field, len(values), repository.MaxInValues)
			}
			if len(values) == 0 {
				matchesNothing = true

				continue
			}
			query = query.Where(filter.Field, string(filter.Op), values)
		default:
			return query, false, errors.Errorf("unsupported operator %q", filter.Op)
		}
	}

	for _, o := range q.Orderings {
		if _, ok := f[o.Field]; !ok {
			return query, false, errors.Errorf("unsupported order field %q", o.Field)
		}
		dir := firestore.Asc
		if o.Direction == repository.Descending {
			dir = firestore.Desc
		}
		query = query.OrderBy(o.Field, dir)
	}

	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	return query, matchesNothing, nil
}

// normalizeValue turns named string and bool types into their base types so they are
// encoded the same way they were written.
func normalizeValue(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	default:
		return v
	}
}

func normalizeList(v any) []any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{normalizeValue(v)}
	}

	values := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		values = append(values, normalizeValue(rv.Index(i).Interface()))
	}

	return values
}

// list runs query once and decodes every document.
func list[T any](ctx context.Context, query firestore.Query, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to run query")
	}

	return decodeAll(snaps, decode)
}

func decodeAll[T any](snaps []*firestore.DocumentSnapshot, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	docs := make([]T, 0, len(snaps))
	for _, snap := range snaps {
		doc, err := decode(snap)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode document %s", snap.Ref.ID)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// watch attaches a snapshot listener to query. Every snapshot carries the complete matched
// set. A listener error is reported once through onError and ends the watch; cancellation
// ends it silently. Remove waits for the listener goroutine to exit.
func watch[T any](
	ctx context.Context,
	logger *slog.Logger,
	collection string,
	query firestore.Query,
	matchesNothing bool,
	decode func(*firestore.DocumentSnapshot) (T, error),
	onSnapshot func([]T),
	onError func(error),
) repository.Registration {
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if matchesNothing {
			onSnapshot([]T{})
			<-runCtx.Done()

			return
		}

		it := query.Snapshots(runCtx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if runCtx.Err() != nil || status.Code(err) == codes.Canceled {
				return
			}
			if err == nil {
				var snaps []*firestore.DocumentSnapshot
				snaps, err = snap.Documents.GetAll()
				if err == nil {
					var docs []T
					if docs, err = decodeAll(snaps, decode); err == nil {
						onSnapshot(docs)

						continue
					}
				}
			}

			logger.Warn("Snapshot listener failed", slog.String("collection", collection), slog.Any("error", err))
			onError(err)

			return
		}
	}()

	var once sync.Once

	return repository.RegistrationFunc(func() {
		once.Do(func() {
			cancel()
			<-done
		})
	})
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// notFound converts a NotFound status into the repository's own sentinel.
func notFound(err, sentinel error, msg string) error {
	if isNotFound(err) {
		return sentinel
	}

	return errors.Wrap(err, msg)
}
