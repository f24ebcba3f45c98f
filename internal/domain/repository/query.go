// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"slices"
)

// Operator is a comparison supported by every document store backend.
type Operator string

const (
	OpEqual        Operator = "=="
	OpIn           Operator = "in"
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
)

// MaxInValues is the largest membership list a single "in" predicate may carry.
const MaxInValues = 30

// Direction orders query results.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Filter is one predicate over a document field. Field names are the stored document field names.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// Ordering sorts results by a document field.
type Ordering struct {
	Field     string
	Direction Direction
}

// Query is an immutable description of a collection query.
// Builder methods return a new Query and never modify the receiver.
type Query struct {
	Filters   []Filter
	Orderings []Ordering
	Limit     int
}

// NewQuery returns an empty query matching every document.
func NewQuery() Query {
	return Query{}
}

// Where adds a predicate.
func (q Query) Where(field string, op Operator, value any) Query {
	next := q.clone()
	next.Filters = append(next.Filters, Filter{Field: field, Op: op, Value: value})

	return next
}

// OrderBy adds a sort key.
func (q Query) OrderBy(field string, dir Direction) Query {
	next := q.clone()
	next.Orderings = append(next.Orderings, Ordering{Field: field, Direction: dir})

	return next
}

// WithLimit caps the number of returned documents. Zero means unlimited.
func (q Query) WithLimit(n int) Query {
	next := q.clone()
	next.Limit = n

	return next
}

func (q Query) clone() Query {
	return Query{
		Filters:   slices.Clone(q.Filters),
		Orderings: slices.Clone(q.Orderings),
		Limit:     q.Limit,
	}
}

// Registration is a live listener registration held by a subscriber.
// Remove withdraws the listener synchronously: once it returns, the backend
// invokes no further callbacks. Remove is idempotent and must not be called
// from inside a snapshot callback.
type Registration interface {
	Remove()
}

// RegistrationFunc adapts a function to the Registration interface.
type RegistrationFunc func()

// Remove calls f.
func (f RegistrationFunc) Remove() {
	f()
}

// Watchable is a collection that pushes whole result sets whenever the result of a query changes.
// Callbacks are invoked sequentially from a single goroutine. onError is terminal: after it
// fires the registration delivers nothing further.
type Watchable[T any] interface {
	Watch(ctx context.Context, q Query, onSnapshot func([]T), onError func(error)) (Registration, error)
}

// Collection supports both one-shot and live queries.
type Collection[T any] interface {
	Watchable[T]

	// List runs the query once.
	List(ctx context.Context, q Query) ([]T, error)
}
