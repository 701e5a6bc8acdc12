package store

import "context"

type contextKey struct{}

// NewContext returns a context carrying the store, scoping its lifetime the
// way the surrounding command run scopes a session.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the store placed by NewContext. Reading the store
// outside that scope is a programmer error, not a recoverable condition, so
// it panics instead of handing back a default that would mask the bug.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok {
		panic("store.FromContext called outside a store.NewContext scope")
	}
	return s
}
