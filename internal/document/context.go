package document

import "context"

type storeKey struct{}

// NewContext returns a context carrying the session store
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// StoreFromContext returns the session store if one is attached
func StoreFromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(storeKey{}).(*Store)
	return s, ok && s != nil
}

// FromContext returns the session store and panics when none is attached.
// Reaching the document outside a session is a programming error.
func FromContext(ctx context.Context) *Store {
	s, ok := StoreFromContext(ctx)
	if !ok {
		panic("document: store accessed outside an active session; wrap the context with document.NewContext")
	}
	return s
}
