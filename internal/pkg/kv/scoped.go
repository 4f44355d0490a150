package kv

import "context"

// Scoped prefixes every key, giving each storefront client its own namespace
// inside one shared backend.
type Scoped struct {
	inner  Storage
	prefix string
}

func NewScoped(inner Storage, prefix string) *Scoped {
	return &Scoped{inner: inner, prefix: prefix}
}

func (s *Scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *Scoped) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.prefix+key)
}

// ClientPrefix is the namespace of one storefront client.
func ClientPrefix(clientID string) string {
	return "client:" + clientID + ":"
}
