// Package kv is the key-value storage capability the client state lives in.
// Stores depend on Storage only, so they run against memory in tests and
// against Redis or PostgreSQL in the storefront server.
package kv

import (
	"context"
	"encoding/json"

	"beautyverse-storefront/internal/pkg/errs"
)

type Storage interface {
	// Get returns ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove is idempotent.
	Remove(ctx context.Context, key string) error
}

// GetJSON decodes the value under key into v. ok=false means the key is absent
// and v is untouched.
func GetJSON(ctx context.Context, s Storage, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, errs.Mark(err, errs.ErrStorageFailed)
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, errs.Mark(errs.Wrapf(err, "decode %s", key), errs.ErrCorruptState)
	}
	return true, nil
}

func SetJSON(ctx context.Context, s Storage, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrapf(err, "encode %s", key)
	}
	if err := s.Set(ctx, key, string(b)); err != nil {
		return errs.Mark(err, errs.ErrStorageFailed)
	}
	return nil
}

// RemoveAll removes every key and returns the first failure.
func RemoveAll(ctx context.Context, s Storage, keys ...string) error {
	var first error
	for _, k := range keys {
		if err := s.Remove(ctx, k); err != nil && first == nil {
			first = errs.Mark(err, errs.ErrStorageFailed)
		}
	}
	return first
}
