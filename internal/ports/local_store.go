package ports

import "context"

// LocalStore is the client-side key/value storage the legacy web client kept in
// localStorage. Get returns domain.ErrLocalKeyNotFound for absent keys.
type LocalStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
}
