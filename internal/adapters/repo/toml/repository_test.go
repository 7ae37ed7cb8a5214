package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

func newStore(t *testing.T, path string) *LocalStore {
	t.Helper()

	store, err := NewLocalStore(path)
	require.NoError(t, err)
	return store
}

func TestLocalStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := newStore(t, filepath.Join(t.TempDir(), "local.toml"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.KeyUserName, "Asha"))
	require.NoError(t, store.Set(ctx, domain.KeyAddresses, `[{"label":"Home","line":"12 MG Road"}]`))

	name, err := store.Get(ctx, domain.KeyUserName)
	require.NoError(t, err)
	assert.Equal(t, "Asha", name)

	values, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		domain.KeyUserName:  "Asha",
		domain.KeyAddresses: `[{"label":"Home","line":"12 MG Road"}]`,
	}, values)
}

func TestLocalStoreMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	store := newStore(t, filepath.Join(t.TempDir(), "missing", "local.toml"))
	ctx := context.Background()

	values, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = store.Get(ctx, domain.KeyUserEmail)
	require.ErrorIs(t, err, domain.ErrLocalKeyNotFound)

	require.NoError(t, store.Delete(ctx, domain.KeyUserEmail))
	_, err = os.Stat(store.Path())
	assert.True(t, errors.Is(err, os.ErrNotExist), "deleting an absent key must not create the file")
}

func TestLocalStoreDeleteRemovesOnlyNamedKeys(t *testing.T) {
	t.Parallel()

	store := newStore(t, filepath.Join(t.TempDir(), "local.toml"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.KeyUserName, "Asha"))
	require.NoError(t, store.Set(ctx, domain.KeyUserEmail, "asha@example.com"))
	require.NoError(t, store.Set(ctx, "theme", "dark"))

	require.NoError(t, store.Delete(ctx, domain.SessionDataKeys()...))

	values, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "dark"}, values)
}

func TestLocalStoreCreatesFileWithOwnerOnlyPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "local.toml")
	store := newStore(t, path)

	require.NoError(t, store.Set(context.Background(), domain.KeyUserName, "Asha"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestLocalStoreMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "local.toml")
	require.NoError(t, os.WriteFile(path, []byte("values = ["), 0o600))

	_, err := newStore(t, path).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode local store")
}

func TestLocalStoreFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "local.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 999",
		"",
		"[values]",
		"userName = \"Asha\"",
		"",
	}, "\n")), 0o600))

	_, err := newStore(t, path).Get(context.Background(), domain.KeyUserName)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported local store schema version")
}

func TestLocalStoreCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	store := newStore(t, filepath.Join(t.TempDir(), "local.toml"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Set(ctx, domain.KeyUserName, "Asha")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLocalStoreRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	store := newStore(t, filepath.Join(t.TempDir(), "local.toml"))
	require.Error(t, store.Set(context.Background(), "", "x"))
}

func TestLocalStoreConcurrentWritesAcrossInstancesPreserveAllKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "local.toml")
	storeA := newStore(t, path)
	storeB := newStore(t, path)

	const perStoreWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perStoreWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(store *LocalStore, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perStoreWrites; i++ {
			errCh <- store.Set(context.Background(), prefix+strconv.Itoa(i), "v")
		}
	}
	go write(storeA, "a-")
	go write(storeB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	values, err := storeA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, values, perStoreWrites*2)
}
