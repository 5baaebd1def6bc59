package credentials

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/columbo-connector/pkg/models/domain"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "credentials.ini"))
}

func TestFileStore_MissingFileReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	creds, err := store.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{}, creds)
	assert.False(t, creds.Valid())
}

func TestFileStore_SetThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	want := domain.Credentials{Username: "user@example.com", Token: "s3cret"}
	require.NoError(t, store.Set(ctx, want))

	got, err := store.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_SetOverwritesPrevious(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, domain.Credentials{Username: "old", Token: "old-tok"}))
	require.NoError(t, store.Set(ctx, domain.Credentials{Username: "new", Token: "new-tok"}))

	got, err := store.Get(ctx)

	require.NoError(t, err)
	assert.Equal(t, "new", got.Username)
	assert.Equal(t, "new-tok", got.Token)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, domain.Credentials{Username: "user", Token: "tok"}))

	require.NoError(t, store.Delete(ctx))
	require.NoError(t, store.Delete(ctx))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, got.Valid())
}
