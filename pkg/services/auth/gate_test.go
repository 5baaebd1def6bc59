package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/columbo-connector/pkg/models/domain"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context) (domain.Credentials, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Credentials), args.Error(1)
}

func (m *mockStore) Set(ctx context.Context, creds domain.Credentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestIsAuthorized(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		stored   domain.Credentials
		expected bool
	}{
		{"both present", domain.Credentials{Username: "a", Token: "b"}, true},
		{"empty username", domain.Credentials{Username: "", Token: "x"}, false},
		{"empty token", domain.Credentials{Username: "a", Token: ""}, false},
		{"nothing stored", domain.Credentials{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockStore)
			store.On("Get", ctx).Return(tt.stored, nil)

			gate := NewGate(store)

			assert.Equal(t, tt.expected, gate.IsAuthorized(ctx))
		})
	}
}

func TestIsAuthorized_StoreFailureCountsAsUnauthorized(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	store.On("Get", ctx).Return(domain.Credentials{}, errors.New("disk gone"))

	gate := NewGate(store)

	assert.False(t, gate.IsAuthorized(ctx))
}

func TestSetCredentials_PersistsValidCandidate(t *testing.T) {
	ctx := context.Background()
	candidate := domain.Credentials{Username: "user", Token: "tok"}

	store := new(mockStore)
	store.On("Set", ctx, candidate).Return(nil)

	gate := NewGate(store)
	accepted, err := gate.SetCredentials(ctx, candidate)

	require.NoError(t, err)
	assert.True(t, accepted)
	store.AssertExpectations(t)
}

func TestSetCredentials_RejectsInvalidWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)

	gate := NewGate(store)
	accepted, err := gate.SetCredentials(ctx, domain.Credentials{Username: "user"})

	require.NoError(t, err)
	assert.False(t, accepted)
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestSetCredentials_StoreFailure(t *testing.T) {
	ctx := context.Background()
	candidate := domain.Credentials{Username: "user", Token: "tok"}

	store := new(mockStore)
	store.On("Set", ctx, candidate).Return(errors.New("read-only fs"))

	gate := NewGate(store)
	accepted, err := gate.SetCredentials(ctx, candidate)

	require.Error(t, err)
	assert.False(t, accepted)
}

func TestReset_DeletesUnconditionally(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	store.On("Delete", ctx).Return(nil).Twice()

	gate := NewGate(store)

	require.NoError(t, gate.Reset(ctx))
	require.NoError(t, gate.Reset(ctx))
	store.AssertExpectations(t)
}
