package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridloom/gridloom/internal/catalog"
	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/event"
)

var testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestService(repo *FakeRepository, items *catalog.FakeRepository, bus event.Bus) Service {
	return NewService(repo, catalog.NewService(items, repo), bus,
		WithClock(func() time.Time { return testTime }),
	)
}

func TestRegister_GrantsStartingCoins(t *testing.T) {
	repo := NewFakeRepository()
	bus := event.NewMemoryBus()
	var events []event.Event
	bus.Subscribe(event.UserRegistered, func(ctx context.Context, e event.Event) error {
		events = append(events, e)
		return nil
	})
	svc := newTestService(repo, catalog.NewFakeRepository(), bus)

	account, created, err := svc.Register(context.Background(), "u1", "alice@example.com")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "u1", account.UID)
	assert.Equal(t, int64(domain.StartingCoins), account.Coins)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, "alice@example.com", account.Profile.DisplayName)
	assert.Equal(t, "crt", account.Profile.Theme)
	assert.Equal(t, "red", account.Profile.Accent)
	assert.Equal(t, testTime, account.CreatedAt)

	require.Len(t, events, 1)
	payload, ok := events[0].Payload.(domain.UserRegisteredPayload)
	require.True(t, ok)
	assert.Equal(t, "u1", payload.UID)
	assert.Equal(t, int64(domain.StartingCoins), payload.Coins)
}

func TestRegister_IsIdempotent(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, catalog.NewFakeRepository(), event.NewMemoryBus())

	first, created, err := svc.Register(context.Background(), "u1", "alice@example.com")
	require.NoError(t, err)
	require.True(t, created)

	// Simulate coins spent between the two registrations
	repo.mu.Lock()
	a := repo.accounts["u1"]
	a.Coins = 250
	repo.accounts["u1"] = a
	repo.mu.Unlock()

	second, created, err := svc.Register(context.Background(), "u1", "alice@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(250), second.Coins, "re-registration must not re-apply the grant")
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestGetAccount_ServesFromCacheAfterFirstRead(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, catalog.NewFakeRepository(), event.NewMemoryBus())

	_, _, err := svc.Register(context.Background(), "u1", "alice@example.com")
	require.NoError(t, err)

	// Registration primed the cache, so a store failure goes unnoticed
	repo.GetAccountErr = assert.AnError
	account, err := svc.GetAccount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", account.UID)
}

func TestGetAccount_RefreshDropsCachedEntry(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, catalog.NewFakeRepository(), event.NewMemoryBus())

	_, _, err := svc.Register(context.Background(), "u1", "alice@example.com")
	require.NoError(t, err)

	repo.mu.Lock()
	a := repo.accounts["u1"]
	a.Coins = 42
	repo.accounts["u1"] = a
	repo.mu.Unlock()

	svc.RefreshAccount("u1")

	account, err := svc.GetAccount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), account.Coins)
}

func TestGetAccount_Unregistered(t *testing.T) {
	svc := newTestService(NewFakeRepository(), catalog.NewFakeRepository(), event.NewMemoryBus())

	_, err := svc.GetAccount(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUpdateProfile_ReplacesFieldsAndInvalidatesCache(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, catalog.NewFakeRepository(), event.NewMemoryBus())

	_, _, err := svc.Register(context.Background(), "u1", "alice@example.com")
	require.NoError(t, err)

	updated := domain.Profile{
		DisplayName: "neon alice",
		Pronouns:    "she/her",
		Status:      "afk",
		Theme:       "vapor",
		Accent:      "teal",
	}
	require.NoError(t, svc.UpdateProfile(context.Background(), "u1", updated))

	account, err := svc.GetAccount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, updated, account.Profile)
}

func TestUpdateProfile_Unregistered(t *testing.T) {
	svc := newTestService(NewFakeRepository(), catalog.NewFakeRepository(), event.NewMemoryBus())

	err := svc.UpdateProfile(context.Background(), "ghost", domain.Profile{DisplayName: "x"})

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
