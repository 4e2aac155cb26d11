package market

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

// newTestService wires the service against in-memory fakes. The catalog
// service is real; only the stores are faked.
func newTestService(repo *FakeRepository, items *catalog.FakeRepository, bus event.Bus) Service {
	return NewService(repo, catalog.NewService(items, repo), bus,
		WithClock(func() time.Time { return testTime }),
		WithIDGenerator(func() string { return "listing-1" }),
	)
}

func seedItem(items *catalog.FakeRepository, id, slot string) {
	_, _ = items.UpsertItem(context.Background(), domain.Item{
		ID:          id,
		DisplayName: id,
		Slot:        slot,
		Rarity:      domain.RarityCommon,
	})
}

// capturedEvents subscribes to every market event type and records them
func capturedEvents(bus *event.MemoryBus) *[]event.Event {
	var got []event.Event
	record := func(ctx context.Context, e event.Event) error {
		got = append(got, e)
		return nil
	}
	bus.Subscribe(event.ListingCreated, record)
	bus.Subscribe(event.ListingCanceled, record)
	bus.Subscribe(event.ListingSold, record)
	return &got
}

func TestCreateListing_Success(t *testing.T) {
	repo := NewFakeRepository()
	items := catalog.NewFakeRepository()
	bus := event.NewMemoryBus()
	events := capturedEvents(bus)
	svc := newTestService(repo, items, bus)

	seedItem(items, "hair_002", domain.SlotHair)
	repo.SeedInventoryEntry(domain.InventoryEntry{UID: "alice", ItemID: "hair_002"})

	listing, err := svc.CreateListing(context.Background(), "alice", "hair_002", 50)

	require.NoError(t, err)
	assert.Equal(t, "listing-1", listing.ID)
	assert.Equal(t, "hair_002", listing.ItemID)
	assert.Equal(t, "alice", listing.Seller)
	assert.Equal(t, int64(50), listing.Price)
	assert.Equal(t, testTime, listing.CreatedAt)

	stored, err := repo.GetListing(context.Background(), "listing-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *listing, *stored)

	// Listing an item does not remove it from the seller's inventory
	assert.True(t, repo.Owns("alice", "hair_002"))

	require.Len(t, *events, 1)
	assert.Equal(t, event.ListingCreated, (*events)[0].Type)
}

func TestCreateListing_FallbackItemIsListable(t *testing.T) {
	repo := NewFakeRepository()
	items := catalog.NewFakeRepository() // empty store, resolution falls back
	svc := newTestService(repo, items, event.NewMemoryBus())

	repo.SeedInventoryEntry(domain.InventoryEntry{UID: "alice", ItemID: "hair_001"})

	listing, err := svc.CreateListing(context.Background(), "alice", "hair_001", 10)

	require.NoError(t, err)
	assert.Equal(t, "hair_001", listing.ItemID)
}

func TestCreateListing_InvalidPrice(t *testing.T) {
	repo := NewFakeRepository()
	items := catalog.NewFakeRepository()
	svc := newTestService(repo, items, event.NewMemoryBus())

	seedItem(items, "hair_002", domain.SlotHair)
	repo.SeedInventoryEntry(domain.InventoryEntry{UID: "alice", ItemID: "hair_002"})

	for _, price := range []int64{0, -5} {
		_, err := svc.CreateListing(context.Background(), "alice", "hair_002", price)
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	}

	listings, err := repo.ListListings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestCreateListing_UnknownItem(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, catalog.NewFakeRepository(), event.NewMemoryBus())

	repo.SeedInventoryEntry(domain.InventoryEntry{UID: "alice", ItemID: "no_such_item"})

	_, err := svc.CreateListing(context.Background(), "alice", "no_such_item", 10)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCreateListing_NotOwned(t *testing.T) {
	repo := NewFakeRepository()
	items := catalog.NewFakeRepository()
	svc := newTestService(repo, items, event.NewMemoryBus())

	seedItem(items, "hair_002", domain.SlotHair)

	_, err := svc.CreateListing(context.Background(), "alice", "hair_002", 50)

	assert.ErrorIs(t, err, domain.ErrNotOwned)
}

func TestCreateListing_DuplicateRejected(t *testing.T) {
	repo := NewFakeRepository()
	items := catalog.NewFakeRepository()
	svc := newTestService(repo, items, event.NewMemoryBus())

	seedItem(items, "hair_002", domain.SlotHair)
	repo.SeedInventoryEntry(domain.InventoryEntry{UID: "alice", ItemID: "hair_002"})
	repo.SeedListing(domain.Listing{ID: "existing", ItemID: "hair_002", Seller: "alice", Price: 20, CreatedAt: testTime})

	_, err := svc.CreateListing(context.Background(), "alice", "hair_002", 50)

	assert.ErrorIs(t, err, domain.ErrDuplicateListing)

	listings, err := repo.ListListings(context.Background())
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestCreateListing_DuplicateAtCommit(t *testing.T) {
	repo := NewFakeRepository()
	items := catalog.NewFakeRepository()
	svc := newTestService(repo, items, event.NewMemoryBus())

	seedItem(items, "hair_002", domain.SlotHair)
	repo.SeedInventoryEntry(domain.InventoryEntry{UID: "alice", ItemID: "hair_002"})
	repo.CommitErr = domain.ErrDuplicateListing

	_, err := svc.CreateListing(context.Background(), "alice", "hair_002", 50)

	assert.ErrorIs(t, err, domain.ErrDuplicateListing)
}

func TestCancelListing_Success(t *testing.T) {
	repo := NewFakeRepository()
	bus := event.NewMemoryBus()
	events := capturedEvents(bus)
	svc := newTestService(repo, catalog.NewFakeRepository(), bus)

	repo.SeedListing(domain.Listing{ID: "l1", ItemID: "hair_002", Seller: "alice", Price: 50, CreatedAt: testTime})

	err := svc.CancelListing(context.Background(), "alice", "l1")

	require.NoError(t, err)
	stored, err := repo.GetListing(context.Background(), "l1")
	require.NoError(t, err)
	assert.Nil(t, stored)

	require.Len(t, *events, 1)
	assert.Equal(t, event.ListingCanceled, (*events)[0].Type)
}

func TestCancelListing_NotFound(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, catalog.NewFakeRepository(), event.NewMemoryBus())

	err := svc.CancelListing(context.Background(), "alice", "missing")

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestCancelListing_OnlySellerMayCancel(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, catalog.NewFakeRepository(), event.NewMemoryBus())

	repo.SeedListing(domain.Listing{ID: "l1", ItemID: "hair_002", Seller: "alice", Price: 50, CreatedAt: testTime})

	err := svc.CancelListing(context.Background(), "mallory", "l1")

	assert.ErrorIs(t, err, domain.ErrNotSeller)

	stored, gerr := repo.GetListing(context.Background(), "l1")
	require.NoError(t, gerr)
	assert.NotNil(t, stored, "listing must survive an unauthorized cancel")
}
