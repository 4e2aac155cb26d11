package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridloom/gridloom/internal/catalog"
	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/event"
	"github.com/gridloom/gridloom/internal/market"
)

var handlerTestTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// marketFixture wires a real market service over in-memory fakes and mounts
// the handlers on a chi router, the same shape the server uses
func marketFixture(t *testing.T) (*market.FakeRepository, *catalog.FakeRepository, *chi.Mux) {
	t.Helper()
	InitValidator()

	repo := market.NewFakeRepository()
	items := catalog.NewFakeRepository()
	svc := market.NewService(repo, catalog.NewService(items, repo), event.NewMemoryBus(),
		market.WithClock(func() time.Time { return handlerTestTime }),
		market.WithIDGenerator(func() string { return "listing-1" }),
	)

	r := chi.NewRouter()
	r.Get("/market/listings", HandleBrowseListings(svc))
	r.Post("/market/listings", HandleCreateListing(svc))
	r.Delete("/market/listings/{listingID}", HandleCancelListing(svc))
	r.Post("/market/listings/{listingID}/buy", HandleBuyListing(svc))
	return repo, items, r
}

func seedCatalogItem(t *testing.T, items *catalog.FakeRepository, id, slot string) {
	t.Helper()
	_, err := items.UpsertItem(context.Background(), domain.Item{ID: id, DisplayName: id, Slot: slot, Rarity: domain.RarityCommon})
	require.NoError(t, err)
}

func TestHandleCreateListing(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		seed           func(repo *market.FakeRepository, items *catalog.FakeRepository)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: CreateListingRequest{Seller: "alice", ItemID: "hair_002", Price: 50},
			seed: func(repo *market.FakeRepository, items *catalog.FakeRepository) {
				seedCatalogItem(t, items, "hair_002", domain.SlotHair)
				repo.SeedInventoryEntry(domain.InventoryEntry{UID: "alice", ItemID: "hair_002"})
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"listing-1"`,
		},
		{
			name:           "Invalid Request - Missing Price",
			body:           CreateListingRequest{Seller: "alice", ItemID: "hair_002"},
			seed:           func(*market.FakeRepository, *catalog.FakeRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Not Owned",
			body: CreateListingRequest{Seller: "alice", ItemID: "hair_002", Price: 50},
			seed: func(repo *market.FakeRepository, items *catalog.FakeRepository) {
				seedCatalogItem(t, items, "hair_002", domain.SlotHair)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotInInventoryError,
		},
		{
			name: "Duplicate Listing",
			body: CreateListingRequest{Seller: "alice", ItemID: "hair_002", Price: 50},
			seed: func(repo *market.FakeRepository, items *catalog.FakeRepository) {
				seedCatalogItem(t, items, "hair_002", domain.SlotHair)
				repo.SeedInventoryEntry(domain.InventoryEntry{UID: "alice", ItemID: "hair_002"})
				repo.SeedListing(domain.Listing{ID: "existing", ItemID: "hair_002", Seller: "alice", Price: 20, CreatedAt: handlerTestTime})
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadyListedError,
		},
		{
			name:           "Unknown Item",
			body:           CreateListingRequest{Seller: "alice", ItemID: "nope", Price: 50},
			seed:           func(*market.FakeRepository, *catalog.FakeRepository) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, items, router := marketFixture(t)
			tt.seed(repo, items)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/market/listings", bytes.NewBuffer(body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleBuyListing(t *testing.T) {
	tests := []struct {
		name           string
		listingID      string
		body           interface{}
		seed           func(repo *market.FakeRepository)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			listingID: "l1",
			body:      BuyListingRequest{Buyer: "bob"},
			seed: func(repo *market.FakeRepository) {
				repo.SeedAccount(domain.Account{UID: "alice", Coins: 1000})
				repo.SeedAccount(domain.Account{UID: "bob", Coins: 1000})
				repo.SeedInventoryEntry(domain.InventoryEntry{UID: "alice", ItemID: "hair_002"})
				repo.SeedListing(domain.Listing{ID: "l1", ItemID: "hair_002", Seller: "alice", Price: 50, CreatedAt: handlerTestTime})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"buyer_coins":950`,
		},
		{
			name:           "Listing Gone",
			listingID:      "missing",
			body:           BuyListingRequest{Buyer: "bob"},
			seed:           func(*market.FakeRepository) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgListingNotFoundError,
		},
		{
			name:      "Self Purchase",
			listingID: "l1",
			body:      BuyListingRequest{Buyer: "alice"},
			seed: func(repo *market.FakeRepository) {
				repo.SeedListing(domain.Listing{ID: "l1", ItemID: "hair_002", Seller: "alice", Price: 50, CreatedAt: handlerTestTime})
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgSelfPurchaseError,
		},
		{
			name:      "Insufficient Funds",
			listingID: "l1",
			body:      BuyListingRequest{Buyer: "bob"},
			seed: func(repo *market.FakeRepository) {
				repo.SeedAccount(domain.Account{UID: "bob", Coins: 10})
				repo.SeedListing(domain.Listing{ID: "l1", ItemID: "hair_002", Seller: "alice", Price: 50, CreatedAt: handlerTestTime})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughCoinsError,
		},
		{
			name:           "Invalid Request - Missing Buyer",
			listingID:      "l1",
			body:           map[string]string{},
			seed:           func(*market.FakeRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, router := marketFixture(t)
			tt.seed(repo)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/market/listings/"+tt.listingID+"/buy", bytes.NewBuffer(body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleCancelListing(t *testing.T) {
	repo, _, router := marketFixture(t)
	repo.SeedListing(domain.Listing{ID: "l1", ItemID: "hair_002", Seller: "alice", Price: 50, CreatedAt: handlerTestTime})

	body, _ := json.Marshal(CancelListingRequest{Requester: "mallory"})
	req := httptest.NewRequest("DELETE", "/market/listings/l1", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNotSellerError)

	body, _ = json.Marshal(CancelListingRequest{Requester: "alice"})
	req = httptest.NewRequest("DELETE", "/market/listings/l1", bytes.NewBuffer(body))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Listing canceled")
}

func TestHandleBrowseListings(t *testing.T) {
	repo, items, router := marketFixture(t)
	seedCatalogItem(t, items, "hair_002", domain.SlotHair)
	repo.SeedListing(domain.Listing{ID: "l1", ItemID: "hair_002", Seller: "alice", Price: 50, CreatedAt: handlerTestTime})

	req := httptest.NewRequest("GET", "/market/listings?slot=hair&sort=price-asc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"l1"`)

	// Unknown sort is rejected by validation
	req = httptest.NewRequest("GET", "/market/listings?sort=alphabetical", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
