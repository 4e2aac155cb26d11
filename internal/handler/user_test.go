package handler

import (
	"bytes"
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
	"github.com/gridloom/gridloom/internal/user"
)

func userFixture(t *testing.T) (*user.FakeRepository, *chi.Mux) {
	t.Helper()
	InitValidator()

	repo := user.NewFakeRepository()
	svc := user.NewService(repo, catalog.NewService(catalog.NewFakeRepository(), repo), event.NewMemoryBus(),
		user.WithClock(func() time.Time { return handlerTestTime }),
	)

	r := chi.NewRouter()
	r.Post("/user/register", HandleRegister(svc))
	r.Get("/user/{uid}", HandleGetAccount(svc))
	r.Put("/user/{uid}/profile", HandleUpdateProfile(svc))
	r.Get("/user/{uid}/inventory", HandleGetInventory(svc))
	r.Post("/user/{uid}/equip", HandleEquipItem(svc))
	return repo, r
}

func TestHandleRegister(t *testing.T) {
	_, router := userFixture(t)

	body, _ := json.Marshal(RegisterRequest{UID: "u1", Email: "alice@example.com"})
	req := httptest.NewRequest("POST", "/user/register", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Created)
	assert.Equal(t, int64(domain.StartingCoins), resp.Account.Coins)

	// Second registration returns 200 and leaves the account alone
	body, _ = json.Marshal(RegisterRequest{UID: "u1", Email: "alice@example.com"})
	req = httptest.NewRequest("POST", "/user/register", bytes.NewBuffer(body))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Created)
}

func TestHandleRegister_Validation(t *testing.T) {
	_, router := userFixture(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{"Missing UID", RegisterRequest{Email: "alice@example.com"}},
		{"Bad Email", RegisterRequest{UID: "u1", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/user/register", bytes.NewBuffer(body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleGetAccount(t *testing.T) {
	_, router := userFixture(t)

	body, _ := json.Marshal(RegisterRequest{UID: "u1", Email: "alice@example.com"})
	req := httptest.NewRequest("POST", "/user/register", bytes.NewBuffer(body))
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest("GET", "/user/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"coins":1000`)

	req = httptest.NewRequest("GET", "/user/ghost", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgAccountNotFoundError)
}

func TestHandleUpdateProfile(t *testing.T) {
	_, router := userFixture(t)

	body, _ := json.Marshal(RegisterRequest{UID: "u1", Email: "alice@example.com"})
	req := httptest.NewRequest("POST", "/user/register", bytes.NewBuffer(body))
	router.ServeHTTP(httptest.NewRecorder(), req)

	body, _ = json.Marshal(UpdateProfileRequest{DisplayName: "neon alice", Theme: "vapor"})
	req = httptest.NewRequest("PUT", "/user/u1/profile", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/user/u1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "neon alice")
}

func TestHandleEquipItem(t *testing.T) {
	repo, router := userFixture(t)
	repo.SeedInventoryEntry(domain.InventoryEntry{UID: "u1", ItemID: "hair_001"})

	body, _ := json.Marshal(EquipRequest{ItemID: "hair_001"})
	req := httptest.NewRequest("POST", "/user/u1/equip", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hair":"hair_001"`)

	// Unknown item
	body, _ = json.Marshal(EquipRequest{ItemID: "no_such_item"})
	req = httptest.NewRequest("POST", "/user/u1/equip", bytes.NewBuffer(body))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetInventory(t *testing.T) {
	repo, router := userFixture(t)
	repo.SeedInventoryEntry(domain.InventoryEntry{UID: "u1", ItemID: "hair_001", AcquiredAt: handlerTestTime})

	req := httptest.NewRequest("GET", "/user/u1/inventory", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"item_id":"hair_001"`)
}
