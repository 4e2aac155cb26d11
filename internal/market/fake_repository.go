package market

import (
	"context"
	"errors"
	"sync"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Market for testing. It honors the same atomicity contract as
// the real store: a transaction works on a private copy of the state and
// publishes it at Commit, and transactions serialize on a mutex held from
// BeginTx to Commit/Rollback, so a buyer that loses the race observes the
// winner's committed deletion, never a half-applied transfer.
type FakeRepository struct {
	txMu    sync.Mutex // serializes atomic units
	stateMu sync.RWMutex
	state   *fakeState

	// CommitErr, when set, fails the next Commit after applying nothing
	CommitErr error
}

type fakeState struct {
	accounts  map[string]domain.Account
	inventory map[string]map[string]domain.InventoryEntry // uid -> itemID
	listings  map[string]domain.Listing
}

func newFakeState() *fakeState {
	return &fakeState{
		accounts:  make(map[string]domain.Account),
		inventory: make(map[string]map[string]domain.InventoryEntry),
		listings:  make(map[string]domain.Listing),
	}
}

func (s *fakeState) clone() *fakeState {
	out := newFakeState()
	for k, v := range s.accounts {
		out.accounts[k] = v
	}
	for uid, items := range s.inventory {
		inner := make(map[string]domain.InventoryEntry, len(items))
		for id, e := range items {
			inner[id] = e
		}
		out.inventory[uid] = inner
	}
	for k, v := range s.listings {
		out.listings[k] = v
	}
	return out
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{state: newFakeState()}
}

// ==================== Seed helpers ====================

func (f *FakeRepository) SeedAccount(account domain.Account) {
	f.stateMu.Lock()
	defer f.stateMu.Unlock()
	f.state.accounts[account.UID] = account
}

func (f *FakeRepository) SeedInventoryEntry(entry domain.InventoryEntry) {
	f.stateMu.Lock()
	defer f.stateMu.Unlock()
	if f.state.inventory[entry.UID] == nil {
		f.state.inventory[entry.UID] = make(map[string]domain.InventoryEntry)
	}
	f.state.inventory[entry.UID][entry.ItemID] = entry
}

func (f *FakeRepository) SeedListing(listing domain.Listing) {
	f.stateMu.Lock()
	defer f.stateMu.Unlock()
	f.state.listings[listing.ID] = listing
}

// Account returns the committed account state, for assertions
func (f *FakeRepository) Account(uid string) (domain.Account, bool) {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	a, ok := f.state.accounts[uid]
	return a, ok
}

// Owns reports committed ownership, for assertions
func (f *FakeRepository) Owns(uid, itemID string) bool {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	_, ok := f.state.inventory[uid][itemID]
	return ok
}

// ==================== repository.Market ====================

func (f *FakeRepository) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	l, ok := f.state.listings[listingID]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (f *FakeRepository) ListListings(ctx context.Context) ([]domain.Listing, error) {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	out := make([]domain.Listing, 0, len(f.state.listings))
	for _, l := range f.state.listings {
		out = append(out, l)
	}
	return out, nil
}

func (f *FakeRepository) HasInventoryEntry(ctx context.Context, uid, itemID string) (bool, error) {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	_, ok := f.state.inventory[uid][itemID]
	return ok, nil
}

func (f *FakeRepository) ListOwnedItemIDs(ctx context.Context, uid string) (map[string]struct{}, error) {
	f.stateMu.RLock()
	defer f.stateMu.RUnlock()
	out := make(map[string]struct{}, len(f.state.inventory[uid]))
	for id := range f.state.inventory[uid] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	f.txMu.Lock()

	f.stateMu.RLock()
	work := f.state.clone()
	f.stateMu.RUnlock()

	return &fakeTx{repo: f, work: work}, nil
}

// ==================== repository.MarketTx ====================

type fakeTx struct {
	repo   *FakeRepository
	work   *fakeState
	closed bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	defer t.repo.txMu.Unlock()

	if err := t.repo.CommitErr; err != nil {
		t.repo.CommitErr = nil
		return err
	}

	t.repo.stateMu.Lock()
	t.repo.state = t.work
	t.repo.stateMu.Unlock()
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	t.repo.txMu.Unlock()
	return nil
}

func (t *fakeTx) GetListingForUpdate(ctx context.Context, listingID string) (*domain.Listing, error) {
	l, ok := t.work.listings[listingID]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (t *fakeTx) GetAccountForUpdate(ctx context.Context, uid string) (*domain.Account, error) {
	a, ok := t.work.accounts[uid]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (t *fakeTx) UpsertCoins(ctx context.Context, uid string, coins int64) error {
	a := t.work.accounts[uid]
	a.UID = uid
	a.Coins = coins
	t.work.accounts[uid] = a
	return nil
}

func (t *fakeTx) HasInventoryEntry(ctx context.Context, uid, itemID string) (bool, error) {
	_, ok := t.work.inventory[uid][itemID]
	return ok, nil
}

func (t *fakeTx) InsertInventoryEntry(ctx context.Context, entry domain.InventoryEntry) error {
	if t.work.inventory[entry.UID] == nil {
		t.work.inventory[entry.UID] = make(map[string]domain.InventoryEntry)
	}
	t.work.inventory[entry.UID][entry.ItemID] = entry
	return nil
}

func (t *fakeTx) DeleteInventoryEntry(ctx context.Context, uid, itemID string) error {
	delete(t.work.inventory[uid], itemID)
	return nil
}

func (t *fakeTx) HasOpenListing(ctx context.Context, seller, itemID string) (bool, error) {
	for _, l := range t.work.listings {
		if l.Seller == seller && l.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (t *fakeTx) InsertListing(ctx context.Context, listing domain.Listing) error {
	t.work.listings[listing.ID] = listing
	return nil
}

func (t *fakeTx) DeleteListing(ctx context.Context, listingID string) error {
	delete(t.work.listings, listingID)
	return nil
}
