package market

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridloom/gridloom/internal/catalog"
	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/event"
)

// Two buyers race for the same listing. Exactly one purchase commits; the
// loser gets ErrListingNotFound and keeps its full balance. Run with -race.
func TestBuyListing_ConcurrentBuyersExactlyOneWins(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, catalog.NewFakeRepository(), event.NewMemoryBus())

	repo.SeedAccount(domain.Account{UID: "seller", Coins: 0})
	repo.SeedAccount(domain.Account{UID: "b1", Coins: 100})
	repo.SeedAccount(domain.Account{UID: "b2", Coins: 100})
	repo.SeedInventoryEntry(domain.InventoryEntry{UID: "seller", ItemID: "top_002"})
	repo.SeedListing(domain.Listing{ID: "l1", ItemID: "top_002", Seller: "seller", Price: 100, CreatedAt: testTime})

	buyers := []string{"b1", "b2"}
	results := make([]error, len(buyers))

	var start, done sync.WaitGroup
	start.Add(1)
	for i, buyer := range buyers {
		done.Add(1)
		go func(i int, buyer string) {
			defer done.Done()
			start.Wait()
			_, results[i] = svc.BuyListing(context.Background(), buyer, "l1")
		}(i, buyer)
	}
	start.Done()
	done.Wait()

	var wins, losses int
	var winner, loser string
	for i, err := range results {
		switch {
		case err == nil:
			wins++
			winner = buyers[i]
		case errors.Is(err, domain.ErrListingNotFound):
			losses++
			loser = buyers[i]
		default:
			t.Fatalf("unexpected error for %s: %v", buyers[i], err)
		}
	}
	require.Equal(t, 1, wins, "exactly one buyer must win")
	require.Equal(t, 1, losses, "the other buyer must see the listing gone")

	// The item moved exactly once
	assert.True(t, repo.Owns(winner, "top_002"))
	assert.False(t, repo.Owns(loser, "top_002"))
	assert.False(t, repo.Owns("seller", "top_002"))

	// The winner paid, the loser kept everything, the seller was credited once
	winnerAcct, _ := repo.Account(winner)
	loserAcct, _ := repo.Account(loser)
	sellerAcct, _ := repo.Account("seller")
	assert.Equal(t, int64(0), winnerAcct.Coins)
	assert.Equal(t, int64(100), loserAcct.Coins)
	assert.Equal(t, int64(100), sellerAcct.Coins)
}

// Many buyers hammering several listings must never mint or destroy coins
func TestBuyListing_ManyRacingBuyersConserveCoins(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo, catalog.NewFakeRepository(), event.NewMemoryBus())

	const buyers = 8
	const listings = 3
	uids := make([]string, 0, buyers+1)

	repo.SeedAccount(domain.Account{UID: "seller", Coins: 0})
	uids = append(uids, "seller")
	for i := 0; i < buyers; i++ {
		uid := string(rune('a' + i))
		repo.SeedAccount(domain.Account{UID: uid, Coins: 100})
		uids = append(uids, uid)
	}
	ids := []string{"l1", "l2", "l3"}
	itemIDs := []string{"hair_002", "top_002", "acc_001"}
	for i := 0; i < listings; i++ {
		repo.SeedInventoryEntry(domain.InventoryEntry{UID: "seller", ItemID: itemIDs[i]})
		repo.SeedListing(domain.Listing{ID: ids[i], ItemID: itemIDs[i], Seller: "seller", Price: 30, CreatedAt: testTime})
	}

	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		for _, lid := range ids {
			wg.Add(1)
			go func(uid, lid string) {
				defer wg.Done()
				_, _ = svc.BuyListing(context.Background(), uid, lid)
			}(string(rune('a'+i)), lid)
		}
	}
	wg.Wait()

	var total int64
	for _, uid := range uids {
		acct, ok := repo.Account(uid)
		require.True(t, ok)
		assert.GreaterOrEqual(t, acct.Coins, int64(0))
		total += acct.Coins
	}
	assert.Equal(t, int64(buyers*100), total)

	// Every listing is gone and every item has exactly one owner
	for i, lid := range ids {
		stored, err := repo.GetListing(context.Background(), lid)
		require.NoError(t, err)
		assert.Nil(t, stored)

		owners := 0
		for _, uid := range uids {
			if repo.Owns(uid, itemIDs[i]) {
				owners++
			}
		}
		assert.Equal(t, 1, owners, "item %s must have exactly one owner", itemIDs[i])
	}
}
