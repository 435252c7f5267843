package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refpay/earnings-be/internal/domain"
)

func newEarning(id, agentID, refID string, amount int64) *domain.Earning {
	return &domain.Earning{
		ID:          id,
		AgentID:     agentID,
		AgentCode:   "AG-" + agentID,
		Amount:      decimal.NewFromInt(amount),
		Currency:    "USD",
		Type:        domain.EarningTypeReferralCommission,
		ReferenceID: refID,
		EarnedAt:    time.Now(),
		Status:      domain.EarningStatusPending,
		CreatedAt:   time.Now(),
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Create(ctx, newEarning("e1", "a1", "REF-1", 100))
	require.NoError(t, err)

	earning, err := store.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "e1", earning.ID)
	assert.Equal(t, domain.EarningStatusPending, earning.Status)
	assert.True(t, earning.Amount.Equal(decimal.NewFromInt(100)))
}

func TestMemoryStore_GetByID_NotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrEarningNotFound)
}

func TestMemoryStore_FindByReferenceID_SkipsCancelled(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newEarning("e1", "a1", "REF-1", 100)))

	found, err := store.FindByReferenceID(ctx, "REF-1")
	require.NoError(t, err)
	assert.Equal(t, "e1", found.ID)

	_, err = store.UpdateStatus(ctx, "e1", domain.EarningStatusCancelled, domain.ReviewFields{
		ReviewedAt:      time.Now(),
		ReviewedBy:      "admin",
		RejectionReason: "wrong amount",
	})
	require.NoError(t, err)

	_, err = store.FindByReferenceID(ctx, "REF-1")
	assert.ErrorIs(t, err, domain.ErrEarningNotFound)
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newEarning("e1", "a1", "", 100)))

	updated, err := store.UpdateStatus(ctx, "e1", domain.EarningStatusConfirmed, domain.ReviewFields{
		ReviewedAt: time.Now(),
		ReviewedBy: "admin",
		AdminNotes: "looks good",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EarningStatusConfirmed, updated.Status)
	assert.Equal(t, "admin", updated.ReviewedBy)
	assert.NotNil(t, updated.ReviewedAt)
}

func TestMemoryStore_UpdateStatus_OnlyFromPending(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newEarning("e1", "a1", "", 100)))

	_, err := store.UpdateStatus(ctx, "e1", domain.EarningStatusConfirmed, domain.ReviewFields{ReviewedAt: time.Now()})
	require.NoError(t, err)

	// A second transition out of a terminal status must fail.
	_, err = store.UpdateStatus(ctx, "e1", domain.EarningStatusCancelled, domain.ReviewFields{ReviewedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrStateConflict)

	_, err = store.UpdateStatus(ctx, "e1", domain.EarningStatusConfirmed, domain.ReviewFields{ReviewedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrStateConflict)
}

func TestMemoryStore_UpdateStatus_NotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.UpdateStatus(ctx, "nonexistent", domain.EarningStatusConfirmed, domain.ReviewFields{ReviewedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrEarningNotFound)
}

func TestMemoryStore_UpdateStatus_ConcurrentSingleWinner(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newEarning("e1", "a1", "", 100)))

	const reviewers = 10
	var wg sync.WaitGroup
	errs := make([]error, reviewers)

	for i := 0; i < reviewers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.UpdateStatus(ctx, "e1", domain.EarningStatusConfirmed, domain.ReviewFields{
				ReviewedAt: time.Now(),
				ReviewedBy: fmt.Sprintf("admin-%d", i),
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrStateConflict)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestMemoryStore_ReserveReference(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	reserved, err := store.ReserveReference(ctx, "REF-1")
	require.NoError(t, err)
	assert.True(t, reserved)

	reserved, err = store.ReserveReference(ctx, "REF-1")
	require.NoError(t, err)
	assert.False(t, reserved)

	err = store.ReleaseReference(ctx, "REF-1")
	require.NoError(t, err)

	reserved, err = store.ReserveReference(ctx, "REF-1")
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestMemoryStore_ReserveReference_ConcurrentSingleWinner(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const attempts = 50
	var wg sync.WaitGroup
	results := make([]bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reserved, err := store.ReserveReference(ctx, "REF-RACE")
			require.NoError(t, err)
			results[i] = reserved
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, reserved := range results {
		if reserved {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestMemoryStore_MarkApplied(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newEarning("e1", "a1", "", 100)))

	applied, err := store.MarkApplied(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, applied)

	earning, err := store.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.NotNil(t, earning.AppliedAt)

	applied, err = store.MarkApplied(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestMemoryStore_ClearApplied(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newEarning("e1", "a1", "", 100)))

	applied, err := store.MarkApplied(ctx, "e1")
	require.NoError(t, err)
	require.True(t, applied)

	require.NoError(t, store.ClearApplied(ctx, "e1"))

	earning, err := store.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, earning.AppliedAt)

	// The mark is claimable again after clearing.
	applied, err = store.MarkApplied(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestMemoryStore_MarkApplied_NotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.MarkApplied(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrEarningNotFound)
}

func TestMemoryStore_ListByFilter(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		e := newEarning(fmt.Sprintf("e%d", i), "a1", "", 100)
		e.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, store.Create(ctx, e))
	}
	_, err := store.UpdateStatus(ctx, "e0", domain.EarningStatusConfirmed, domain.ReviewFields{ReviewedAt: time.Now()})
	require.NoError(t, err)

	pending := domain.EarningStatusPending
	earnings, total, err := store.ListByFilter(ctx, domain.EarningFilter{
		Status:  &pending,
		Page:    1,
		PerPage: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, earnings, 3)
	// Newest first.
	assert.Equal(t, "e4", earnings[0].ID)
	assert.Equal(t, "e3", earnings[1].ID)
}

func TestMemoryStore_ListByFilter_SecondPage(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		e := newEarning(fmt.Sprintf("e%d", i), "a1", "", 100)
		e.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, store.Create(ctx, e))
	}

	earnings, total, err := store.ListByFilter(ctx, domain.EarningFilter{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, earnings, 2)
	assert.Equal(t, "e1", earnings[0].ID)
	assert.Equal(t, "e0", earnings[1].ID)
}

func TestMemoryStore_ListByFilter_InvalidPage(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, _, err := store.ListByFilter(ctx, domain.EarningFilter{Page: 0, PerPage: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidPageParams)

	_, _, err = store.ListByFilter(ctx, domain.EarningFilter{Page: 1, PerPage: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPageParams)
}

func TestMemoryStore_ListByFilter_TierLookup(t *testing.T) {
	tiers := map[string]string{"a1": "gold", "a2": "silver"}
	store := NewMemoryStore(WithTierLookup(func(agentID string) string {
		return tiers[agentID]
	}))
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newEarning("e1", "a1", "", 100)))
	require.NoError(t, store.Create(ctx, newEarning("e2", "a2", "", 200)))

	earnings, total, err := store.ListByFilter(ctx, domain.EarningFilter{Tier: "gold", Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "e1", earnings[0].ID)
}

func TestMemoryDirectory_CreditBalance(t *testing.T) {
	dir := NewMemoryDirectory()
	ctx := context.Background()

	dir.AddAgent(domain.Agent{ID: "a1", Code: "AG-1001", Name: "Amelia Ortiz", Tier: "gold"})

	agent, err := dir.ResolveAgent(ctx, "ag-1001")
	require.NoError(t, err)
	assert.Equal(t, "a1", agent.ID)

	require.NoError(t, dir.CreditBalance(ctx, "a1", decimal.NewFromInt(150)))
	require.NoError(t, dir.CreditBalance(ctx, "a1", decimal.NewFromInt(50)))

	agent, err = dir.ResolveAgent(ctx, "AG-1001")
	require.NoError(t, err)
	assert.True(t, agent.AvailableBalance.Equal(decimal.NewFromInt(200)))
	assert.True(t, agent.TotalEarnings.Equal(decimal.NewFromInt(200)))
}

func TestMemoryDirectory_ResolveAgent_NotFound(t *testing.T) {
	dir := NewMemoryDirectory()
	ctx := context.Background()

	_, err := dir.ResolveAgent(ctx, "AG-9999")
	assert.ErrorIs(t, err, domain.ErrAgentNotFound)
}
