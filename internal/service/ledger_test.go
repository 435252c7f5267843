package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/internal/storage"
	"github.com/refpay/earnings-be/mocks"
	"github.com/refpay/earnings-be/pkg/logger"
)

func confirmedEarning(id string, amount int64) *domain.Earning {
	return &domain.Earning{
		ID:        id,
		AgentID:   "a1",
		AgentCode: "AG-1001",
		Amount:    decimal.NewFromInt(amount),
		Currency:  "USD",
		Type:      domain.EarningTypeReferralCommission,
		Status:    domain.EarningStatusConfirmed,
	}
}

func TestLedgerApply_CreditsOnce(t *testing.T) {
	store := mocks.NewMockEarningsStore(t)
	directory := mocks.NewMockAgentDirectory(t)
	ledger := NewLedgerApplier(store, directory, logger.NewNop(), 3, time.Millisecond)

	earning := confirmedEarning("e1", 100)

	store.EXPECT().
		MarkApplied(mock.Anything, "e1").
		Return(true, nil).
		Once()
	directory.EXPECT().
		CreditBalance(mock.Anything, "a1", earning.Amount).
		Return(nil).
		Once()

	err := ledger.Apply(context.Background(), earning)
	require.NoError(t, err)
}

func TestLedgerApply_AlreadyApplied(t *testing.T) {
	store := mocks.NewMockEarningsStore(t)
	directory := mocks.NewMockAgentDirectory(t)
	ledger := NewLedgerApplier(store, directory, logger.NewNop(), 3, time.Millisecond)

	store.EXPECT().
		MarkApplied(mock.Anything, "e1").
		Return(false, nil).
		Once()

	// CreditBalance must never be called for an already-applied earning.
	err := ledger.Apply(context.Background(), confirmedEarning("e1", 100))
	require.NoError(t, err)
	directory.AssertNotCalled(t, "CreditBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerApply_RetriesCreditInsideGuard(t *testing.T) {
	store := mocks.NewMockEarningsStore(t)
	directory := mocks.NewMockAgentDirectory(t)
	ledger := NewLedgerApplier(store, directory, logger.NewNop(), 3, time.Millisecond)

	earning := confirmedEarning("e1", 100)

	store.EXPECT().
		MarkApplied(mock.Anything, "e1").
		Return(true, nil).
		Once()
	directory.EXPECT().
		CreditBalance(mock.Anything, "a1", earning.Amount).
		Return(errors.New("deadlock detected")).
		Twice()
	directory.EXPECT().
		CreditBalance(mock.Anything, "a1", earning.Amount).
		Return(nil).
		Once()

	err := ledger.Apply(context.Background(), earning)
	require.NoError(t, err)
}

func TestLedgerApply_CreditFailureSurfaces(t *testing.T) {
	store := mocks.NewMockEarningsStore(t)
	directory := mocks.NewMockAgentDirectory(t)
	ledger := NewLedgerApplier(store, directory, logger.NewNop(), 2, time.Millisecond)

	earning := confirmedEarning("e1", 100)

	store.EXPECT().
		MarkApplied(mock.Anything, "e1").
		Return(true, nil).
		Once()
	directory.EXPECT().
		CreditBalance(mock.Anything, "a1", earning.Amount).
		Return(errors.New("connection reset")).
		Times(2)
	store.EXPECT().
		ClearApplied(mock.Anything, "e1").
		Return(nil).
		Once()

	err := ledger.Apply(context.Background(), earning)
	assert.Error(t, err)
}

func TestLedgerApply_CreditFailureThenRetryRecovers(t *testing.T) {
	store := storage.NewMemoryStore()
	realDirectory := storage.NewMemoryDirectory()
	realDirectory.AddAgent(domain.Agent{ID: "a1", Code: "AG-1001", Name: "Amelia Ortiz"})

	// First credit attempt fails, every later one reaches the directory.
	calls := 0
	directory := mocks.NewMockAgentDirectory(t)
	directory.EXPECT().
		CreditBalance(mock.Anything, "a1", mock.Anything).
		RunAndReturn(func(ctx context.Context, agentID string, amount decimal.Decimal) error {
			calls++
			if calls == 1 {
				return errors.New("connection reset")
			}
			return realDirectory.CreditBalance(ctx, agentID, amount)
		})

	ledger := NewLedgerApplier(store, directory, logger.NewNop(), 1, time.Millisecond)

	ctx := context.Background()
	earning := confirmedEarning("e1", 100)
	require.NoError(t, store.Create(ctx, earning))

	err := ledger.Apply(ctx, earning)
	require.Error(t, err)

	// The failed apply must not leave the earning counted as applied.
	stored, err := store.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, stored.AppliedAt)

	// A re-run completes the credit.
	require.NoError(t, ledger.Apply(ctx, earning))

	stored, err = store.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.NotNil(t, stored.AppliedAt)

	agent, err := realDirectory.ResolveAgent(ctx, "AG-1001")
	require.NoError(t, err)
	assert.True(t, agent.AvailableBalance.Equal(decimal.NewFromInt(100)),
		"credit lost after re-run: balance is %s", agent.AvailableBalance)

	// And a third apply is a no-op: the amount stays credited exactly once.
	require.NoError(t, ledger.Apply(ctx, earning))
	agent, err = realDirectory.ResolveAgent(ctx, "AG-1001")
	require.NoError(t, err)
	assert.True(t, agent.AvailableBalance.Equal(decimal.NewFromInt(100)))
}

func TestLedgerApply_MarkAppliedFailure(t *testing.T) {
	store := mocks.NewMockEarningsStore(t)
	directory := mocks.NewMockAgentDirectory(t)
	ledger := NewLedgerApplier(store, directory, logger.NewNop(), 3, time.Millisecond)

	store.EXPECT().
		MarkApplied(mock.Anything, "e1").
		Return(false, errors.New("store unavailable")).
		Once()

	err := ledger.Apply(context.Background(), confirmedEarning("e1", 100))
	assert.Error(t, err)
	directory.AssertNotCalled(t, "CreditBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerApply_ConcurrentDistinctAgents(t *testing.T) {
	store := storage.NewMemoryStore()
	directory := storage.NewMemoryDirectory()
	ledger := NewLedgerApplier(store, directory, logger.NewNop(), 3, time.Millisecond)

	ctx := context.Background()

	// More agents than lock stripes, so some credits share a stripe.
	const agents = 200
	earnings := make([]*domain.Earning, agents)
	for i := 0; i < agents; i++ {
		agentID := fmt.Sprintf("agt-%d", i)
		directory.AddAgent(domain.Agent{ID: agentID, Code: fmt.Sprintf("AG-%04d", i)})
		earnings[i] = &domain.Earning{
			ID:      fmt.Sprintf("e%d", i),
			AgentID: agentID,
			Amount:  decimal.NewFromInt(int64(i + 1)),
			Status:  domain.EarningStatusConfirmed,
		}
		require.NoError(t, store.Create(ctx, earnings[i]))
	}

	var wg sync.WaitGroup
	for _, earning := range earnings {
		wg.Add(1)
		go func(e *domain.Earning) {
			defer wg.Done()
			assert.NoError(t, ledger.Apply(ctx, e))
		}(earning)
	}
	wg.Wait()

	for i := 0; i < agents; i++ {
		agent, err := directory.ResolveAgent(ctx, fmt.Sprintf("AG-%04d", i))
		require.NoError(t, err)
		assert.True(t, agent.AvailableBalance.Equal(decimal.NewFromInt(int64(i+1))))
	}
}

func TestLedgerApply_ConcurrentSameEarning(t *testing.T) {
	store := storage.NewMemoryStore()
	directory := storage.NewMemoryDirectory()
	directory.AddAgent(domain.Agent{ID: "a1", Code: "AG-1001", Name: "Amelia Ortiz"})
	ledger := NewLedgerApplier(store, directory, logger.NewNop(), 3, time.Millisecond)

	ctx := context.Background()
	earning := confirmedEarning("e1", 100)
	require.NoError(t, store.Create(ctx, earning))

	const callers = 20
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, ledger.Apply(ctx, earning))
		}()
	}
	wg.Wait()

	agent, err := directory.ResolveAgent(ctx, "AG-1001")
	require.NoError(t, err)
	assert.True(t, agent.AvailableBalance.Equal(decimal.NewFromInt(100)),
		"balance credited more than once: %s", agent.AvailableBalance)
	assert.True(t, agent.TotalEarnings.Equal(decimal.NewFromInt(100)))
}
