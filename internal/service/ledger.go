package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/pkg/logger"
	"github.com/refpay/earnings-be/pkg/retry"
)

// ledgerLockStripes bounds the lock set regardless of how many agents the
// process ever credits. A hash collision serializes two agents' credits,
// which is harmless.
const ledgerLockStripes = 64

// LedgerApplier is the only writer of agent balance fields. An earning's
// amount hits the ledger at most once in its lifetime: the store records
// "applied" before the balance is mutated, and credits to the same agent are
// serialized through a striped lock set keyed by agent id.
type LedgerApplier struct {
	store      domain.EarningsStore
	directory  domain.AgentDirectory
	logger     *logger.Logger
	maxRetries int
	retryDelay time.Duration

	locks [ledgerLockStripes]sync.Mutex
}

func NewLedgerApplier(store domain.EarningsStore, directory domain.AgentDirectory, log *logger.Logger, maxRetries int, retryDelay time.Duration) *LedgerApplier {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &LedgerApplier{
		store:      store,
		directory:  directory,
		logger:     log,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

func (l *LedgerApplier) agentLock(agentID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(agentID))
	return &l.locks[h.Sum32()%ledgerLockStripes]
}

// Apply credits the earning's amount to the agent's availableBalance and
// totalEarnings. Calling it again for the same earning is a no-op once the
// credit has completed. When the credit fails after retries, the applied
// mark is cleared again under the agent lock, so a later Apply re-attempts
// the credit instead of silently skipping it.
func (l *LedgerApplier) Apply(ctx context.Context, earning *domain.Earning) error {
	lock := l.agentLock(earning.AgentID)
	lock.Lock()
	defer lock.Unlock()

	applied, err := l.store.MarkApplied(ctx, earning.ID)
	if err != nil {
		return fmt.Errorf("mark earning applied: %w", err)
	}
	if !applied {
		l.logger.Debug(ctx, "Earning already applied to ledger, skipping",
			"earning_id", earning.ID,
		)
		return nil
	}

	err = retry.Do(ctx, func() error {
		return l.directory.CreditBalance(ctx, earning.AgentID, earning.Amount)
	}, retry.WithMaxAttempts(l.maxRetries), retry.WithBaseDelay(l.retryDelay))
	if err != nil {
		// Hand the mark back while still holding the agent lock; otherwise
		// the earning would count as applied without the balance ever
		// moving, and no retry could recover it.
		if clearErr := l.store.ClearApplied(ctx, earning.ID); clearErr != nil {
			l.logger.Error(ctx, "Failed to clear applied mark after credit failure",
				"earning_id", earning.ID,
				"error", clearErr,
			)
		}
		return fmt.Errorf("credit agent balance: %w", err)
	}

	l.logger.Debug(ctx, "Earning applied to ledger",
		"earning_id", earning.ID,
		"agent_id", earning.AgentID,
		"amount", earning.Amount,
	)

	return nil
}
