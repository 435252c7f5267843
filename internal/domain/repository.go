package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// EarningsStore persists earnings and owns the two invariants the engine
// leans on: reference reservation is atomic across concurrent batches, and
// status transitions out of pending are compare-and-set.
type EarningsStore interface {
	Create(ctx context.Context, earning *Earning) error
	GetByID(ctx context.Context, earningID string) (*Earning, error)
	FindByReferenceID(ctx context.Context, referenceID string) (*Earning, error)

	// UpdateStatus transitions a pending earning to a terminal status and
	// writes the review fields. Returns ErrStateConflict when the earning is
	// no longer pending.
	UpdateStatus(ctx context.Context, earningID string, status EarningStatus, review ReviewFields) (*Earning, error)

	ListByFilter(ctx context.Context, filter EarningFilter) ([]Earning, int, error)

	// ReserveReference atomically claims referenceID. It returns false when
	// the reference is already held by another entry or earning.
	ReserveReference(ctx context.Context, referenceID string) (bool, error)
	// ReleaseReference frees a reservation, e.g. when the reserving entry
	// failed validation/persistence or its earning was cancelled.
	ReleaseReference(ctx context.Context, referenceID string) error

	// MarkApplied records that earningID hit the ledger. It returns false
	// when the earning was already applied, so callers credit at most once.
	MarkApplied(ctx context.Context, earningID string) (bool, error)
	// ClearApplied reverses MarkApplied when the credit did not complete,
	// so a later apply can retry it. Mirrors ReleaseReference.
	ClearApplied(ctx context.Context, earningID string) error
}

// AgentDirectory is the upstream system of record for agents and balances.
type AgentDirectory interface {
	ResolveAgent(ctx context.Context, agentCode string) (*Agent, error)
	CreditBalance(ctx context.Context, agentID string, amount decimal.Decimal) error
}
