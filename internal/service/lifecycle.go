package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/internal/eventbus"
	"github.com/refpay/earnings-be/pkg/logger"
)

// LifecycleManager owns the pending -> confirmed | cancelled state machine.
// The write-once invariant of terminal statuses is enforced by the store's
// compare-and-set UpdateStatus; this layer sequences the ledger apply and
// the review bookkeeping around it.
type LifecycleManager struct {
	store   domain.EarningsStore
	ledger  *LedgerApplier
	bus     eventbus.EventBus
	logger  *logger.Logger
	timeout time.Duration
}

func NewLifecycleManager(store domain.EarningsStore, ledger *LedgerApplier, bus eventbus.EventBus, log *logger.Logger, timeout time.Duration) *LifecycleManager {
	return &LifecycleManager{
		store:   store,
		ledger:  ledger,
		bus:     bus,
		logger:  log,
		timeout: timeout,
	}
}

// Approve confirms a pending earning and applies its amount to the agent's
// ledger. Approving a confirmed or cancelled earning is a state conflict,
// never a silent success.
func (m *LifecycleManager) Approve(ctx context.Context, earningID, reviewer, notes string) (*domain.Earning, error) {
	// The compare-and-set transition is the arbiter: exactly one reviewer
	// wins a race, and only the winner reaches the ledger.
	updated, err := m.updateStatus(ctx, earningID, domain.EarningStatusConfirmed, domain.ReviewFields{
		ReviewedAt: time.Now(),
		ReviewedBy: reviewer,
		AdminNotes: notes,
	})
	if err != nil {
		return nil, err
	}

	if err := m.applyLedger(ctx, updated); err != nil {
		// The earning is confirmed; Apply is idempotent, so a later re-run
		// can complete the credit without risking a double application.
		m.logger.Error(ctx, "Ledger apply failed during approval",
			"earning_id", earningID,
			"error", err,
		)
		return nil, fmt.Errorf("earning %s confirmed but balance credit failed: %w", earningID, err)
	}

	m.logger.Info(ctx, "Earning approved",
		"earning_id", earningID,
		"agent_id", updated.AgentID,
		"amount", updated.Amount,
		"reviewed_by", reviewer,
	)

	m.notifyTerminal(ctx, updated)
	return updated, nil
}

// Reject cancels a pending earning. A reason is mandatory, and the ledger is
// never touched.
func (m *LifecycleManager) Reject(ctx context.Context, earningID, reviewer, reason, notes string) (*domain.Earning, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrReasonRequired
	}

	updated, err := m.updateStatus(ctx, earningID, domain.EarningStatusCancelled, domain.ReviewFields{
		ReviewedAt:      time.Now(),
		ReviewedBy:      reviewer,
		RejectionReason: reason,
		AdminNotes:      notes,
	})
	if err != nil {
		return nil, err
	}

	// A cancelled earning releases its reference id for reuse.
	if updated.ReferenceID != "" {
		if err := m.store.ReleaseReference(ctx, updated.ReferenceID); err != nil {
			m.logger.Warn(ctx, "Failed to release reference of cancelled earning",
				"earning_id", earningID,
				"reference_id", updated.ReferenceID,
				"error", err,
			)
		}
	}

	m.logger.Info(ctx, "Earning rejected",
		"earning_id", earningID,
		"reason", reason,
		"reviewed_by", reviewer,
	)

	m.notifyTerminal(ctx, updated)
	return updated, nil
}

// BulkApprove approves every currently-pending earning in ids. Non-pending
// and unknown ids are excluded from the set, not errored; this intentionally
// differs from the single-operation path.
func (m *LifecycleManager) BulkApprove(ctx context.Context, earningIDs []string, reviewer, notes string) (*domain.BulkReviewSummary, error) {
	return m.bulkTransition(ctx, earningIDs, func(ctx context.Context, id string) error {
		_, err := m.Approve(ctx, id, reviewer, notes)
		return err
	})
}

// BulkReject rejects every currently-pending earning in ids. An empty reason
// fails the whole call before any record is touched.
func (m *LifecycleManager) BulkReject(ctx context.Context, earningIDs []string, reviewer, reason, notes string) (*domain.BulkReviewSummary, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrReasonRequired
	}

	return m.bulkTransition(ctx, earningIDs, func(ctx context.Context, id string) error {
		_, err := m.Reject(ctx, id, reviewer, reason, notes)
		return err
	})
}

func (m *LifecycleManager) bulkTransition(ctx context.Context, earningIDs []string, transition func(ctx context.Context, id string) error) (*domain.BulkReviewSummary, error) {
	summary := &domain.BulkReviewSummary{
		Requested:   len(earningIDs),
		ExcludedIDs: []string{},
	}

	var pending []string
	for _, id := range earningIDs {
		earning, err := m.getEarning(ctx, id)
		if err != nil || earning.Status != domain.EarningStatusPending {
			summary.Excluded++
			summary.ExcludedIDs = append(summary.ExcludedIDs, id)
			continue
		}
		pending = append(pending, id)
	}

	for _, id := range pending {
		if err := transition(ctx, id); err != nil {
			// Lost a race with a concurrent review; count it as excluded.
			m.logger.Warn(ctx, "Bulk transition excluded earning",
				"earning_id", id,
				"error", err,
			)
			summary.Excluded++
			summary.ExcludedIDs = append(summary.ExcludedIDs, id)
			continue
		}
		summary.Transitioned++
	}

	return summary, nil
}

func (m *LifecycleManager) getEarning(ctx context.Context, earningID string) (*domain.Earning, error) {
	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.store.GetByID(callCtx, earningID)
}

func (m *LifecycleManager) updateStatus(ctx context.Context, earningID string, status domain.EarningStatus, review domain.ReviewFields) (*domain.Earning, error) {
	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.store.UpdateStatus(callCtx, earningID, status, review)
}

func (m *LifecycleManager) applyLedger(ctx context.Context, earning *domain.Earning) error {
	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.ledger.Apply(callCtx, earning)
}

func (m *LifecycleManager) notifyTerminal(ctx context.Context, earning *domain.Earning) {
	event := eventbus.Event{
		ID:   uuid.New().String(),
		Type: eventbus.EventTypeNotification,
		Payload: eventbus.NotificationEvent{
			EarningID: earning.ID,
			AgentID:   earning.AgentID,
			AgentCode: earning.AgentCode,
			Status:    earning.Status,
			Amount:    earning.Amount,
			Currency:  earning.Currency,
			Reason:    earning.RejectionReason,
		},
		Timestamp: time.Now(),
	}

	if err := m.bus.Publish(ctx, event); err != nil {
		m.logger.Warn(ctx, "Failed to publish notification",
			"earning_id", earning.ID,
			"error", err,
		)
	}
}
