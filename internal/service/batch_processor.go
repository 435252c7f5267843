package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/internal/eventbus"
	"github.com/refpay/earnings-be/pkg/logger"
	"github.com/refpay/earnings-be/pkg/retry"
)

type ProcessorConfig struct {
	PoolSize            int
	MaxEntries          int
	MaxRetries          int
	RetryBaseDelay      time.Duration
	CollaboratorTimeout time.Duration
}

// BatchProcessor runs each draft through validate -> dedup -> create ->
// apply-ledger and records a per-entry outcome. A single entry's failure
// never stops the rest: once per-record processing starts, the batch always
// completes and reports.
type BatchProcessor struct {
	store     domain.EarningsStore
	validator *Validator
	ledger    *LedgerApplier
	bus       eventbus.EventBus
	logger    *logger.Logger
	cfg       ProcessorConfig
}

func NewBatchProcessor(
	store domain.EarningsStore,
	validator *Validator,
	ledger *LedgerApplier,
	bus eventbus.EventBus,
	log *logger.Logger,
	cfg ProcessorConfig,
) *BatchProcessor {
	if cfg.PoolSize < 1 {
		cfg.PoolSize = 1
	}
	return &BatchProcessor{
		store:     store,
		validator: validator,
		ledger:    ledger,
		bus:       bus,
		logger:    log,
		cfg:       cfg,
	}
}

// entryOutcome is one entry's result plus its error-summary classification.
type entryOutcome struct {
	result  domain.BatchEntryResult
	bucket  errorBucket
	detail  string
	earning *domain.Earning
}

func (p *BatchProcessor) Process(ctx context.Context, batch domain.BulkUploadBatch) (*domain.BulkUploadResponse, error) {
	start := time.Now()
	batchID := uuid.New().String()
	ctx = logger.WithBatchID(ctx, batchID)

	if len(batch.Entries) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if len(batch.Entries) > p.cfg.MaxEntries {
		p.logger.Warn(ctx, "Batch rejected, too many entries",
			"entries", len(batch.Entries),
			"max_entries", p.cfg.MaxEntries,
		)
		return nil, domain.ErrBatchTooLarge
	}

	p.logger.Info(ctx, "Processing batch",
		"entries", len(batch.Entries),
		"auto_confirm", batch.AutoConfirm,
		"uploaded_by", batch.UploadedBy,
	)

	// In-batch duplicates are decided in submission order before any entry
	// is dispatched, so worker scheduling cannot change which entry wins.
	duplicateInBatch := make([]bool, len(batch.Entries))
	firstSeen := make(map[string]int)
	for i, draft := range batch.Entries {
		if draft.ReferenceID == "" {
			continue
		}
		if _, seen := firstSeen[draft.ReferenceID]; seen {
			duplicateInBatch[i] = true
		} else {
			firstSeen[draft.ReferenceID] = i
		}
	}

	outcomes := make([]entryOutcome, len(batch.Entries))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := p.cfg.PoolSize
	if workers > len(batch.Entries) {
		workers = len(batch.Entries)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = p.processEntry(ctx, &batch, batch.Entries[idx], duplicateInBatch[idx])
			}
		}()
	}

	for i := range batch.Entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	response := buildBulkUploadReport(batchID, batch.UploadedBy, start, outcomes)

	p.logger.Info(ctx, "Batch processing completed",
		"total", response.TotalProcessed,
		"successful", response.Successful,
		"failed", response.Failed,
		"skipped", response.Skipped,
		"total_amount", response.TotalAmount,
		"duration_ms", response.BatchInfo.ProcessingTimeMs,
	)

	return response, nil
}

func (p *BatchProcessor) processEntry(ctx context.Context, batch *domain.BulkUploadBatch, draft domain.EarningDraft, duplicateInBatch bool) entryOutcome {
	result := domain.BatchEntryResult{
		AgentCode: draft.AgentCode,
		Amount:    draft.Amount,
	}

	if duplicateInBatch {
		result.Status = domain.EntryStatusSkipped
		result.Message = fmt.Sprintf("duplicate reference id %q in batch", draft.ReferenceID)
		return entryOutcome{result: result, bucket: bucketDuplicateRef, detail: draft.ReferenceID}
	}

	agent, verr := p.validateWithTimeout(ctx, &draft)
	if verr != nil {
		result.Status = domain.EntryStatusFailed
		result.Message = verr.message
		detail := verr.message
		if verr.bucket == bucketInvalidAgent {
			detail = draft.AgentCode
		}
		return entryOutcome{result: result, bucket: verr.bucket, detail: detail}
	}

	if draft.ReferenceID != "" {
		reserved, err := p.reserveReference(ctx, draft.ReferenceID)
		if err != nil {
			result.Status = domain.EntryStatusFailed
			result.Message = fmt.Sprintf("reference reservation failed: %v", err)
			return entryOutcome{result: result, bucket: bucketOther, detail: result.Message}
		}
		if !reserved {
			result.Status = domain.EntryStatusSkipped
			result.Message = fmt.Sprintf("reference id %q already used", draft.ReferenceID)
			if existing := p.findExistingReference(ctx, draft.ReferenceID); existing != nil {
				result.Message = fmt.Sprintf("reference id %q already used by earning %s", draft.ReferenceID, existing.ID)
			}
			return entryOutcome{result: result, bucket: bucketDuplicateRef, detail: draft.ReferenceID}
		}
	}

	earning := p.buildEarning(batch, &draft, agent)

	if err := p.createEarning(ctx, earning); err != nil {
		p.releaseReference(ctx, draft.ReferenceID)
		result.Status = domain.EntryStatusFailed
		result.Message = fmt.Sprintf("failed to save earning: %v", err)
		return entryOutcome{result: result, bucket: bucketOther, detail: result.Message}
	}

	if earning.Status == domain.EarningStatusConfirmed {
		if err := p.applyLedger(ctx, earning); err != nil {
			// No rollback: the earning exists and is reported failed so the
			// operator can reconcile. Apply is idempotent on retry.
			p.logger.Error(ctx, "Ledger apply failed",
				"earning_id", earning.ID,
				"agent_id", earning.AgentID,
				"error", err,
			)
			result.Status = domain.EntryStatusFailed
			result.EarningID = earning.ID
			result.Message = fmt.Sprintf("earning created but balance credit failed: %v", err)
			return entryOutcome{result: result, bucket: bucketOther, detail: result.Message}
		}
		p.notifyTerminal(ctx, earning)
	}

	result.Status = domain.EntryStatusSuccess
	result.EarningID = earning.ID
	result.Amount = earning.Amount
	return entryOutcome{result: result, earning: earning}
}

func (p *BatchProcessor) buildEarning(batch *domain.BulkUploadBatch, draft *domain.EarningDraft, agent *domain.Agent) *domain.Earning {
	now := time.Now()

	earnedAt := now
	if draft.EarnedAt != nil {
		earnedAt = *draft.EarnedAt
	}

	status := domain.EarningStatusPending
	if batch.AutoConfirm {
		status = domain.EarningStatusConfirmed
	}

	metadata := make(map[string]any)
	for k, v := range batch.Metadata {
		metadata[k] = v
	}
	for k, v := range draft.Metadata {
		metadata[k] = v
	}
	if batch.BatchDescription != "" {
		metadata["batchDescription"] = batch.BatchDescription
	}
	if len(metadata) == 0 {
		metadata = nil
	}

	return &domain.Earning{
		ID:             uuid.New().String(),
		AgentID:        agent.ID,
		AgentCode:      agent.Code,
		Amount:         draft.Amount,
		Currency:       draft.Currency,
		Type:           draft.Type,
		Description:    draft.Description,
		ReferenceID:    draft.ReferenceID,
		CommissionRate: draft.CommissionRate,
		EarnedAt:       earnedAt,
		Status:         status,
		Metadata:       metadata,
		CreatedAt:      now,
	}
}

func (p *BatchProcessor) validateWithTimeout(ctx context.Context, draft *domain.EarningDraft) (*domain.Agent, *entryError) {
	callCtx, cancel := context.WithTimeout(ctx, p.cfg.CollaboratorTimeout)
	defer cancel()
	return p.validator.ValidateDraft(callCtx, draft)
}

// findExistingReference names the earning already holding referenceID, for
// the skip message. Best-effort: a miss or lookup error keeps the generic
// wording.
func (p *BatchProcessor) findExistingReference(ctx context.Context, referenceID string) *domain.Earning {
	callCtx, cancel := context.WithTimeout(ctx, p.cfg.CollaboratorTimeout)
	defer cancel()

	existing, err := p.store.FindByReferenceID(callCtx, referenceID)
	if err != nil {
		return nil
	}
	return existing
}

func (p *BatchProcessor) reserveReference(ctx context.Context, referenceID string) (bool, error) {
	var reserved bool
	err := p.withRetry(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, p.cfg.CollaboratorTimeout)
		defer cancel()

		var err error
		reserved, err = p.store.ReserveReference(callCtx, referenceID)
		return err
	})
	return reserved, err
}

func (p *BatchProcessor) releaseReference(ctx context.Context, referenceID string) {
	if referenceID == "" {
		return
	}
	if err := p.store.ReleaseReference(ctx, referenceID); err != nil {
		p.logger.Warn(ctx, "Failed to release reference reservation",
			"reference_id", referenceID,
			"error", err,
		)
	}
}

func (p *BatchProcessor) createEarning(ctx context.Context, earning *domain.Earning) error {
	return p.withRetry(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, p.cfg.CollaboratorTimeout)
		defer cancel()
		return p.store.Create(callCtx, earning)
	})
}

// applyLedger runs Apply once; Apply retries the balance credit internally
// behind its applied guard.
func (p *BatchProcessor) applyLedger(ctx context.Context, earning *domain.Earning) error {
	callCtx, cancel := context.WithTimeout(ctx, p.cfg.CollaboratorTimeout)
	defer cancel()
	return p.ledger.Apply(callCtx, earning)
}

func (p *BatchProcessor) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(ctx, fn,
		retry.WithMaxAttempts(p.cfg.MaxRetries),
		retry.WithBaseDelay(p.cfg.RetryBaseDelay),
	)
}

func (p *BatchProcessor) notifyTerminal(ctx context.Context, earning *domain.Earning) {
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

	if err := p.bus.Publish(ctx, event); err != nil {
		p.logger.Warn(ctx, "Failed to publish notification",
			"earning_id", earning.ID,
			"error", err,
		)
	}
}
