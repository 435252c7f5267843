package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/internal/eventbus"
	"github.com/refpay/earnings-be/internal/storage"
	"github.com/refpay/earnings-be/pkg/logger"
)

func newTestService(t *testing.T) (EarningsService, *storage.MemoryStore, *storage.MemoryDirectory) {
	t.Helper()

	log := logger.NewNop()
	store := storage.NewMemoryStore()
	directory := storage.NewMemoryDirectory()
	directory.AddAgent(domain.Agent{ID: "a1", Code: "AG-1001", Name: "Amelia Ortiz", Tier: "gold"})
	directory.AddAgent(domain.Agent{ID: "a2", Code: "AG-1002", Name: "Noah Becker", Tier: "silver"})

	validator := NewValidator(directory, "USD")
	ledger := NewLedgerApplier(store, directory, log, 3, time.Millisecond)
	bus := eventbus.New(log, &eventbus.Config{ChannelBuffer: 100, MaxRetries: 3})

	processor := NewBatchProcessor(store, validator, ledger, bus, log, ProcessorConfig{
		PoolSize:            4,
		MaxEntries:          1000,
		MaxRetries:          3,
		RetryBaseDelay:      time.Millisecond,
		CollaboratorTimeout: time.Second,
	})
	lifecycle := NewLifecycleManager(store, ledger, bus, log, time.Second)
	normalizer := NewNormalizer(log)
	csvReader := NewCSVReader(log)

	svc := NewEarningsService(processor, lifecycle, normalizer, csvReader, store, log)
	return svc, store, directory
}

func TestBulkUploadCSV_Success(t *testing.T) {
	svc, _, _ := newTestService(t)

	csv := strings.Join([]string{
		"Agent Code,Amount,Type,Reference ID",
		"AG-1001,100.50,bonus,REF-1",
		"AG-1002,200,referral_commission,REF-2",
		"AG-9999,50,bonus,REF-3",
	}, "\n")

	resp, err := svc.BulkUploadCSV(context.Background(), strings.NewReader(csv), domain.BulkUploadBatch{
		UploadedBy: "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalProcessed)
	assert.Equal(t, 2, resp.Successful)
	assert.Equal(t, 1, resp.Failed)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("300.50")))
	assert.Equal(t, []string{"AG-9999"}, resp.ErrorSummary.InvalidAgentCodes)
}

func TestBulkUploadCSV_MissingRequiredColumns(t *testing.T) {
	svc, store, _ := newTestService(t)

	csv := "Name,Value\nAmelia,100\n"

	_, err := svc.BulkUploadCSV(context.Background(), strings.NewReader(csv), domain.BulkUploadBatch{})
	assert.ErrorIs(t, err, domain.ErrMissingRequiredColumns)

	// Fatal rejection: zero records processed.
	_, total, listErr := store.ListByFilter(context.Background(), domain.EarningFilter{Page: 1, PerPage: 10})
	require.NoError(t, listErr)
	assert.Equal(t, 0, total)
}

func TestBulkUploadCSV_EmptyFile(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.BulkUploadCSV(context.Background(), strings.NewReader(""), domain.BulkUploadBatch{})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestBulkUpload_ThenReviewFlow(t *testing.T) {
	svc, _, directory := newTestService(t)
	ctx := context.Background()

	resp, err := svc.BulkUpload(ctx, domain.BulkUploadBatch{
		Entries: []domain.EarningDraft{
			{AgentCode: "AG-1001", Amount: decimal.NewFromInt(100), ReferenceID: "REF-1"},
			{AgentCode: "AG-1001", Amount: decimal.NewFromInt(50), ReferenceID: "REF-2"},
		},
		UploadedBy: "admin",
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Successful)

	approved, err := svc.Approve(ctx, resp.Details[0].EarningID, "admin", "")
	require.NoError(t, err)
	assert.Equal(t, domain.EarningStatusConfirmed, approved.Status)

	rejected, err := svc.Reject(ctx, resp.Details[1].EarningID, "admin", "not eligible", "")
	require.NoError(t, err)
	assert.Equal(t, domain.EarningStatusCancelled, rejected.Status)

	agent, err := directory.ResolveAgent(ctx, "AG-1001")
	require.NoError(t, err)
	assert.True(t, agent.AvailableBalance.Equal(decimal.NewFromInt(100)))

	// The cancelled earning released REF-2; resubmitting it succeeds.
	resubmit, err := svc.BulkUpload(ctx, domain.BulkUploadBatch{
		Entries: []domain.EarningDraft{
			{AgentCode: "AG-1001", Amount: decimal.NewFromInt(50), ReferenceID: "REF-2"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resubmit.Successful)
}

func TestList_FiltersAndPaginates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.BulkUpload(ctx, domain.BulkUploadBatch{
		Entries: []domain.EarningDraft{
			{AgentCode: "AG-1001", Amount: decimal.NewFromInt(10)},
			{AgentCode: "AG-1001", Amount: decimal.NewFromInt(20)},
			{AgentCode: "AG-1002", Amount: decimal.NewFromInt(30)},
		},
	})
	require.NoError(t, err)

	earnings, total, err := svc.List(ctx, domain.EarningFilter{AgentID: "a1", Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, earnings, 2)

	earnings, total, err = svc.List(ctx, domain.EarningFilter{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, earnings, 2)
}
