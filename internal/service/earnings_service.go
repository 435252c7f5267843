package service

import (
	"context"
	"io"

	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/pkg/logger"
)

// EarningsService is the surface the transport layer talks to: bulk
// ingestion, single and bulk review, and listing.
type EarningsService interface {
	BulkUpload(ctx context.Context, batch domain.BulkUploadBatch) (*domain.BulkUploadResponse, error)
	BulkUploadCSV(ctx context.Context, reader io.Reader, batch domain.BulkUploadBatch) (*domain.BulkUploadResponse, error)
	Approve(ctx context.Context, earningID, reviewer, notes string) (*domain.Earning, error)
	Reject(ctx context.Context, earningID, reviewer, reason, notes string) (*domain.Earning, error)
	BulkApprove(ctx context.Context, earningIDs []string, reviewer, notes string) (*domain.BulkReviewSummary, error)
	BulkReject(ctx context.Context, earningIDs []string, reviewer, reason, notes string) (*domain.BulkReviewSummary, error)
	List(ctx context.Context, filter domain.EarningFilter) ([]domain.Earning, int, error)
}

type earningsService struct {
	processor  *BatchProcessor
	lifecycle  *LifecycleManager
	normalizer *Normalizer
	csvReader  *CSVReader
	store      domain.EarningsStore
	logger     *logger.Logger
}

func NewEarningsService(
	processor *BatchProcessor,
	lifecycle *LifecycleManager,
	normalizer *Normalizer,
	csvReader *CSVReader,
	store domain.EarningsStore,
	log *logger.Logger,
) EarningsService {
	return &earningsService{
		processor:  processor,
		lifecycle:  lifecycle,
		normalizer: normalizer,
		csvReader:  csvReader,
		store:      store,
		logger:     log,
	}
}

func (s *earningsService) BulkUpload(ctx context.Context, batch domain.BulkUploadBatch) (*domain.BulkUploadResponse, error) {
	return s.processor.Process(ctx, batch)
}

// BulkUploadCSV reads and normalizes a CSV stream, then runs the same batch
// pipeline as the JSON surface. batch carries the submission options; its
// Entries field is replaced by the parsed rows.
func (s *earningsService) BulkUploadCSV(ctx context.Context, reader io.Reader, batch domain.BulkUploadBatch) (*domain.BulkUploadResponse, error) {
	rows, err := s.csvReader.ReadRows(ctx, reader)
	if err != nil {
		return nil, err
	}

	drafts, err := s.normalizer.Normalize(ctx, rows)
	if err != nil {
		return nil, err
	}

	batch.Entries = drafts
	return s.processor.Process(ctx, batch)
}

func (s *earningsService) Approve(ctx context.Context, earningID, reviewer, notes string) (*domain.Earning, error) {
	return s.lifecycle.Approve(ctx, earningID, reviewer, notes)
}

func (s *earningsService) Reject(ctx context.Context, earningID, reviewer, reason, notes string) (*domain.Earning, error) {
	return s.lifecycle.Reject(ctx, earningID, reviewer, reason, notes)
}

func (s *earningsService) BulkApprove(ctx context.Context, earningIDs []string, reviewer, notes string) (*domain.BulkReviewSummary, error) {
	return s.lifecycle.BulkApprove(ctx, earningIDs, reviewer, notes)
}

func (s *earningsService) BulkReject(ctx context.Context, earningIDs []string, reviewer, reason, notes string) (*domain.BulkReviewSummary, error) {
	return s.lifecycle.BulkReject(ctx, earningIDs, reviewer, reason, notes)
}

func (s *earningsService) List(ctx context.Context, filter domain.EarningFilter) ([]domain.Earning, int, error) {
	return s.store.ListByFilter(ctx, filter)
}
