package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/refpay/earnings-be/internal/domain"
)

// buildBulkUploadReport folds per-entry outcomes into the response contract.
// Invariants: successful + failed + skipped == totalProcessed, totalAmount is
// the sum over success entries only, updatedAgents is distinct and ordered by
// first success.
func buildBulkUploadReport(batchID, uploadedBy string, started time.Time, outcomes []entryOutcome) *domain.BulkUploadResponse {
	response := &domain.BulkUploadResponse{
		TotalProcessed: len(outcomes),
		TotalAmount:    decimal.Zero,
		UpdatedAgents:  []string{},
		Details:        make([]domain.BatchEntryResult, 0, len(outcomes)),
		ErrorSummary: domain.ErrorSummary{
			InvalidAgentCodes:   []string{},
			DuplicateReferences: []string{},
			ValidationErrors:    []string{},
			OtherErrors:         []string{},
		},
	}

	seenAgents := make(map[string]bool)

	for _, outcome := range outcomes {
		response.Details = append(response.Details, outcome.result)

		switch outcome.result.Status {
		case domain.EntryStatusSuccess:
			response.Successful++
			response.TotalAmount = response.TotalAmount.Add(outcome.result.Amount)
			if outcome.earning != nil && !seenAgents[outcome.earning.AgentID] {
				seenAgents[outcome.earning.AgentID] = true
				response.UpdatedAgents = append(response.UpdatedAgents, outcome.earning.AgentID)
			}
		case domain.EntryStatusFailed:
			response.Failed++
		case domain.EntryStatusSkipped:
			response.Skipped++
		}

		switch outcome.bucket {
		case bucketInvalidAgent:
			response.ErrorSummary.InvalidAgentCodes = appendUnique(response.ErrorSummary.InvalidAgentCodes, outcome.detail)
		case bucketDuplicateRef:
			response.ErrorSummary.DuplicateReferences = appendUnique(response.ErrorSummary.DuplicateReferences, outcome.detail)
		case bucketValidation:
			response.ErrorSummary.ValidationErrors = append(response.ErrorSummary.ValidationErrors, outcome.detail)
		case bucketOther:
			response.ErrorSummary.OtherErrors = append(response.ErrorSummary.OtherErrors, outcome.detail)
		}
	}

	processedAt := time.Now()
	response.BatchInfo = domain.BatchInfo{
		BatchID:          batchID,
		ProcessedAt:      processedAt,
		ProcessingTimeMs: processedAt.Sub(started).Milliseconds(),
		UploadedBy:       uploadedBy,
	}

	return response
}

func appendUnique(list []string, value string) []string {
	if value == "" {
		return list
	}
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
