package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EarningType string

const (
	EarningTypeReferralCommission EarningType = "referral_commission"
	EarningTypeBonus              EarningType = "bonus"
	EarningTypePenalty            EarningType = "penalty"
	EarningTypeAdjustment         EarningType = "adjustment"
	EarningTypePromotionBonus     EarningType = "promotion_bonus"
)

func (t EarningType) Valid() bool {
	switch t {
	case EarningTypeReferralCommission, EarningTypeBonus, EarningTypePenalty,
		EarningTypeAdjustment, EarningTypePromotionBonus:
		return true
	}
	return false
}

type EarningStatus string

const (
	EarningStatusPending   EarningStatus = "pending"
	EarningStatusConfirmed EarningStatus = "confirmed"
	EarningStatusCancelled EarningStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed out of s.
func (s EarningStatus) Terminal() bool {
	return s == EarningStatusConfirmed || s == EarningStatusCancelled
}

// Earning is a single monetary event attributed to one agent. Amounts are
// positive magnitudes; the sign convention is implied by Type downstream.
type Earning struct {
	ID              string           `json:"id"`
	AgentID         string           `json:"agentId"`
	AgentCode       string           `json:"agentCode"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	Type            EarningType      `json:"type"`
	Description     string           `json:"description,omitempty"`
	ReferenceID     string           `json:"referenceId,omitempty"`
	CommissionRate  *decimal.Decimal `json:"commissionRate,omitempty"`
	EarnedAt        time.Time        `json:"earnedAt"`
	Status          EarningStatus    `json:"status"`
	ReviewedAt      *time.Time       `json:"reviewedAt,omitempty"`
	ReviewedBy      string           `json:"reviewedBy,omitempty"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	AdminNotes      string           `json:"adminNotes,omitempty"`
	Metadata        map[string]any   `json:"metadata,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	// AppliedAt is set exactly once, when the earning's amount hits the ledger.
	AppliedAt *time.Time `json:"appliedAt,omitempty"`
}

// Agent is a referral partner earning commissions, identified by AgentCode.
type Agent struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Tier             string          `json:"tier,omitempty"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
}

// EarningDraft is one not-yet-validated entry of a bulk submission.
// Amount carries whatever the normalizer could coerce; the validator decides.
type EarningDraft struct {
	AgentCode      string           `json:"agentCode"`
	Amount         decimal.Decimal  `json:"amount"`
	Type           EarningType      `json:"type,omitempty"`
	Description    string           `json:"description,omitempty"`
	ReferenceID    string           `json:"referenceId,omitempty"`
	CommissionRate *decimal.Decimal `json:"commissionRate,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	EarnedAt       *time.Time       `json:"earnedAt,omitempty"`
	Metadata       map[string]any   `json:"metadata,omitempty"`
}

// BulkUploadBatch is one submission. It is not persisted beyond its report.
type BulkUploadBatch struct {
	Entries          []EarningDraft `json:"earnings"`
	BatchDescription string         `json:"batchDescription,omitempty"`
	AutoConfirm      bool           `json:"autoConfirm,omitempty"`
	UploadedBy       string         `json:"uploadedBy,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

type EntryStatus string

const (
	EntryStatusSuccess EntryStatus = "success"
	EntryStatusFailed  EntryStatus = "failed"
	EntryStatusSkipped EntryStatus = "skipped"
)

type BatchEntryResult struct {
	AgentCode string          `json:"agentCode"`
	Status    EntryStatus     `json:"status"`
	EarningID string          `json:"earningId,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Message   string          `json:"message,omitempty"`
}

type ErrorSummary struct {
	InvalidAgentCodes   []string `json:"invalidAgentCodes"`
	DuplicateReferences []string `json:"duplicateReferences"`
	ValidationErrors    []string `json:"validationErrors"`
	OtherErrors         []string `json:"otherErrors"`
}

type BatchInfo struct {
	BatchID          string    `json:"batchId"`
	ProcessedAt      time.Time `json:"processedAt"`
	ProcessingTimeMs int64     `json:"processingTimeMs"`
	UploadedBy       string    `json:"uploadedBy,omitempty"`
}

type BulkUploadResponse struct {
	TotalProcessed int                `json:"totalProcessed"`
	Successful     int                `json:"successful"`
	Failed         int                `json:"failed"`
	Skipped        int                `json:"skipped"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	UpdatedAgents  []string           `json:"updatedAgents"`
	Details        []BatchEntryResult `json:"details"`
	ErrorSummary   ErrorSummary       `json:"errorSummary"`
	BatchInfo      BatchInfo          `json:"batchInfo"`
}

// BulkReviewSummary reports a bulk approve/reject outcome. Non-pending ids
// are excluded up front, not errored.
type BulkReviewSummary struct {
	Requested    int      `json:"requested"`
	Transitioned int      `json:"transitioned"`
	Excluded     int      `json:"excluded"`
	ExcludedIDs  []string `json:"excludedIds,omitempty"`
}

// ReviewFields carries the audit fields written on a status transition.
type ReviewFields struct {
	ReviewedAt      time.Time
	ReviewedBy      string
	RejectionReason string
	AdminNotes      string
}
