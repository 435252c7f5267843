package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/refpay/earnings-be/internal/domain"
)

// errorBucket classifies a failed or skipped entry for the report summary.
type errorBucket int

const (
	bucketNone errorBucket = iota
	bucketInvalidAgent
	bucketDuplicateRef
	bucketValidation
	bucketOther
)

// entryError is a per-entry failure. It never aborts the batch.
type entryError struct {
	bucket  errorBucket
	message string
}

func (e *entryError) Error() string {
	return e.message
}

var (
	rateFloor   = decimal.Zero
	rateCeiling = decimal.NewFromInt(100)
)

// Validator checks one draft at a time, independent of the rest of the batch.
// It resolves the agent through the directory collaborator and fills the
// defaulted fields (type, currency) in place.
type Validator struct {
	directory       domain.AgentDirectory
	defaultCurrency string
}

func NewValidator(directory domain.AgentDirectory, defaultCurrency string) *Validator {
	return &Validator{
		directory:       directory,
		defaultCurrency: defaultCurrency,
	}
}

func (v *Validator) ValidateDraft(ctx context.Context, draft *domain.EarningDraft) (*domain.Agent, *entryError) {
	draft.AgentCode = strings.TrimSpace(draft.AgentCode)
	if draft.AgentCode == "" {
		return nil, &entryError{bucketValidation, "agent code is required"}
	}

	agent, err := v.directory.ResolveAgent(ctx, draft.AgentCode)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return nil, &entryError{bucketInvalidAgent, fmt.Sprintf("unknown agent code %q", draft.AgentCode)}
		}
		return nil, &entryError{bucketOther, fmt.Sprintf("agent lookup failed: %v", err)}
	}

	if !draft.Amount.IsPositive() {
		return nil, &entryError{bucketValidation, fmt.Sprintf("amount must be a positive number, got %s", draft.Amount)}
	}

	if draft.Type == "" {
		draft.Type = domain.EarningTypeReferralCommission
	}
	if !draft.Type.Valid() {
		return nil, &entryError{bucketValidation, fmt.Sprintf("unrecognized earning type %q", draft.Type)}
	}

	if draft.CommissionRate != nil {
		rate := *draft.CommissionRate
		if rate.LessThan(rateFloor) || rate.GreaterThan(rateCeiling) {
			return nil, &entryError{bucketValidation, fmt.Sprintf("commission rate %s is outside [0, 100]", rate)}
		}
	}

	if draft.Currency == "" {
		draft.Currency = v.defaultCurrency
	}

	return agent, nil
}
