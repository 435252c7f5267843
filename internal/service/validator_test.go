package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/mocks"
)

func validAgent() *domain.Agent {
	return &domain.Agent{ID: "a1", Code: "AG-1001", Name: "Amelia Ortiz", Tier: "gold"}
}

func TestValidateDraft_Success(t *testing.T) {
	directory := mocks.NewMockAgentDirectory(t)
	v := NewValidator(directory, "USD")

	directory.EXPECT().
		ResolveAgent(mock.Anything, "AG-1001").
		Return(validAgent(), nil).
		Once()

	draft := &domain.EarningDraft{
		AgentCode: "AG-1001",
		Amount:    decimal.NewFromInt(100),
	}

	agent, verr := v.ValidateDraft(context.Background(), draft)
	require.Nil(t, verr)
	assert.Equal(t, "a1", agent.ID)
	// Defaults are filled in place.
	assert.Equal(t, domain.EarningTypeReferralCommission, draft.Type)
	assert.Equal(t, "USD", draft.Currency)
}

func TestValidateDraft_EmptyAgentCode(t *testing.T) {
	directory := mocks.NewMockAgentDirectory(t)
	v := NewValidator(directory, "USD")

	draft := &domain.EarningDraft{AgentCode: "   ", Amount: decimal.NewFromInt(100)}

	agent, verr := v.ValidateDraft(context.Background(), draft)
	assert.Nil(t, agent)
	require.NotNil(t, verr)
	assert.Equal(t, bucketValidation, verr.bucket)
}

func TestValidateDraft_UnknownAgent(t *testing.T) {
	directory := mocks.NewMockAgentDirectory(t)
	v := NewValidator(directory, "USD")

	directory.EXPECT().
		ResolveAgent(mock.Anything, "AG-9999").
		Return(nil, domain.ErrAgentNotFound).
		Once()

	draft := &domain.EarningDraft{AgentCode: "AG-9999", Amount: decimal.NewFromInt(100)}

	agent, verr := v.ValidateDraft(context.Background(), draft)
	assert.Nil(t, agent)
	require.NotNil(t, verr)
	assert.Equal(t, bucketInvalidAgent, verr.bucket)
}

func TestValidateDraft_DirectoryFailure(t *testing.T) {
	directory := mocks.NewMockAgentDirectory(t)
	v := NewValidator(directory, "USD")

	directory.EXPECT().
		ResolveAgent(mock.Anything, "AG-1001").
		Return(nil, errors.New("connection refused")).
		Once()

	draft := &domain.EarningDraft{AgentCode: "AG-1001", Amount: decimal.NewFromInt(100)}

	_, verr := v.ValidateDraft(context.Background(), draft)
	require.NotNil(t, verr)
	assert.Equal(t, bucketOther, verr.bucket)
}

func TestValidateDraft_NonPositiveAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromInt(-50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := mocks.NewMockAgentDirectory(t)
			v := NewValidator(directory, "USD")

			directory.EXPECT().
				ResolveAgent(mock.Anything, "AG-1001").
				Return(validAgent(), nil).
				Once()

			draft := &domain.EarningDraft{AgentCode: "AG-1001", Amount: tt.amount}

			_, verr := v.ValidateDraft(context.Background(), draft)
			require.NotNil(t, verr)
			assert.Equal(t, bucketValidation, verr.bucket)
		})
	}
}

func TestValidateDraft_UnrecognizedType(t *testing.T) {
	directory := mocks.NewMockAgentDirectory(t)
	v := NewValidator(directory, "USD")

	directory.EXPECT().
		ResolveAgent(mock.Anything, "AG-1001").
		Return(validAgent(), nil).
		Once()

	draft := &domain.EarningDraft{
		AgentCode: "AG-1001",
		Amount:    decimal.NewFromInt(100),
		Type:      domain.EarningType("windfall"),
	}

	_, verr := v.ValidateDraft(context.Background(), draft)
	require.NotNil(t, verr)
	assert.Equal(t, bucketValidation, verr.bucket)
}

func TestValidateDraft_CommissionRateBounds(t *testing.T) {
	tests := []struct {
		name string
		rate string
		ok   bool
	}{
		{"zero", "0", true},
		{"max", "100", true},
		{"negative", "-0.1", false},
		{"over max", "100.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := mocks.NewMockAgentDirectory(t)
			v := NewValidator(directory, "USD")

			directory.EXPECT().
				ResolveAgent(mock.Anything, "AG-1001").
				Return(validAgent(), nil).
				Once()

			rate := decimal.RequireFromString(tt.rate)
			draft := &domain.EarningDraft{
				AgentCode:      "AG-1001",
				Amount:         decimal.NewFromInt(100),
				CommissionRate: &rate,
			}

			_, verr := v.ValidateDraft(context.Background(), draft)
			if tt.ok {
				assert.Nil(t, verr)
			} else {
				require.NotNil(t, verr)
				assert.Equal(t, bucketValidation, verr.bucket)
			}
		})
	}
}

func TestValidateDraft_KeepsExplicitCurrency(t *testing.T) {
	directory := mocks.NewMockAgentDirectory(t)
	v := NewValidator(directory, "USD")

	directory.EXPECT().
		ResolveAgent(mock.Anything, "AG-1001").
		Return(validAgent(), nil).
		Once()

	draft := &domain.EarningDraft{
		AgentCode: "AG-1001",
		Amount:    decimal.NewFromInt(100),
		Currency:  "EUR",
	}

	_, verr := v.ValidateDraft(context.Background(), draft)
	require.Nil(t, verr)
	assert.Equal(t, "EUR", draft.Currency)
}
