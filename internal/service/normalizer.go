package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/pkg/logger"
)

// RawRow is one already-parsed input row: column header -> cell value.
type RawRow map[string]string

// Canonical draft fields and the header spellings that map onto them.
// Lookup is case-insensitive and ignores spaces, dashes and underscores, so
// "Agent Code", "agent_code" and "agentcode" all land on agentCode.
var fieldAliases = map[string][]string{
	"agentCode":      {"agent code", "agentcode", "agent", "code"},
	"amount":         {"amount", "amt", "value"},
	"type":           {"type", "earning type", "category"},
	"description":    {"description", "desc", "details", "note", "notes"},
	"referenceId":    {"reference id", "reference", "ref", "ref id", "referenceid"},
	"commissionRate": {"commission rate", "commission", "rate", "commissionrate"},
	"currency":       {"currency", "ccy", "currency code"},
}

type Normalizer struct {
	logger *logger.Logger
}

func NewNormalizer(log *logger.Logger) *Normalizer {
	return &Normalizer{logger: log}
}

// Normalize maps heterogeneous rows onto canonical earning drafts. A batch
// whose headers cannot yield both agentCode and amount is rejected wholesale;
// malformed numeric cells are coerced (amount -> 0, rate -> absent) so the
// validator can fail the single entry instead of the batch.
func (n *Normalizer) Normalize(ctx context.Context, rows []RawRow) ([]domain.EarningDraft, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	headerMap := resolveHeaders(rows[0])
	if _, ok := headerMap["agentCode"]; !ok {
		return nil, domain.ErrMissingRequiredColumns
	}
	if _, ok := headerMap["amount"]; !ok {
		return nil, domain.ErrMissingRequiredColumns
	}

	drafts := make([]domain.EarningDraft, 0, len(rows))
	for i, row := range rows {
		draft := n.normalizeRow(row, headerMap)
		if draft.AgentCode == "" && draft.Amount.IsZero() && rowEmpty(row) {
			n.logger.Debug(ctx, "Skipping empty row", "row", i+1)
			continue
		}
		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	return drafts, nil
}

func (n *Normalizer) normalizeRow(row RawRow, headerMap map[string]string) domain.EarningDraft {
	cell := func(field string) string {
		header, ok := headerMap[field]
		if !ok {
			return ""
		}
		return strings.TrimSpace(row[header])
	}

	draft := domain.EarningDraft{
		AgentCode:   cell("agentCode"),
		Description: cell("description"),
		ReferenceID: cell("referenceId"),
		Currency:    strings.ToUpper(cell("currency")),
	}

	if raw := cell("type"); raw != "" {
		draft.Type = domain.EarningType(canonicalType(raw))
	}

	// Malformed numbers are coerced, not fatal; the validator rejects the
	// single entry.
	if raw := cell("amount"); raw != "" {
		if amount, err := decimal.NewFromString(raw); err == nil {
			draft.Amount = amount
		}
	}
	if raw := cell("commissionRate"); raw != "" {
		if rate, err := decimal.NewFromString(raw); err == nil {
			draft.CommissionRate = &rate
		}
	}

	return draft
}

// resolveHeaders maps each canonical field to the actual header present in
// the input, if any alias matches.
func resolveHeaders(row RawRow) map[string]string {
	normalized := make(map[string]string, len(row))
	for header := range row {
		normalized[foldHeader(header)] = header
	}

	headerMap := make(map[string]string)
	for field, aliases := range fieldAliases {
		for _, alias := range aliases {
			if header, ok := normalized[foldHeader(alias)]; ok {
				headerMap[field] = header
				break
			}
		}
	}

	return headerMap
}

func foldHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		switch r {
		case ' ', '_', '-':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func canonicalType(raw string) string {
	folded := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(strings.ReplaceAll(folded, " ", "_"), "-", "_")
}

func rowEmpty(row RawRow) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
