package domain

import (
	"strings"
	"time"
)

// EarningFilter is an immutable query passed into stateless list calls.
type EarningFilter struct {
	Status  *EarningStatus
	AgentID string
	Tier    string
	Search  string
	From    *time.Time
	To      *time.Time
	Page    int
	PerPage int
}

// Matches applies the non-paging criteria to a single earning.
func (f EarningFilter) Matches(e *Earning) bool {
	if f.Status != nil && e.Status != *f.Status {
		return false
	}
	if f.AgentID != "" && e.AgentID != f.AgentID {
		return false
	}
	if f.From != nil && e.EarnedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && e.EarnedAt.After(*f.To) {
		return false
	}
	if f.Search != "" && !containsFold(e.Description, f.Search) &&
		!containsFold(e.AgentCode, f.Search) && !containsFold(e.ReferenceID, f.Search) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
