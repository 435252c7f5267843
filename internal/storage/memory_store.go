package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/refpay/earnings-be/internal/domain"
)

type MemoryStoreOption func(*MemoryStore)

// WithTierLookup lets the store answer tier filters without knowing about
// the agent directory implementation.
func WithTierLookup(fn func(agentID string) string) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.tierOf = fn
	}
}

type MemoryStore struct {
	earnings     map[string]*domain.Earning
	reservations map[string]bool
	applied      map[string]bool
	order        []string
	tierOf       func(agentID string) string
	mu           sync.RWMutex
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		earnings:     make(map[string]*domain.Earning),
		reservations: make(map[string]bool),
		applied:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Create(ctx context.Context, earning *domain.Earning) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *earning
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	s.earnings[cp.ID] = &cp
	s.order = append(s.order, cp.ID)

	return nil
}

func (s *MemoryStore) GetByID(ctx context.Context, earningID string) (*domain.Earning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	earning, exists := s.earnings[earningID]
	if !exists {
		return nil, domain.ErrEarningNotFound
	}

	cp := *earning
	return &cp, nil
}

func (s *MemoryStore) FindByReferenceID(ctx context.Context, referenceID string) (*domain.Earning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		e := s.earnings[id]
		if e.ReferenceID == referenceID && e.Status != domain.EarningStatusCancelled {
			cp := *e
			return &cp, nil
		}
	}

	return nil, domain.ErrEarningNotFound
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, earningID string, status domain.EarningStatus, review domain.ReviewFields) (*domain.Earning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	earning, exists := s.earnings[earningID]
	if !exists {
		return nil, domain.ErrEarningNotFound
	}

	// Terminal statuses are write-once; only pending may transition.
	if earning.Status != domain.EarningStatusPending {
		return nil, domain.ErrStateConflict
	}

	earning.Status = status
	reviewedAt := review.ReviewedAt
	earning.ReviewedAt = &reviewedAt
	earning.ReviewedBy = review.ReviewedBy
	earning.RejectionReason = review.RejectionReason
	earning.AdminNotes = review.AdminNotes

	cp := *earning
	return &cp, nil
}

func (s *MemoryStore) ListByFilter(ctx context.Context, filter domain.EarningFilter) ([]domain.Earning, int, error) {
	if filter.Page < 1 || filter.PerPage < 1 {
		return nil, 0, domain.ErrInvalidPageParams
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []domain.Earning
	for _, id := range s.order {
		e := s.earnings[id]
		if !filter.Matches(e) {
			continue
		}
		if filter.Tier != "" {
			if s.tierOf == nil || s.tierOf(e.AgentID) != filter.Tier {
				continue
			}
		}
		filtered = append(filtered, *e)
	}

	// Newest first, stable for equal timestamps.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)

	start := (filter.Page - 1) * filter.PerPage
	end := start + filter.PerPage

	if start >= total {
		return []domain.Earning{}, total, nil
	}
	if end > total {
		end = total
	}

	return filtered[start:end], total, nil
}

func (s *MemoryStore) ReserveReference(ctx context.Context, referenceID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reservations[referenceID] {
		return false, nil
	}

	s.reservations[referenceID] = true
	return true, nil
}

func (s *MemoryStore) ReleaseReference(ctx context.Context, referenceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.reservations, referenceID)
	return nil
}

func (s *MemoryStore) MarkApplied(ctx context.Context, earningID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.earnings[earningID]; !exists {
		return false, domain.ErrEarningNotFound
	}

	if s.applied[earningID] {
		return false, nil
	}

	s.applied[earningID] = true
	now := time.Now()
	s.earnings[earningID].AppliedAt = &now

	return true, nil
}

func (s *MemoryStore) ClearApplied(ctx context.Context, earningID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.applied, earningID)
	if earning, exists := s.earnings[earningID]; exists {
		earning.AppliedAt = nil
	}

	return nil
}
