package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/refpay/earnings-be/internal/domain"
)

// MemoryDirectory is an in-process Agent Directory, used for tests and for
// running the engine without an upstream agent service.
type MemoryDirectory struct {
	agents map[string]*domain.Agent // keyed by agent id
	byCode map[string]string        // lower(code) -> agent id
	mu     sync.RWMutex
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		agents: make(map[string]*domain.Agent),
		byCode: make(map[string]string),
	}
}

func (d *MemoryDirectory) AddAgent(agent domain.Agent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cp := agent
	d.agents[cp.ID] = &cp
	d.byCode[strings.ToLower(cp.Code)] = cp.ID
}

func (d *MemoryDirectory) ResolveAgent(ctx context.Context, agentCode string) (*domain.Agent, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	id, exists := d.byCode[strings.ToLower(strings.TrimSpace(agentCode))]
	if !exists {
		return nil, domain.ErrAgentNotFound
	}

	cp := *d.agents[id]
	return &cp, nil
}

func (d *MemoryDirectory) CreditBalance(ctx context.Context, agentID string, amount decimal.Decimal) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	agent, exists := d.agents[agentID]
	if !exists {
		return domain.ErrAgentNotFound
	}

	agent.AvailableBalance = agent.AvailableBalance.Add(amount)
	agent.TotalEarnings = agent.TotalEarnings.Add(amount)

	return nil
}

// TierOf supports tier filters on the earnings listing.
func (d *MemoryDirectory) TierOf(agentID string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if agent, exists := d.agents[agentID]; exists {
		return agent.Tier
	}
	return ""
}
