package eventbus

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/refpay/earnings-be/internal/domain"
)

type EventType string

const (
	EventTypeNotification EventType = "notification"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NotificationEvent is emitted when an earning reaches a terminal status.
type NotificationEvent struct {
	EarningID string               `json:"earning_id"`
	AgentID   string               `json:"agent_id"`
	AgentCode string               `json:"agent_code"`
	Status    domain.EarningStatus `json:"status"`
	Amount    decimal.Decimal      `json:"amount"`
	Currency  string               `json:"currency"`
	Reason    string               `json:"reason,omitempty"`
}
