package eventbus

import (
	"context"
	"fmt"

	"github.com/refpay/earnings-be/pkg/logger"
)

// Notifier delivers review-outcome notifications. Delivery is best-effort;
// the engine never blocks on it.
type Notifier interface {
	Notify(ctx context.Context, notification NotificationEvent) error
}

// LogNotifier is the default Notifier: it records the notification in the
// service log. Real delivery channels plug in behind the same interface.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(ctx context.Context, notification NotificationEvent) error {
	n.logger.Info(ctx, "Earning notification",
		"earning_id", notification.EarningID,
		"agent_code", notification.AgentCode,
		"status", notification.Status,
		"amount", notification.Amount,
		"reason", notification.Reason,
	)
	return nil
}

type NotificationConsumer struct {
	notifier    Notifier
	logger      *logger.Logger
	workerCount int
}

func NewNotificationConsumer(notifier Notifier, log *logger.Logger, workerCount int) *NotificationConsumer {
	return &NotificationConsumer{
		notifier:    notifier,
		logger:      log,
		workerCount: workerCount,
	}
}

func (nc *NotificationConsumer) Consume(ctx context.Context, event Event) error {
	payload, ok := event.Payload.(NotificationEvent)
	if !ok {
		return fmt.Errorf("invalid payload type for notification event")
	}

	return nc.notifier.Notify(ctx, payload)
}

func (nc *NotificationConsumer) GetWorkerCount() int {
	return nc.workerCount
}
