package eventbus

import (
	"context"
	"sync"

	"github.com/refpay/earnings-be/pkg/logger"
	"github.com/refpay/earnings-be/pkg/retry"
)

// EventBus fans events out to per-type consumer worker pools. Publishing is
// non-blocking: notification delivery must never stall batch processing.
type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, consumer Consumer) error
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type subscription struct {
	ch        chan Event
	consumers []Consumer
}

type eventBus struct {
	subs       map[EventType]*subscription
	mu         sync.RWMutex
	wg         sync.WaitGroup
	cancel     context.CancelFunc
	logger     *logger.Logger
	bufferSize int
	maxRetries int
	started    bool
}

type Config struct {
	ChannelBuffer int
	MaxRetries    int
}

func New(log *logger.Logger, cfg *Config) EventBus {
	if cfg == nil {
		cfg = &Config{ChannelBuffer: 1000, MaxRetries: 3}
	}

	return &eventBus{
		subs:       make(map[EventType]*subscription),
		logger:     log,
		bufferSize: cfg.ChannelBuffer,
		maxRetries: cfg.MaxRetries,
	}
}

func (eb *eventBus) Subscribe(eventType EventType, consumer Consumer) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	sub, exists := eb.subs[eventType]
	if !exists {
		sub = &subscription{ch: make(chan Event, eb.bufferSize)}
		eb.subs[eventType] = sub
	}
	sub.consumers = append(sub.consumers, consumer)

	return nil
}

func (eb *eventBus) Start(ctx context.Context) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.started {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	eb.cancel = cancel

	for eventType, sub := range eb.subs {
		for _, consumer := range sub.consumers {
			workerCount := consumer.GetWorkerCount()
			eb.logger.Info(runCtx, "Starting event workers",
				"event_type", eventType,
				"worker_count", workerCount,
			)

			for i := 0; i < workerCount; i++ {
				eb.wg.Add(1)
				go eb.worker(runCtx, sub.ch, consumer, i)
			}
		}
	}

	eb.started = true
	return nil
}

func (eb *eventBus) worker(ctx context.Context, ch <-chan Event, consumer Consumer, workerID int) {
	defer eb.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}

			eventCtx := ctx
			if event.ID != "" {
				eventCtx = logger.WithTraceID(ctx, event.ID)
			}

			err := retry.Do(eventCtx, func() error {
				return consumer.Consume(eventCtx, event)
			}, retry.WithMaxAttempts(eb.maxRetries))

			if err != nil {
				eb.logger.Error(eventCtx, "Failed to process event after retries",
					"event_id", event.ID,
					"event_type", event.Type,
					"worker_id", workerID,
					"error", err,
				)
			}
		}
	}
}

func (eb *eventBus) Publish(ctx context.Context, event Event) error {
	eb.mu.RLock()
	sub, exists := eb.subs[event.Type]
	eb.mu.RUnlock()

	if !exists {
		eb.logger.Warn(ctx, "No subscriber for event type",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	}

	select {
	case sub.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Queue full. Notifications are fire-and-forget, so drop over block.
		eb.logger.Warn(ctx, "Event channel full, event dropped",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	}
}

func (eb *eventBus) Shutdown(ctx context.Context) error {
	if eb.cancel != nil {
		eb.cancel()
	}

	done := make(chan struct{})
	go func() {
		eb.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		eb.logger.Info(ctx, "Event bus shutdown complete")
		return nil
	case <-ctx.Done():
		eb.logger.Warn(ctx, "Event bus shutdown timeout")
		return ctx.Err()
	}
}
