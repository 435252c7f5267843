package eventbus

import "context"

// Consumer handles events of one type. A returned error triggers the bus's
// bounded retry; GetWorkerCount sets the fan-out at Start.
type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}
