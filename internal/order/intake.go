package order

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// deliverTimeout is a hard bound on the outbound notification call. A slow
// endpoint must not hold the shopper's response open.
const deliverTimeout = 10 * time.Second

// Intake turns a checkout payload into a formatted summary and hands it to
// the sink, at most once and best-effort. A failed or skipped delivery
// never changes the caller-visible outcome.
type Intake struct {
	sink Sink
}

func NewIntake(sink Sink) *Intake {
	return &Intake{sink: sink}
}

// Submit formats the order and attempts delivery. It returns the summary
// text; the submission succeeds regardless of delivery outcome.
func (in *Intake) Submit(ctx context.Context, p Payload) string {
	text := BuildSummary(p)
	in.deliver(ctx, text)
	return text
}

func (in *Intake) deliver(ctx context.Context, text string) {
	if in.sink == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, deliverTimeout)
	defer cancel()
	if err := in.sink.Send(ctx, text); err != nil {
		// fire and forget: the order still completes
		zap.L().Warn("order notification delivery failed", zap.Error(err))
	}
}
