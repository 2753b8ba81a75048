package order

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	sent        []string
	err         error
	hadDeadline bool
}

func (f *fakeSink) Send(ctx context.Context, text string) error {
	_, f.hadDeadline = ctx.Deadline()
	f.sent = append(f.sent, text)
	return f.err
}

func TestSubmitDeliversSummaryOnce(t *testing.T) {
	sink := &fakeSink{}
	in := NewIntake(sink)

	text := in.Submit(context.Background(), Payload{
		Name:      "Dara",
		OrderJSON: `{"items":[{"title":"A","qty":1,"price":2}],"total":2}`,
	})

	require.Len(t, sink.sent, 1)
	assert.Equal(t, text, sink.sent[0])
	assert.True(t, sink.hadDeadline, "delivery context must carry a deadline")
}

func TestSubmitSwallowsDeliveryFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("endpoint down")}
	in := NewIntake(sink)

	text := in.Submit(context.Background(), Payload{OrderJSON: `{}`})

	assert.NotEmpty(t, text)
	assert.Len(t, sink.sent, 1)
}

func TestSubmitWithNilSink(t *testing.T) {
	in := NewIntake(nil)
	text := in.Submit(context.Background(), Payload{OrderJSON: `{}`})
	assert.Contains(t, text, "*Total:* $0.00")
}

func TestTelegramSinkRequiresConfiguration(t *testing.T) {
	sink := &TelegramSink{endpoint: "https://api.telegram.org", timeout: 1}
	err := sink.Send(context.Background(), "hello")
	assert.Error(t, err)
}
