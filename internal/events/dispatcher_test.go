package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher(zap.NewNop())

	var received []Event
	dispatcher.Subscribe(EventPartsReturned, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		Type:         EventPartsReturned,
		TicketNumber: "SVT-AAAA1111",
	})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "SVT-AAAA1111", received[0].TicketNumber)
}

func TestDispatcherHandlerErrorDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher(zap.NewNop())

	dispatcher.Subscribe(EventPartsReturned, func(context.Context, Event) error {
		return errors.New("handler blew up")
	})
	var delivered bool
	dispatcher.Subscribe(EventPartsReturned, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventPartsReturned})
	require.NoError(t, err)
	assert.True(t, delivered)
}

func TestDispatcherNoSubscribersIsNotAnError(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher(zap.NewNop())
	err := dispatcher.Publish(context.Background(), Event{Type: EventPartsReturned})
	assert.NoError(t, err)
}
