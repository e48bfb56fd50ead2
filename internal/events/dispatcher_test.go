package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherInvokesSubscribersInOrder(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(EventClassificationCompleted, func(ctx context.Context, event Event) {
		order = append(order, "first")
	})
	dispatcher.Subscribe(EventClassificationCompleted, func(ctx context.Context, event Event) {
		order = append(order, "second")
	})

	dispatcher.Publish(context.Background(), Event{Type: EventClassificationCompleted})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcherIgnoresUnrelatedEventTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventClassificationCompleted, func(ctx context.Context, event Event) {
		called = true
	})

	dispatcher.Publish(context.Background(), Event{Type: EventType("something_else")})

	assert.False(t, called)
}

func TestDispatcherPublishWithoutSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	assert.NotPanics(t, func() {
		dispatcher.Publish(context.Background(), Event{Type: EventClassificationCompleted})
	})
}

func TestDispatcherPassesEventThrough(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var got Event
	dispatcher.Subscribe(EventClassificationCompleted, func(ctx context.Context, event Event) {
		got = event
	})

	published := Event{
		ID:   "evt-1",
		Type: EventClassificationCompleted,
		Payload: ClassificationCompletedPayload{
			Source:           SourceFallback,
			Priority:         "high",
			Department:       "network",
			EstimatedMinutes: 135,
			TextLength:       17,
		},
	}
	dispatcher.Publish(context.Background(), published)

	assert.Equal(t, published, got)
}
