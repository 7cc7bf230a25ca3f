package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReturnsEvent(t *testing.T) {
	ch := make(chan Event[string], 1)
	ch <- Event[string]{Type: CreatedEvent, Payload: "a.md"}

	msg := ListenCmd(context.Background(), ch)()

	ev, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, "a.md", ev.Payload)
}

func TestListenCmd_NilWhenDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Nil(t, ListenCmd(ctx, make(chan Event[int]))())

	closed := make(chan Event[int])
	close(closed)
	require.Nil(t, ListenCmd(context.Background(), closed)())
}

func TestContinuousListener_KeepsReceiving(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	l := NewContinuousListener[int](context.Background(), broker)

	broker.Publish(UpdatedEvent, 1)
	broker.Publish(UpdatedEvent, 2)

	first := l.Listen()().(Event[int])
	second := l.Listen()().(Event[int])
	require.Equal(t, 1, first.Payload)
	require.Equal(t, 2, second.Payload)
}
