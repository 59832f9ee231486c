package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandro-mc/connect4/internal/game/core"
)

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func NewTestSubscriber(id string, interestedTypes ...string) *TestSubscriber {
	ts := &TestSubscriber{id: id}
	if len(interestedTypes) > 0 {
		ts.interestedTypes = make(map[string]bool)
		for _, t := range interestedTypes {
			ts.interestedTypes[t] = true
		}
	}
	return ts
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()

	var receivedEvent Event
	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		receivedEvent = e
	})

	bus.Publish(NewGameStartedEvent("test-game", 6, 7, core.Player2))

	require.NotNil(t, receivedEvent, "Event handler should have been called")
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())

	started, ok := receivedEvent.(*GameStartedEvent)
	require.True(t, ok)
	assert.Equal(t, 6, started.Height)
	assert.Equal(t, 7, started.Width)
	assert.Equal(t, core.Player2, started.Computer)
}

func TestEventBusFunctionHandlersRunInOrder(t *testing.T) {
	bus := NewEventBus()

	var calls []string
	id1 := bus.SubscribeFunc(TypeMoveApplied, func(e Event) { calls = append(calls, "first") })
	id2 := bus.SubscribeFunc(TypeMoveApplied, func(e Event) { calls = append(calls, "second") })

	assert.Equal(t, "move.applied_func_1", id1)
	assert.Equal(t, "move.applied_func_2", id2)

	move := core.Move{Player: core.Player1, Row: 5, Col: 3}
	bus.Publish(NewMoveAppliedEvent("test-game", move, 41, core.InProgress))

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBus()

	subscriber := NewTestSubscriber("test-subscriber", TypeGameStarted, TypeGameEnded)
	bus.Subscribe(subscriber)

	bus.Publish(NewGameStartedEvent("test-game", 6, 7, core.Empty))
	bus.Publish(NewMoveRejectedEvent("test-game", core.Player1, 9, core.ReasonOutOfRange))
	bus.Publish(NewGameEndedEvent("test-game", core.Tied, 42, time.Minute))

	// Should only receive GameStarted and GameEnded
	require.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeGameStarted, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeGameEnded, subscriber.receivedEvents[1].Type())
}

func TestEventBusSubscribeReplacesSameID(t *testing.T) {
	bus := NewEventBus()

	first := NewTestSubscriber("logger")
	second := NewTestSubscriber("logger")
	bus.Subscribe(first)
	bus.Subscribe(second)

	bus.Publish(NewGameStartedEvent("test-game", 6, 7, core.Empty))

	assert.Empty(t, first.receivedEvents)
	assert.Len(t, second.receivedEvents, 1)
}

func TestEventBusPanicRecovery(t *testing.T) {
	bus := NewEventBus()

	bus.SubscribeFunc(TypeMoveUndone, func(e Event) {
		panic("test panic")
	})
	normalSub := NewTestSubscriber("normal")
	bus.Subscribe(normalSub)

	undone := NewMoveUndoneEvent("game5", core.Move{Player: core.Player2, Row: 5, Col: 0})
	assert.NotPanics(t, func() {
		bus.Publish(undone)
	})

	assert.Len(t, normalSub.receivedEvents, 1)
}

func TestEventTimestamps(t *testing.T) {
	startTime := time.Now()

	all := []Event{
		NewGameStartedEvent("game6", 6, 7, core.Player2),
		NewMoveAppliedEvent("game6", core.Move{Player: core.Player1, Row: 5, Col: 0}, 41, core.InProgress),
		NewMoveRejectedEvent("game6", core.Player2, 0, core.ReasonColumnFull),
		NewMoveUndoneEvent("game6", core.Move{Player: core.Player1, Row: 5, Col: 0}),
		NewComputerMovedEvent("game6", core.Player2, 3, 1, 4, 2801, time.Millisecond),
		NewGameEndedEvent("game6", core.Player1Wins, 7, time.Second),
		NewStateTransitionEvent("game6", "Menu", "Playing", "new game"),
	}

	for _, event := range all {
		assert.False(t, event.Timestamp().IsZero())
		assert.False(t, event.Timestamp().Before(startTime))
		assert.Equal(t, "game6", event.GameID())
	}
}

func TestGameEndedWinner(t *testing.T) {
	assert.Equal(t, core.Player1, NewGameEndedEvent("g", core.Player1Wins, 7, 0).Winner())
	assert.Equal(t, core.Player2, NewGameEndedEvent("g", core.Player2Wins, 8, 0).Winner())
	assert.Equal(t, core.Empty, NewGameEndedEvent("g", core.Tied, 42, 0).Winner())
}

func BenchmarkEventBusPublish(b *testing.B) {
	bus := NewEventBus()
	bus.Subscribe(NewTestSubscriber("bench"))

	event := NewMoveAppliedEvent("bench-game", core.Move{Player: core.Player1, Row: 5, Col: 3}, 41, core.InProgress)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.Publish(event)
	}
}

func TestIsKnownType(t *testing.T) {
	assert.True(t, IsKnownType(TypeComputerMoved))
	assert.True(t, IsKnownType(TypeStateTransition))
	assert.False(t, IsKnownType("move.made"))
	assert.False(t, IsKnownType(""))
}
