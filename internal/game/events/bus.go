package events

import (
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventBus delivers each event to its listeners before Publish returns.
// Subscribers see events in no particular order; handlers registered with
// SubscribeFunc run in registration order after them.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[string]Subscriber
	handlers    map[string][]EventHandler
	logger      zerolog.Logger
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string]Subscriber),
		handlers:    make(map[string][]EventHandler),
		logger:      log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe registers s, replacing any subscriber with the same ID.
func (eb *EventBus) Subscribe(s Subscriber) {
	eb.mu.Lock()
	eb.subscribers[s.ID()] = s
	eb.mu.Unlock()

	eb.logger.Debug().Str("subscriber_id", s.ID()).Msg("Subscriber added")
}

// SubscribeFunc calls handler for every event of eventType and returns an
// identifier for the registration.
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
	id := eventType + "_func_" + strconv.Itoa(len(eb.handlers[eventType]))
	eb.mu.Unlock()

	eb.logger.Debug().Str("event_type", eventType).Str("handler_id", id).Msg("Handler added")
	return id
}

// Publish hands event to every interested listener. A listener that panics
// is logged and skipped.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	eventType := event.Type()
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Msg("Publishing event")

	for id, s := range eb.subscribers {
		if s.InterestedIn(eventType) {
			eb.deliver(eventType, id, func() { s.HandleEvent(event) })
		}
	}
	for i, h := range eb.handlers[eventType] {
		eb.deliver(eventType, eventType+"_func_"+strconv.Itoa(i+1), func() { h(event) })
	}
}

func (eb *EventBus) deliver(eventType, listener string, call func()) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("listener", listener).
				Str("event_type", eventType).
				Interface("panic", r).
				Msg("Event listener panicked")
		}
	}()
	call()
}
