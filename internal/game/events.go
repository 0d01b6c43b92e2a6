package game

import (
	"sync"
	"time"
)

// EventType indicates the category of an engine event.
type EventType string

const (
	// EventCardPlayed fires after a card is fully placed and scored.
	EventCardPlayed EventType = "CARD_PLAYED"
	// EventAction fires after an action is accepted and applied.
	EventAction EventType = "ACTION"
	// EventCardChanged fires when a card's effective power is recomputed.
	EventCardChanged EventType = "CARD_CHANGED"
	// EventSlotChanged fires on any slot mutation (pawns, owner, card, effects).
	EventSlotChanged EventType = "SLOT_CHANGED"
	// EventLaneChanged fires when a lane score's points or modifier change.
	EventLaneChanged EventType = "LANE_CHANGED"
	// EventSetChanged fires when a deck or hand gains or loses cards.
	EventSetChanged EventType = "SET_CHANGED"
	// EventLogAppended fires when a record is added to the action log.
	EventLogAppended EventType = "LOG_APPENDED"
	// EventPhaseChanged fires on any phase transition.
	EventPhaseChanged EventType = "PHASE_CHANGED"
)

// Event is an immutable record of a state change that observers may react to.
type Event struct {
	Type      EventType
	GameID    string
	PlayerID  string
	CardID    string
	Row       int
	Col       int
	Action    Action
	Card      *Card
	Slot      *Slot
	Lane      *LaneScore
	Set       *CardSet
	Added     []*Card
	Removed   []*Card
	Phase     Phase
	Message   string
	Timestamp time.Time
}

// Listener is a callback that reacts to incoming events.
type Listener func(Event)

type typedListener struct {
	handle   int
	callback Listener
}

// EventBus is a synchronous publish/subscribe hub with type filtering.
type EventBus struct {
	mu             sync.RWMutex
	listeners      map[int]Listener
	typedListeners map[EventType][]typedListener
	nextHandle     int
}

// NewEventBus constructs a fresh event bus.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:      make(map[int]Listener),
		typedListeners: make(map[EventType][]typedListener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// SubscribeTyped registers a listener for one event type.
func (bus *EventBus) SubscribeTyped(eventType EventType, callback Listener) int {
	if callback == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.typedListeners[eventType] = append(bus.typedListeners[eventType], typedListener{
		handle:   handle,
		callback: callback,
	})
	return handle
}

// Unsubscribe removes the listener identified by the handle, typed or not.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
	for eventType, listeners := range bus.typedListeners {
		for i := len(listeners) - 1; i >= 0; i-- {
			if listeners[i].handle == handle {
				bus.typedListeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the event to all registered listeners synchronously.
func (bus *EventBus) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	bus.mu.RLock()
	all := make([]Listener, 0, len(bus.listeners))
	for _, listener := range bus.listeners {
		all = append(all, listener)
	}
	typed := bus.typedListeners[event.Type]
	callbacks := make([]Listener, len(typed))
	for i, tl := range typed {
		callbacks[i] = tl.callback
	}
	bus.mu.RUnlock()

	// Listeners run outside the lock so they may subscribe or unsubscribe.
	for _, listener := range all {
		listener(event)
	}
	for _, callback := range callbacks {
		callback(event)
	}
}
