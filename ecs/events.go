package ecs

// EventType names a kind of event on the bus.
type EventType string

const (
	EventKey    EventType = "key"
	EventPaste  EventType = "paste"
	EventResize EventType = "resize"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// KeyEvent carries the key text of a single key press.
type KeyEvent struct {
	Key string
}

// PasteEvent carries clipboard text.
type PasteEvent struct {
	Text string
}

// ResizeEvent carries a new logical viewport size and device pixel ratio.
type ResizeEvent struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// EventHandler reacts to one dispatched event.
type EventHandler func(w *World, evt Event)

// EventBus queues events and delivers them to the handlers registered for
// their type. Events go out in push order; handlers for one type run in
// registration order.
type EventBus struct {
	handlers map[EventType][]EventHandler
	queue    []Event
}

// On registers a handler for an event type.
func (b *EventBus) On(t EventType, h EventHandler) {
	if b == nil || h == nil {
		return
	}
	if b.handlers == nil {
		b.handlers = make(map[EventType][]EventHandler)
	}
	b.handlers[t] = append(b.handlers[t], h)
}

// Push queues an event for the next Dispatch.
func (b *EventBus) Push(evt Event) {
	if b == nil {
		return
	}
	b.queue = append(b.queue, evt)
}

// Pending returns the number of queued events.
func (b *EventBus) Pending() int {
	if b == nil {
		return 0
	}
	return len(b.queue)
}

// Dispatch delivers every queued event. Events pushed by handlers are
// delivered in the same pass, after those already queued.
func (b *EventBus) Dispatch(w *World) int {
	if b == nil {
		return 0
	}
	n := 0
	for len(b.queue) > 0 {
		evt := b.queue[0]
		b.queue[0] = Event{}
		b.queue = b.queue[1:]
		for _, h := range b.handlers[evt.Type] {
			h(w, evt)
		}
		n++
	}
	b.queue = nil
	return n
}
