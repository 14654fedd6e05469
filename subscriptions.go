package pulse

import (
	"sync"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/ghetzel/go-stockutil/log"
)

// EventType selects and names a facility of server events.
type EventType capi.SubscriptionMask

const (
	NullEvent         = EventType(capi.SubscriptionMaskNull)         // No events.
	SinkEvent         = EventType(capi.SubscriptionMaskSink)         // Sink events.
	SourceEvent       = EventType(capi.SubscriptionMaskSource)       // Source events.
	SinkInputEvent    = EventType(capi.SubscriptionMaskSinkInput)    // Sink input events.
	SourceOutputEvent = EventType(capi.SubscriptionMaskSourceOutput) // Source output events.
	ModuleEvent       = EventType(capi.SubscriptionMaskModule)       // Module events.
	ClientEvent       = EventType(capi.SubscriptionMaskClient)       // Client events.
	SampleCacheEvent  = EventType(capi.SubscriptionMaskSampleCache)  // Sample cache events.
	ServerEvent       = EventType(capi.SubscriptionMaskServer)       // Other global server changes.
	CardEvent         = EventType(capi.SubscriptionMaskCard)         // Card events.
	AllEvent          = EventType(capi.SubscriptionMaskAll)          // Catch all events.
)

// The size of the channel returned by Subscribe. Events arriving while it is
// full are dropped.
const DEFAULT_EVENT_BUFFER_SIZE = 64

func ExtractEvents(combined int) []EventType {
	types := make([]EventType, 0)

	for _, eventType := range []EventType{
		SinkEvent,
		SourceEvent,
		SinkInputEvent,
		SourceOutputEvent,
		ModuleEvent,
		ClientEvent,
		SampleCacheEvent,
		ServerEvent,
		CardEvent,
	} {
		if combined&int(eventType) == int(eventType) {
			types = append(types, eventType)
		}
	}

	return types
}

func (self EventType) String() string {
	switch self {
	case SinkEvent:
		return `sink`
	case SourceEvent:
		return `source`
	case SinkInputEvent:
		return `sink-input`
	case SourceOutputEvent:
		return `source-output`
	case ModuleEvent:
		return `module`
	case ClientEvent:
		return `client`
	case SampleCacheEvent:
		return `sample-cache`
	case ServerEvent:
		return `server`
	case CardEvent:
		return `card`
	default:
		return `unknown`
	}
}

// An Event is one change notification from the server.
type Event struct {
	Type      EventType `json:"type"`
	Operation string    `json:"operation"` // new, change or remove
	Index     uint32    `json:"index"`
}

func eventOf(facility capi.SubscriptionEventType, operation capi.SubscriptionEventType, index uint32) Event {
	return Event{
		Type:      EventType(facility.Mask()),
		Operation: operation.OperationString(),
		Index:     index,
	}
}

type subscription struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

func newSubscription(size int) *subscription {
	return &subscription{
		ch: make(chan Event, size),
	}
}

// send never blocks: it runs on the dispatch thread.
func (self *subscription) send(event Event) {
	self.mu.Lock()
	defer self.mu.Unlock()

	if self.closed {
		return
	}

	select {
	case self.ch <- event:
	default:
		log.Warningf("pulse: event buffer full, dropping %v %s event for %d", event.Type, event.Operation, event.Index)
	}
}

func (self *subscription) stop() {
	self.mu.Lock()
	defer self.mu.Unlock()

	if !self.closed {
		self.closed = true
		close(self.ch)
	}
}

// Subscribe to event notifications and emit them as they occur. Without any
// types, every event is delivered. A new call replaces the previous
// subscription, closing its channel.
func (self *Conn) Subscribe(types ...EventType) (<-chan Event, error) {
	mask := capi.SubscriptionMaskNull

	if len(types) == 0 {
		mask = capi.SubscriptionMaskAll
	} else {
		for _, tm := range types {
			mask |= capi.SubscriptionMask(tm)
		}
	}

	sub := newSubscription(DEFAULT_EVENT_BUFFER_SIZE)

	self.mainloop.Lock()

	if self.events != nil {
		self.events.stop()
	}

	self.events = sub
	self.context.SetSubscribeCallback(func(facility capi.SubscriptionEventType, operation capi.SubscriptionEventType, index uint32) {
		sub.send(eventOf(facility, operation, index))
	})

	self.mainloop.Unlock()

	if err := self.success(func(fn func(bool)) (*Operation, error) {
		return self.context.Subscribe(mask, fn)
	}); err != nil {
		self.Unsubscribe()
		return nil, err
	}

	return sub.ch, nil
}

// Unsubscribe stops event delivery and closes the channel returned by
// Subscribe.
func (self *Conn) Unsubscribe() error {
	self.mainloop.Lock()
	self.context.SetSubscribeCallback(nil)

	if self.events != nil {
		self.events.stop()
		self.events = nil
	}

	self.mainloop.Unlock()

	return self.success(func(fn func(bool)) (*Operation, error) {
		return self.context.Subscribe(capi.SubscriptionMaskNull, fn)
	})
}

// ParseEventType accepts the names returned by EventType.String, plus "all".
func ParseEventType(name string) EventType {
	if name == `all` {
		return AllEvent
	}

	for _, t := range ExtractEvents(int(AllEvent)) {
		if t.String() == name {
			return t
		}
	}

	return NullEvent
}
