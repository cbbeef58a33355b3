package input

import (
	"sync/atomic"

	"github.com/lixenwraith/party-arcade/status"
)

// Handler receives dispatched events
type Handler func(Event)

// Subscription is the handle returned by Subscribe
// Unsubscribe must be called with this exact value; the zero value is inert
type Subscription struct {
	id   uint64
	kind Kind
}

// Valid reports whether the handle came from Subscribe
func (s Subscription) Valid() bool {
	return s.id != 0
}

type subscriber struct {
	id      uint64
	kind    Kind
	handler Handler
}

// Bus fans input events out to subscribers in subscription order
// Single-goroutine: Subscribe, Unsubscribe and Dispatch run on the main loop
type Bus struct {
	subs   []subscriber
	nextID uint64

	statSubs       *atomic.Int64
	statDispatched *atomic.Int64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Instrument caches metric pointers from the registry
func (b *Bus) Instrument(reg *status.Registry) {
	b.statSubs = reg.Ints.Get("input.subscribers")
	b.statDispatched = reg.Ints.Get("input.dispatched")
	b.statSubs.Store(int64(len(b.subs)))
}

// Subscribe registers handler for events of kind
func (b *Bus) Subscribe(kind Kind, handler Handler) Subscription {
	b.nextID++
	b.subs = append(b.subs, subscriber{id: b.nextID, kind: kind, handler: handler})
	b.publish()
	return Subscription{id: b.nextID, kind: kind}
}

// Unsubscribe removes exactly the subscription identified by sub
// Reports whether it was still registered
func (b *Bus) Unsubscribe(sub Subscription) bool {
	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			b.publish()
			return true
		}
	}
	return false
}

// Len returns the number of live subscriptions
func (b *Bus) Len() int {
	return len(b.subs)
}

// Dispatch delivers ev to every matching subscriber and returns how many were called
// A subscriber removed by an earlier handler in the same dispatch is skipped
func (b *Bus) Dispatch(ev Event) int {
	snapshot := make([]subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		if s.kind == ev.Kind {
			snapshot = append(snapshot, s)
		}
	}

	called := 0
	for _, s := range snapshot {
		if !b.live(s.id) {
			continue
		}
		s.handler(ev)
		called++
	}

	if b.statDispatched != nil {
		b.statDispatched.Add(1)
	}
	return called
}

func (b *Bus) live(id uint64) bool {
	for _, s := range b.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

func (b *Bus) publish() {
	if b.statSubs != nil {
		b.statSubs.Store(int64(len(b.subs)))
	}
}
