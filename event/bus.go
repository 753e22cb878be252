package event

import (
	"log"
	"runtime/debug"
)

// Handler receives values published on a Bus
// Called synchronously on the publishing goroutine; must run to completion without waiting on further events
type Handler[T any] interface {
	HandleEvent(ev T)
}

// HandlerFunc adapts a plain function to Handler
type HandlerFunc[T any] func(ev T)

func (f HandlerFunc[T]) HandleEvent(ev T) { f(ev) }

// Subscription is a live registration on a Bus
type Subscription[T any] struct {
	bus     *Bus[T]
	handler Handler[T]
	active  bool
}

// Unsubscribe removes the handler; idempotent
// Takes effect immediately, including for a dispatch already in progress
func (s *Subscription[T]) Unsubscribe() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.bus.remove(s)
}

// Active reports whether the subscription still receives events
func (s *Subscription[T]) Active() bool {
	return s != nil && s.active
}

// Stats are cumulative bus counters
type Stats struct {
	Published uint64
	Delivered uint64
	Panics    uint64
}

// Bus is a synchronous publish/subscribe channel
//
// Architecture:
//   - Single-goroutine dispatch, no locking; the owner's goroutine publishes
//   - Handlers run in registration order against a snapshot of the subscriber list
//   - A handler that panics is isolated: the panic is logged and delivery continues
//   - Explicit lifecycle: NewBus at mount, Teardown at unmount
type Bus[T any] struct {
	subs     []*Subscription[T]
	torndown bool
	stats    Stats
}

// NewBus creates an empty bus
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers h and returns its subscription
// Subscribing on a torn-down bus returns an inactive subscription
func (b *Bus[T]) Subscribe(h Handler[T]) *Subscription[T] {
	s := &Subscription[T]{bus: b, handler: h}
	if b.torndown {
		return s
	}
	s.active = true
	b.subs = append(b.subs, s)
	return s
}

// SubscribeFunc registers a plain function
func (b *Bus[T]) SubscribeFunc(fn func(ev T)) *Subscription[T] {
	return b.Subscribe(HandlerFunc[T](fn))
}

// Publish delivers ev to every active subscriber, then returns
func (b *Bus[T]) Publish(ev T) {
	if b.torndown {
		return
	}
	b.stats.Published++

	if len(b.subs) == 0 {
		return
	}

	// Snapshot: subscribers added during dispatch see the next event, not this one
	snapshot := make([]*Subscription[T], len(b.subs))
	copy(snapshot, b.subs)

	for _, s := range snapshot {
		if !s.active {
			continue
		}
		b.deliver(s, ev)
	}
}

// deliver invokes one handler with panic isolation
func (b *Bus[T]) deliver(s *Subscription[T], ev T) {
	defer func() {
		if r := recover(); r != nil {
			b.stats.Panics++
			log.Printf("bus: handler panic on %v: %v\n%s", ev, r, debug.Stack())
		}
	}()
	s.handler.HandleEvent(ev)
	b.stats.Delivered++
}

// remove drops s from the subscriber list, preserving order
func (b *Bus[T]) remove(s *Subscription[T]) {
	for i, cur := range b.subs {
		if cur == s {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of active subscribers
func (b *Bus[T]) Len() int {
	return len(b.subs)
}

// Stats returns cumulative counters
func (b *Bus[T]) Stats() Stats {
	return b.stats
}

// Teardown deactivates every subscription; later Publish and Subscribe calls are no-ops
func (b *Bus[T]) Teardown() {
	for _, s := range b.subs {
		s.active = false
	}
	b.subs = nil
	b.torndown = true
}
