// Package backbutton connects a platform "back" signal to navigation.
//
// Handlers subscribe to a Dispatcher and are asked, newest first, whether
// they handle each back request. A request nobody handles is left to the
// platform default, typically exiting the application.
//
// Subscriptions have an explicit lifecycle: Subscribe attaches a handler
// and Subscription.Remove detaches it, so several navigators can share a
// dispatcher without leaking handlers.
package backbutton

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// HandlerFunc reports whether it handled a back request.
type HandlerFunc func() bool

// Dispatcher fans back requests out to subscribed handlers.
type Dispatcher struct {
	mu   sync.Mutex
	subs []*Subscription

	dispatched atomic.Int64
	handled    atomic.Int64
}

// Subscription is a handler attached to a Dispatcher.
type Subscription struct {
	dispatcher *Dispatcher
	fn         HandlerFunc
	active     *atomic.Bool
}

// NewDispatcher creates a Dispatcher with no subscribers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe attaches fn. Later subscriptions are asked before earlier ones.
func (d *Dispatcher) Subscribe(fn HandlerFunc) *Subscription {
	sub := &Subscription{
		dispatcher: d,
		fn:         fn,
		active:     atomic.NewBool(true),
	}

	d.mu.Lock()
	d.subs = append(d.subs, sub)
	d.mu.Unlock()

	return sub
}

// Remove detaches the subscription. Calling it more than once is harmless.
func (s *Subscription) Remove() {
	if !s.active.CompareAndSwap(true, false) {
		return
	}

	d := s.dispatcher
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, sub := range d.subs {
		if sub == s {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			return
		}
	}
}

// Active reports whether the subscription is still attached.
func (s *Subscription) Active() bool {
	return s.active.Load()
}

// Len returns the number of attached subscriptions.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}

// Dispatch offers one back request to the handlers, newest first, and
// reports whether any of them handled it.
func (d *Dispatcher) Dispatch() bool {
	d.dispatched.Inc()

	d.mu.Lock()
	subs := make([]*Subscription, len(d.subs))
	copy(subs, d.subs)
	d.mu.Unlock()

	for i := len(subs) - 1; i >= 0; i-- {
		if !subs[i].Active() {
			continue
		}
		if subs[i].fn() {
			d.handled.Inc()
			return true
		}
	}

	return false
}

// Stats returns how many requests were dispatched and how many were handled.
func (d *Dispatcher) Stats() (dispatched, handled int64) {
	return d.dispatched.Load(), d.handled.Load()
}

// Run dispatches every request received until ctx is done or requests is
// closed. Requests no handler takes are passed to unhandled, if set.
//
// Run must be called on the goroutine that owns the subscribed handlers.
func (d *Dispatcher) Run(ctx context.Context, requests <-chan struct{}, unhandled func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-requests:
			if !ok {
				return
			}
			if !d.Dispatch() && unhandled != nil {
				unhandled()
			}
		}
	}
}
