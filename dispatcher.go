package playwait

import "sync"

// EventType identifies a kind of event a target can emit.
type EventType string

// Well-known playback event types.
const (
	// EventTimeUpdate fires periodically while the playhead advances.
	EventTimeUpdate EventType = "timeupdate"

	// EventEnded fires once when playback reaches the end of the media.
	EventEnded EventType = "ended"
)

// Event is a single occurrence delivered to subscribers.
type Event struct {
	// Type is the kind of event.
	Type EventType
}

// Observable is an event target that supports subscription.
// Media targets, Dispatcher, and FileTarget all implement it.
type Observable interface {
	// Subscribe registers interest in events of the given type and returns
	// a handle for receiving and for releasing the subscription.
	Subscribe(t EventType) *Subscription
}

// subscriptionBuffer is the per-subscription channel capacity. Dispatch is
// non-blocking; events beyond the buffer are dropped rather than stalling
// the dispatching goroutine.
const subscriptionBuffer = 16

// Subscription is a handle to a single registration on an Observable.
// Cancel is idempotent, so a subscription already released by a settled
// wait can be canceled again without effect.
type Subscription struct {
	ch     chan Event
	once   sync.Once
	cancel func(*Subscription)
}

// C returns the channel on which events are delivered. The channel is
// closed when the subscription is canceled.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Cancel releases the subscription. After Cancel returns, no further
// events are delivered and the event channel is closed.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel(s)
		}
		close(s.ch)
	})
}

// Dispatcher is a concrete Observable for test fakes and adapters.
// Embed one in a fake media target and call Dispatch to simulate playback
// events.
//
// The zero value is not usable; create with NewDispatcher.
type Dispatcher struct {
	mu   sync.Mutex
	subs map[EventType]map[*Subscription]struct{}
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subs: make(map[EventType]map[*Subscription]struct{}),
	}
}

// Subscribe registers a subscription for the given event type.
func (d *Dispatcher) Subscribe(t EventType) *Subscription {
	sub := &Subscription{
		ch: make(chan Event, subscriptionBuffer),
	}
	sub.cancel = func(s *Subscription) {
		d.mu.Lock()
		defer d.mu.Unlock()
		if set, ok := d.subs[t]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(d.subs, t)
			}
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	set, ok := d.subs[t]
	if !ok {
		set = make(map[*Subscription]struct{})
		d.subs[t] = set
	}
	set[sub] = struct{}{}
	return sub
}

// Dispatch delivers an event to every current subscriber of its type.
// Delivery is non-blocking: a subscriber whose buffer is full misses the
// event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for sub := range d.subs[ev.Type] {
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

// Subscribers returns the number of live subscriptions for the given
// event type. Tests use this to verify waits leave nothing registered.
func (d *Dispatcher) Subscribers(t EventType) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs[t])
}

// Close cancels every live subscription.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	var all []*Subscription
	for _, set := range d.subs {
		for sub := range set {
			all = append(all, sub)
		}
	}
	d.mu.Unlock()

	// Cancel outside the lock; Cancel re-enters the dispatcher mutex.
	for _, sub := range all {
		sub.Cancel()
	}
}
