package playwait

import (
	"testing"
	"time"
)

func TestDispatcher_DeliversToSubscriber(t *testing.T) {
	d := NewDispatcher()
	sub := d.Subscribe(EventTimeUpdate)
	defer sub.Cancel()

	d.Dispatch(Event{Type: EventTimeUpdate})

	select {
	case ev := <-sub.C():
		if ev.Type != EventTimeUpdate {
			t.Errorf("expected timeupdate, got %s", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestDispatcher_TypeIsolation(t *testing.T) {
	d := NewDispatcher()
	sub := d.Subscribe(EventEnded)
	defer sub.Cancel()

	d.Dispatch(Event{Type: EventTimeUpdate})

	select {
	case ev := <-sub.C():
		t.Fatalf("unexpected delivery of %s to ended subscriber", ev.Type)
	default:
	}
}

func TestDispatcher_CancelRemovesSubscription(t *testing.T) {
	d := NewDispatcher()
	sub := d.Subscribe(EventTimeUpdate)

	if n := d.Subscribers(EventTimeUpdate); n != 1 {
		t.Fatalf("expected 1 subscriber, got %d", n)
	}

	sub.Cancel()

	if n := d.Subscribers(EventTimeUpdate); n != 0 {
		t.Errorf("expected 0 subscribers after cancel, got %d", n)
	}

	// Channel is closed after cancel.
	if _, ok := <-sub.C(); ok {
		t.Error("expected closed channel after cancel")
	}

	// Dispatch to a canceled subscription is a no-op.
	d.Dispatch(Event{Type: EventTimeUpdate})
}

func TestDispatcher_CancelIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	sub := d.Subscribe(EventTimeUpdate)

	sub.Cancel()
	sub.Cancel() // must not panic on double close
}

func TestDispatcher_DispatchWithoutSubscribers(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: EventEnded}) // no-op
}

func TestDispatcher_NonBlockingDrop(t *testing.T) {
	d := NewDispatcher()
	sub := d.Subscribe(EventTimeUpdate)
	defer sub.Cancel()

	// Overflow the buffer without a reader; Dispatch must not block.
	for i := 0; i < subscriptionBuffer*2; i++ {
		d.Dispatch(Event{Type: EventTimeUpdate})
	}

	received := 0
	for {
		select {
		case <-sub.C():
			received++
			continue
		default:
		}
		break
	}
	if received != subscriptionBuffer {
		t.Errorf("expected %d buffered events, got %d", subscriptionBuffer, received)
	}
}

func TestDispatcher_CloseCancelsAll(t *testing.T) {
	d := NewDispatcher()
	a := d.Subscribe(EventTimeUpdate)
	b := d.Subscribe(EventEnded)

	d.Close()

	if n := d.Subscribers(EventTimeUpdate); n != 0 {
		t.Errorf("expected 0 timeupdate subscribers, got %d", n)
	}
	if n := d.Subscribers(EventEnded); n != 0 {
		t.Errorf("expected 0 ended subscribers, got %d", n)
	}
	if _, ok := <-a.C(); ok {
		t.Error("expected closed channel after Close")
	}
	if _, ok := <-b.C(); ok {
		t.Error("expected closed channel after Close")
	}
}
