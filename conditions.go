package playwait

import "sync"

// awaitCondition subscribes to the given event types on target and settles
// the returned goal channel once met reports true after any event. The
// returned cleanup releases the subscriptions and stops the watching
// goroutine; it is safe to call more than once.
func awaitCondition(target Observable, met func() bool, primary, secondary EventType) (<-chan error, func()) {
	first := target.Subscribe(primary)
	second := target.Subscribe(secondary)

	goal := make(chan error, 1)
	stop := make(chan struct{})

	go func() {
		for {
			select {
			case <-stop:
				return
			case _, ok := <-first.C():
				if !ok {
					return
				}
			case _, ok := <-second.C():
				if !ok {
					return
				}
			}
			if met() {
				goal <- nil
				return
			}
		}
	}()

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			close(stop)
			first.Cancel()
			second.Cancel()
		})
	}
	return goal, cleanup
}

// awaitEvent settles the goal on the first occurrence of the named event.
func awaitEvent(target Observable, t EventType) (<-chan error, func()) {
	sub := target.Subscribe(t)

	goal := make(chan error, 1)
	stop := make(chan struct{})

	go func() {
		select {
		case <-stop:
		case _, ok := <-sub.C():
			if ok {
				goal <- nil
			}
		}
	}()

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			close(stop)
			sub.Cancel()
		})
	}
	return goal, cleanup
}

// awaitOperation settles the goal when op sends or closes. There is no
// subscription to release; cleanup only stops the forwarding goroutine.
func awaitOperation(op <-chan error) (<-chan error, func()) {
	goal := make(chan error, 1)
	stop := make(chan struct{})

	go func() {
		select {
		case <-stop:
		case err := <-op:
			goal <- err
		}
	}()

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			close(stop)
		})
	}
	return goal, cleanup
}
