package playwait

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Filesystem event types emitted by FileTarget.
const (
	// EventFileWritten fires when a watched file is written.
	EventFileWritten EventType = "file.written"

	// EventFileCreated fires when a file is created under a watched
	// directory.
	EventFileCreated EventType = "file.created"
)

// FileTarget adapts filesystem activity into the package's event model,
// so a test can wait for a media segment or manifest file to appear or
// change:
//
//	target := playwait.NewFileTarget(segmentDir)
//	if err := target.Start(ctx); err != nil {
//	    t.Fatal(err)
//	}
//	defer target.Close()
//
//	err := waiter.WaitForEvent(ctx, target, playwait.EventFileCreated)
//
// The path may be a file or a directory; watching a directory reports
// events for its direct children.
type FileTarget struct {
	path       string
	dispatcher *Dispatcher

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	started bool
}

// NewFileTarget creates a FileTarget for the given path. Watching does not
// begin until Start is called.
func NewFileTarget(path string) *FileTarget {
	return &FileTarget{
		path:       path,
		dispatcher: NewDispatcher(),
	}
}

// Subscribe registers a subscription for the given event type.
func (t *FileTarget) Subscribe(et EventType) *Subscription {
	return t.dispatcher.Subscribe(et)
}

// Start begins translating filesystem events into dispatched events.
// Translation stops when the context is canceled or Close is called.
//
// Start can only be called once. Subsequent calls return an error.
func (t *FileTarget) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return fmt.Errorf("file target already started")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(t.path); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", t.path, err)
	}
	t.watcher = watcher
	t.started = true

	go t.translate(ctx, watcher)
	return nil
}

// Close stops watching and cancels every live subscription.
func (t *FileTarget) Close() error {
	t.mu.Lock()
	watcher := t.watcher
	t.watcher = nil
	t.mu.Unlock()

	var err error
	if watcher != nil {
		err = watcher.Close()
	}
	t.dispatcher.Close()
	return err
}

// translate maps fsnotify events onto dispatched events until the watcher
// closes or the context is canceled.
func (t *FileTarget) translate(ctx context.Context, watcher *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			switch {
			case event.Op&fsnotify.Write != 0:
				t.dispatcher.Dispatch(Event{Type: EventFileWritten})
			case event.Op&fsnotify.Create != 0:
				t.dispatcher.Dispatch(Event{Type: EventFileCreated})
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Continue watching despite errors
		}
	}
}
