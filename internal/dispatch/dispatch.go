// ABOUTME: Routes recognized intents to registered handlers by intent name
// ABOUTME: Publishes matched/unhandled/failed events to subscribers

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mauromedda/avi-go/internal/intent"
)

var (
	ErrNoHandler        = errors.New("no handler for intent")
	ErrDuplicateHandler = errors.New("handler already registered")
)

// Handler processes one match.
type Handler func(ctx context.Context, m intent.ExtractedSlots) error

// EventKind classifies a dispatch outcome.
type EventKind int

const (
	EventMatched   EventKind = iota // handler ran successfully
	EventUnhandled                  // no handler registered for the intent
	EventFailed                     // handler returned an error
)

// String returns the human-readable name of the kind.
func (k EventKind) String() string {
	switch k {
	case EventMatched:
		return "matched"
	case EventUnhandled:
		return "unhandled"
	case EventFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Event describes one dispatch outcome.
type Event struct {
	Kind  EventKind
	Match intent.ExtractedSlots
	Err   error // set for EventUnhandled and EventFailed
}

// Dispatcher maps intent names to handlers. Safe for concurrent use.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	fallback Handler
	subs     map[int]func(Event)
	nextSub  int
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
		subs:     make(map[int]func(Event)),
	}
}

// Register binds h to intentName.
func (d *Dispatcher) Register(intentName string, h Handler) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.handlers[intentName]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateHandler, intentName)
	}
	d.handlers[intentName] = h
	return nil
}

// SetFallback sets the handler used for intents without a registered handler.
// Fallback runs still publish EventUnhandled.
func (d *Dispatcher) SetFallback(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fallback = h
}

// Handles reports whether a handler is registered for intentName.
func (d *Dispatcher) Handles(intentName string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[intentName]
	return ok
}

// Subscribe registers fn for dispatch events and returns an unsubscribe function.
func (d *Dispatcher) Subscribe(fn func(Event)) func() {
	d.mu.Lock()
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.subs, id)
		d.mu.Unlock()
	}
}

// Dispatch runs the handler for m.Intent.
func (d *Dispatcher) Dispatch(ctx context.Context, m intent.ExtractedSlots) error {
	d.mu.RLock()
	h, ok := d.handlers[m.Intent]
	fallback := d.fallback
	d.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("%w: %q", ErrNoHandler, m.Intent)
		d.publish(Event{Kind: EventUnhandled, Match: m, Err: err})
		if fallback != nil {
			return fallback(ctx, m)
		}
		return err
	}

	if err := h(ctx, m); err != nil {
		err = fmt.Errorf("intent %q: %w", m.Intent, err)
		d.publish(Event{Kind: EventFailed, Match: m, Err: err})
		return err
	}
	d.publish(Event{Kind: EventMatched, Match: m})
	return nil
}

// DispatchAll dispatches every match in order and joins the errors.
// It stops early if ctx is done.
func (d *Dispatcher) DispatchAll(ctx context.Context, matches []intent.ExtractedSlots) error {
	var errs []error
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := d.Dispatch(ctx, m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// publish delivers e synchronously to a snapshot of subscribers.
func (d *Dispatcher) publish(e Event) {
	d.mu.RLock()
	snapshot := make([]func(Event), 0, len(d.subs))
	for _, fn := range d.subs {
		snapshot = append(snapshot, fn)
	}
	d.mu.RUnlock()

	for _, fn := range snapshot {
		fn(e)
	}
}
