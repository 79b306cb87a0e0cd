// Package events is the toolbar's name-keyed publish/subscribe bus.
package events

// Event names emitted by the toolbar.
const (
	ToolClick         = "tool:click"
	ToolActivate      = "tool:activate"
	ThemeChange       = "theme:change"
	ThemeSystemChange = "theme:system-change"
	SizeChange        = "size:change"
	DisplayModeChange = "displayMode:change"
	OrientationChange = "orientation:change"
	PositionChange    = "position:change"
	ToolSetChange     = "toolset:change"
	ToolbarCollapse   = "toolbar:collapse"
	ToolbarShow       = "toolbar:show"
	ToolbarHide       = "toolbar:hide"
	PageChange        = "page:change"
)

// Event is delivered to handlers.
type Event struct {
	Name    string
	Payload any
}

// Handler receives events. Handlers run synchronously on the emitting goroutine.
type Handler func(Event)

// Subscription identifies one On registration; pass it to Off to detach.
type Subscription struct {
	name string
	id   uint64
}

// Name returns the event name the subscription listens to.
func (s Subscription) Name() string { return s.name }

// Valid reports whether the subscription came from On.
func (s Subscription) Valid() bool { return s.id != 0 }

type entry struct {
	id uint64
	fn Handler
}

// Bus is not safe for concurrent use; the toolbar is single-threaded.
type Bus struct {
	handlers map[string][]entry
	nextID   uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]entry)}
}

// On registers fn for events named name.
func (b *Bus) On(name string, fn Handler) Subscription {
	if fn == nil {
		return Subscription{}
	}
	b.nextID++
	b.handlers[name] = append(b.handlers[name], entry{id: b.nextID, fn: fn})
	return Subscription{name: name, id: b.nextID}
}

// Off removes a subscription. Unknown or zero subscriptions are ignored.
func (b *Bus) Off(sub Subscription) {
	list, ok := b.handlers[sub.name]
	if !ok || sub.id == 0 {
		return
	}
	for i, e := range list {
		if e.id == sub.id {
			// copy so an in-flight Emit keeps iterating its own snapshot
			next := make([]entry, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if len(next) == 0 {
				delete(b.handlers, sub.name)
			} else {
				b.handlers[sub.name] = next
			}
			return
		}
	}
}

// Emit calls every handler registered for name in subscription order.
func (b *Bus) Emit(name string, payload any) {
	list := b.handlers[name]
	if len(list) == 0 {
		return
	}
	ev := Event{Name: name, Payload: payload}
	for _, e := range list {
		e.fn(ev)
	}
}

// Count returns the number of handlers for name.
func (b *Bus) Count(name string) int {
	return len(b.handlers[name])
}

// Clear removes every handler.
func (b *Bus) Clear() {
	b.handlers = make(map[string][]entry)
}
