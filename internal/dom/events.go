package dom

// Event is a DOM event delivered to an element's listeners
type Event struct {
	Type       string
	Source     *Element
	FromClient bool // false when synthesized on the server
}

// Registration removes a previously added listener or task
type Registration interface {
	Remove()
}

// RegistrationFunc adapts a function to Registration. Remove runs it at most once.
type RegistrationFunc func()

// Remove calls the function
func (f RegistrationFunc) Remove() { f() }

func once(fn func()) RegistrationFunc {
	done := false
	return func() {
		if done {
			return
		}
		done = true
		fn()
	}
}

type listener struct {
	fn func(Event)
}

type lifecycleListener struct {
	fn func(*Document)
}

// AddEventListener registers fn for events of the given type
func (e *Element) AddEventListener(eventType string, fn func(Event)) Registration {
	l := &listener{fn: fn}
	e.listeners[eventType] = append(e.listeners[eventType], l)
	return once(func() {
		list := e.listeners[eventType]
		for i, candidate := range list {
			if candidate == l {
				e.listeners[eventType] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(e.listeners[eventType]) == 0 {
			delete(e.listeners, eventType)
		}
	})
}

// HasListener reports whether any listener is registered for eventType
func (e *Element) HasListener(eventType string) bool {
	return len(e.listeners[eventType]) > 0
}

// DispatchEvent delivers ev to this element's listeners in registration order.
// Source defaults to the element itself.
func (e *Element) DispatchEvent(ev Event) {
	if ev.Source == nil {
		ev.Source = e
	}
	list := make([]*listener, len(e.listeners[ev.Type]))
	copy(list, e.listeners[ev.Type])
	for _, l := range list {
		l.fn(ev)
	}
}

// AddAttachListener registers fn to run whenever the element is attached to a document
func (e *Element) AddAttachListener(fn func(*Document)) Registration {
	l := &lifecycleListener{fn: fn}
	e.attachListeners = append(e.attachListeners, l)
	return once(func() { e.attachListeners = removeLifecycle(e.attachListeners, l) })
}

// AddDetachListener registers fn to run whenever the element is detached from a document
func (e *Element) AddDetachListener(fn func(*Document)) Registration {
	l := &lifecycleListener{fn: fn}
	e.detachListeners = append(e.detachListeners, l)
	return once(func() { e.detachListeners = removeLifecycle(e.detachListeners, l) })
}

func removeLifecycle(list []*lifecycleListener, l *lifecycleListener) []*lifecycleListener {
	for i, candidate := range list {
		if candidate == l {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func snapshotLifecycle(list []*lifecycleListener) []*lifecycleListener {
	out := make([]*lifecycleListener, len(list))
	copy(out, list)
	return out
}
