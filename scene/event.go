package scene

import (
	"sync"
)

// Event is the envelope handed to signal handlers. A single Event is created
// per call to Trigger and shared by all handlers of that dispatch.
type Event[T any] struct {
	Name            string     // name of the signal
	Data            any        // payload provided by the caller of Trigger
	StopPropagation bool       // set by handlers to end the dispatch
	TriggeredBy     *Object[T] // the object Trigger has been called on
	Current         *Object[T] // the object whose handlers are being called
}

// Handler is a function type to react to signals.
//
// A handler returning an error aborts the dispatch it has been called from;
// the error is reported to the caller of Trigger.
type Handler[T any] func(evt *Event[T]) error

// Subscription identifies a single registration of a handler for a signal.
// Function values are not comparable in Go, therefore clients hold on to
// the subscription if they want to remove the handler later on.
type Subscription[T any] struct {
	target  *Object[T]
	name    string
	handler Handler[T]
}

// Cancel removes the handler registration from its object.
// Cancelling a subscription more than once is a no-op.
func (sub *Subscription[T]) Cancel() {
	if sub != nil && sub.target != nil {
		sub.target.Off(sub.name, sub)
	}
}

// Name returns the signal name the subscription is registered for.
func (sub *Subscription[T]) Name() string {
	return sub.name
}

// On registers a handler for signal name. Handlers are called in the order
// of registration. Registering the same handler more than once will result in
// the handler being called once per registration.
//
// A nil handler is ignored and On returns nil.
func (obj *Object[T]) On(name string, h Handler[T]) *Subscription[T] {
	if h == nil {
		return nil
	}
	sub := &Subscription[T]{target: obj, name: name, handler: h}
	obj.handlers.add(sub)
	tracer().Debugf("scene: %v listens to %q", obj, name)
	return sub
}

// Off removes the registration sub for signal name. If sub is nil, all handlers
// for name are removed. Removing a subscription which is not registered with
// obj for name does nothing.
//
// Handlers removed while a dispatch is visiting obj will still be called
// during that visit.
func (obj *Object[T]) Off(name string, sub *Subscription[T]) {
	if sub == nil {
		n := obj.handlers.clear(name)
		tracer().Debugf("scene: %v dropped %d handlers for %q", obj, n, name)
		return
	}
	if sub.target != obj || sub.name != name {
		return
	}
	obj.handlers.remove(sub)
}

// OffAll removes every handler from obj, for all signal names.
func (obj *Object[T]) OffAll() {
	obj.handlers.clearAll()
}

// IsOn returns true if at least one handler is registered for signal name.
func (obj *Object[T]) IsOn(name string) bool {
	return obj.handlers.count(name) > 0
}

// HandlerCount returns the number of registrations for signal name.
func (obj *Object[T]) HandlerCount(name string) int {
	return obj.handlers.count(name)
}

// --- Handler tables -----------------------------------------------------

// handlerTable maps signal names to lists of subscriptions. Lists are never
// modified in place, so a list obtained by snapshot stays valid while
// handlers add or remove registrations.
type handlerTable[T any] struct {
	sync.Mutex
	subs map[string][]*Subscription[T]
}

func (ht *handlerTable[T]) add(sub *Subscription[T]) {
	ht.Lock()
	defer ht.Unlock()
	if ht.subs == nil {
		ht.subs = make(map[string][]*Subscription[T])
	}
	list := ht.subs[sub.name]
	ht.subs[sub.name] = append(list[:len(list):len(list)], sub)
}

func (ht *handlerTable[T]) remove(sub *Subscription[T]) {
	ht.Lock()
	defer ht.Unlock()
	list := ht.subs[sub.name]
	for i, s := range list {
		if s == sub {
			if len(list) == 1 {
				delete(ht.subs, sub.name)
				return
			}
			ht.subs[sub.name] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

func (ht *handlerTable[T]) clear(name string) int {
	ht.Lock()
	defer ht.Unlock()
	n := len(ht.subs[name])
	delete(ht.subs, name)
	return n
}

func (ht *handlerTable[T]) clearAll() {
	ht.Lock()
	defer ht.Unlock()
	ht.subs = nil
}

func (ht *handlerTable[T]) count(name string) int {
	ht.Lock()
	defer ht.Unlock()
	return len(ht.subs[name])
}

func (ht *handlerTable[T]) total() int {
	ht.Lock()
	defer ht.Unlock()
	n := 0
	for _, list := range ht.subs {
		n += len(list)
	}
	return n
}

func (ht *handlerTable[T]) snapshot(name string) []*Subscription[T] {
	ht.Lock()
	defer ht.Unlock()
	return ht.subs[name]
}
