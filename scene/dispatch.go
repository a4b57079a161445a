package scene

import (
	"fmt"
)

// Trigger sends signal name to a tree of objects and returns after all
// handlers involved have run.
//
// If childrenOnly is false, the signal is delivered to the whole tree obj
// belongs to: dispatch starts at the topmost ancestor of obj. Otherwise
// dispatch starts at obj itself, leaving ancestors and their other
// descendants alone.
//
// Objects are visited depth-first, parents before children, children in
// order. For every object, all of its handlers for name are called before
// descending further. If a handler sets StopPropagation, no more objects will
// be visited. The list of children of an object is copied when dispatch
// descends into it; tree modifications by handlers therefore do not affect
// the objects visited below an object whose handlers already ran.
//
// If a handler returns an error, dispatch is aborted and Trigger returns the
// error, wrapped with the signal name and the object in question.
func (obj *Object[T]) Trigger(name string, data any, childrenOnly bool) error {
	evt := &Event[T]{
		Name:        name,
		Data:        data,
		TriggeredBy: obj,
	}
	root := obj
	if !childrenOnly {
		root = obj.Root()
	}
	tracer().Debugf("scene: trigger %q at %v, dispatch from %v", name, obj, root)
	_, err := dispatch(root, evt)
	return err
}

// Broadcast sends signal name to the whole tree obj belongs to.
// It is a shortcut for Trigger(name, data, false).
func (obj *Object[T]) Broadcast(name string, data any) error {
	return obj.Trigger(name, data, false)
}

// Notify sends signal name to obj and its descendants.
// It is a shortcut for Trigger(name, data, true).
func (obj *Object[T]) Notify(name string, data any) error {
	return obj.Trigger(name, data, true)
}

// dispatch delivers evt to node and, pre-order, to the descendants of node.
// It returns false if the dispatch has to end, either because a handler
// asked to stop propagation or because a handler failed.
func dispatch[T any](node *Object[T], evt *Event[T]) (bool, error) {
	evt.Current = node
	for _, sub := range node.handlers.snapshot(evt.Name) {
		if err := sub.handler(evt); err != nil {
			tracer().Errorf("scene: handler for %q at %v failed: %v", evt.Name, node, err)
			return false, fmt.Errorf("signal %q at %v: %w", evt.Name, node, err)
		}
	}
	if evt.StopPropagation {
		tracer().Debugf("scene: propagation of %q stopped at %v", evt.Name, node)
		return false, nil
	}
	for _, ch := range node.Children() {
		if ok, err := dispatch(ch, evt); !ok {
			return false, err
		}
	}
	return true, nil
}
