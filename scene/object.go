package scene

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidHierarchy is returned if adding a child would make an object its
// own ancestor.
var ErrInvalidHierarchy = errors.New("invalid scene hierarchy")

/*
We manage a tree of mutable objects. Each object carries a payload of type parameter T.
Objects maintain a slice of children and a back-link to their parent. Only the
children slice expresses ownership; the parent link is a plain reference.

Locks are held for single operations on a children slice or a handler table, never
while user code runs. This keeps signal handlers free to modify the tree.
*/

// Object is the base type a scene is built of.
type Object[T any] struct {
	parent   *Object[T]       // parent object of this object
	children childrenSlice[T] // mutex-protected slice of children objects
	handlers handlerTable[T]  // signal handlers, by signal name
	Payload  T                // objects may carry a payload of arbitrary type
}

// NewObject creates a new, detached scene object with a given payload.
func NewObject[T any](payload T) *Object[T] {
	return &Object[T]{Payload: payload}
}

func (obj *Object[T]) String() string {
	return fmt.Sprintf("(Object #ch=%d %v)", obj.ChildCount(), obj.Payload)
}

// AddChild appends ch to the children of obj and makes obj the parent of ch.
// If ch currently belongs to another parent, it is detached from there first.
//
// AddChild fails with ErrInvalidHierarchy if ch is obj or an ancestor of obj.
// In this case the tree is left untouched. Adding a nil child is a no-op.
func (obj *Object[T]) AddChild(ch *Object[T]) error {
	return obj.InsertChildAt(-1, ch)
}

// InsertChildAt inserts ch into the children of obj at position i, shifting
// children at later positions. Positions refer to the children list after ch
// has been detached from its former parent. If i is negative or beyond the
// end of the list, ch is appended.
//
// Re-parenting and cycle-checking behave as for AddChild.
func (obj *Object[T]) InsertChildAt(i int, ch *Object[T]) error {
	if ch == nil {
		return nil
	}
	if ch == obj || ch.IsAncestorOf(obj) {
		tracer().Errorf("scene: refusing to make %v a child of %v", ch, obj)
		return fmt.Errorf("%w: %v cannot be a child of %v", ErrInvalidHierarchy, ch, obj)
	}
	ch.Isolate()
	obj.children.insertChildAt(i, ch)
	ch.parent = obj
	tracer().Debugf("scene: added child %v to %v", ch, obj)
	return nil
}

// RemoveChild detaches ch from obj. The order of the remaining children is
// preserved. ch keeps its own children.
// If ch is not a child of obj, RemoveChild does nothing.
func (obj *Object[T]) RemoveChild(ch *Object[T]) {
	if ch == nil || ch.parent != obj {
		return
	}
	if obj.children.remove(ch) {
		ch.parent = nil
		tracer().Debugf("scene: removed child %v from %v", ch, obj)
	}
}

// Isolate removes an object from its parent.
// Isolate returns the isolated object.
func (obj *Object[T]) Isolate() *Object[T] {
	if obj != nil && obj.parent != nil {
		obj.parent.RemoveChild(obj)
	}
	return obj
}

// Parent returns the parent object or nil (for the root of a tree).
func (obj *Object[T]) Parent() *Object[T] {
	return obj.parent
}

// ChildCount returns the number of children of an object.
func (obj *Object[T]) ChildCount() int {
	return obj.children.length()
}

// Child returns the child at position n, if any.
func (obj *Object[T]) Child(n int) (*Object[T], bool) {
	ch := obj.children.child(n)
	return ch, ch != nil
}

// Children returns a copy of the current list of children. Clients may freely
// modify the tree while iterating over the returned slice.
func (obj *Object[T]) Children() []*Object[T] {
	return obj.children.asSlice()
}

// IndexOfChild returns the position of ch within the children of obj,
// or -1 if ch is not a child of obj.
func (obj *Object[T]) IndexOfChild(ch *Object[T]) int {
	return obj.children.indexOf(ch)
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice[T any] struct {
	sync.RWMutex
	slice []*Object[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice[T]) insertChildAt(i int, child *Object[T]) {
	chs.Lock()
	defer chs.Unlock()
	if i < 0 || i >= len(chs.slice) {
		chs.slice = append(chs.slice, child)
		return
	}
	chs.slice = append(chs.slice, nil)   // make room for one child
	copy(chs.slice[i+1:], chs.slice[i:]) // shift i+1..n
	chs.slice[i] = child
}

func (chs *childrenSlice[T]) remove(child *Object[T]) bool {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == child {
			copy(chs.slice[i:], chs.slice[i+1:])
			chs.slice[len(chs.slice)-1] = nil
			chs.slice = chs.slice[:len(chs.slice)-1]
			return true
		}
	}
	return false
}

func (chs *childrenSlice[T]) child(n int) *Object[T] {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) indexOf(child *Object[T]) int {
	chs.RLock()
	defer chs.RUnlock()
	for i, ch := range chs.slice {
		if ch == child {
			return i
		}
	}
	return -1
}

func (chs *childrenSlice[T]) asSlice() []*Object[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Object[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
