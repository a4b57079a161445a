package scene

// Predicate is a function type to match against objects of a tree.
type Predicate[T any] func(test *Object[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T any]() Predicate[T] {
	return func(*Object[T]) bool {
		return true
	}
}

// IsLeaf is a predicate to match objects without children.
func IsLeaf[T any]() Predicate[T] {
	return func(test *Object[T]) bool {
		return test.ChildCount() == 0
	}
}

// Root returns the topmost ancestor of obj, or obj itself if it has no parent.
func (obj *Object[T]) Root() *Object[T] {
	root := obj
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// IsAncestorOf returns true if obj is a (direct or indirect) parent of other.
// An object is not an ancestor of itself.
func (obj *Object[T]) IsAncestorOf(other *Object[T]) bool {
	if other == nil {
		return false
	}
	for anc := other.parent; anc != nil; anc = anc.parent {
		if anc == obj {
			return true
		}
	}
	return false
}

// FindAncestor returns the nearest ancestor of obj matching a predicate, or nil.
// The search does not include obj.
func (obj *Object[T]) FindAncestor(predicate Predicate[T]) *Object[T] {
	for anc := obj.parent; anc != nil; anc = anc.parent {
		if predicate(anc) {
			return anc
		}
	}
	return nil
}

// Walk traverses the tree starting at (and including) obj, parents before
// children. depth is 0 for obj. If fn returns false for an object, Walk will
// not descend into its children.
//
// Like Trigger, Walk copies the children of an object before descending.
func (obj *Object[T]) Walk(fn func(node *Object[T], depth int) bool) {
	walk(obj, 0, fn)
}

func walk[T any](node *Object[T], depth int, fn func(*Object[T], int) bool) {
	if !fn(node, depth) {
		return
	}
	for _, ch := range node.Children() {
		walk(ch, depth+1, fn)
	}
}

// DescendantsWith collects all descendants of obj matching a predicate, in
// pre-order. The search does not include obj.
func (obj *Object[T]) DescendantsWith(predicate Predicate[T]) []*Object[T] {
	var selection []*Object[T]
	obj.Walk(func(node *Object[T], depth int) bool {
		if depth > 0 && predicate(node) {
			selection = append(selection, node)
		}
		return true
	})
	return selection
}

// Size returns the number of objects in the tree below obj, including obj.
func (obj *Object[T]) Size() int {
	n := 0
	obj.Walk(func(*Object[T], int) bool {
		n++
		return true
	})
	return n
}
