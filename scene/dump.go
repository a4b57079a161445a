package scene

import (
	tp "github.com/xlab/treeprint"
)

// Dump renders the tree below obj as indented text, one line per object.
// label formats a single object; if label is nil, the object's String method
// is used. Objects with registered handlers carry the number of handlers as
// meta information.
func Dump[T any](obj *Object[T], label func(*Object[T]) string) string {
	if obj == nil {
		return ""
	}
	if label == nil {
		label = (*Object[T]).String
	}
	p := tp.New()
	dumpObject(p, obj, label)
	return p.String()
}

func dumpObject[T any](p tp.Tree, obj *Object[T], label func(*Object[T]) string) {
	n := obj.handlers.total()
	if obj.ChildCount() == 0 {
		if n > 0 {
			p.AddMetaNode(n, label(obj))
		} else {
			p.AddNode(label(obj))
		}
		return
	}
	var branch tp.Tree
	if n > 0 {
		branch = p.AddMetaBranch(n, label(obj))
	} else {
		branch = p.AddBranch(label(obj))
	}
	for _, ch := range obj.Children() {
		dumpObject(branch, ch, label)
	}
}
