/*
Package scene implements a tree of scene objects with tree-wide signals.

Every visual element of a map (the map itself, its layers, the features of a
layer) is composed of scene objects. A scene object owns an ordered list of
children and knows its parent. Apart from the tree structure, scene objects
carry a table of signal handlers. Triggering a signal on any object of a tree
will notify the whole tree, starting at the topmost ancestor and descending
depth-first:

	root := scene.NewObject("map")
	layer := scene.NewObject("layer")
	root.AddChild(layer)
	root.On("zoom", func(evt *scene.Event[string]) error {
	    fmt.Printf("zoom triggered by %s\n", evt.TriggeredBy.Payload)
	    return nil
	})
	layer.Trigger("zoom", nil, false) // root will be notified

Handlers may stop a signal from travelling further by setting
evt.StopPropagation. Triggering with childrenOnly=true restricts a signal to
the triggering object and its descendants.

Dispatching is synchronous. Handlers are free to modify the tree, register or
remove handlers and trigger other signals; the traversal always works on
snapshots of the children lists taken when descending into an object.
Trees are meant to be operated from a single goroutine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'geoscene.scene'.
func tracer() tracing.Trace {
	return tracing.Select("geoscene.scene")
}
