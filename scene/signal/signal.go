/*
Package signal defines the view signals exchanged between scene objects and
renderers.

Renderers attach to the scene object of their layer and update their camera
whenever the view is panned, zoomed or rotated anywhere in the tree. Toggling
parallel projection is mirrored between renderers; a renderer must not react to
a toggle it announced itself, otherwise two renderers would keep re-triggering
each other. Mirror provides this guard.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package signal

import (
	"fmt"

	"github.com/npillmayer/geoscene/scene"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'geoscene.signal'.
func tracer() tracing.Trace {
	return tracing.Select("geoscene.signal")
}

// Names of view signals.
const (
	Pan                = "pan"
	Zoom               = "zoom"
	Rotate             = "rotate"
	ParallelProjection = "parallelprojection"
)

// ViewSignals are the signals a renderer has to follow to keep its camera
// in sync with the view.
var ViewSignals = []string{Pan, Zoom, Rotate}

// PanData is the payload of Pan signals. Deltas are given in screen units.
type PanData struct {
	ScreenDeltaX float64
	ScreenDeltaY float64
}

// ZoomData is the payload of Zoom signals.
type ZoomData struct {
	Zoom float64 // new zoom level
}

// RotateData is the payload of Rotate signals.
type RotateData struct {
	Rotation float64 // new rotation, in radians
}

// ParallelProjectionData is the payload of ParallelProjection signals.
type ParallelProjectionData struct {
	Enabled bool
}

// OnView registers h for all of ViewSignals at obj.
func OnView[T any](obj *scene.Object[T], h scene.Handler[T]) []*scene.Subscription[T] {
	subs := make([]*scene.Subscription[T], 0, len(ViewSignals))
	for _, name := range ViewSignals {
		subs = append(subs, obj.On(name, h))
	}
	return subs
}

// Mirror wraps h so that it is skipped for signals triggered by self.
func Mirror[T any](self *scene.Object[T], h scene.Handler[T]) scene.Handler[T] {
	return func(evt *scene.Event[T]) error {
		if evt.TriggeredBy == self {
			tracer().Debugf("signal: %q originated at %v, not mirrored", evt.Name, self)
			return nil
		}
		return h(evt)
	}
}

// SetParallelProjection announces a parallel projection toggle to the whole
// tree of obj.
func SetParallelProjection[T any](obj *scene.Object[T], enabled bool) error {
	return obj.Trigger(ParallelProjection, ParallelProjectionData{Enabled: enabled}, false)
}

// PanOf extracts the payload of a Pan signal.
func PanOf[T any](evt *scene.Event[T]) (PanData, error) {
	return payloadOf[PanData](evt, "pan")
}

// ZoomOf extracts the payload of a Zoom signal.
func ZoomOf[T any](evt *scene.Event[T]) (ZoomData, error) {
	return payloadOf[ZoomData](evt, "zoom")
}

// RotateOf extracts the payload of a Rotate signal.
func RotateOf[T any](evt *scene.Event[T]) (RotateData, error) {
	return payloadOf[RotateData](evt, "rotation")
}

// ParallelProjectionOf extracts the payload of a ParallelProjection signal.
func ParallelProjectionOf[T any](evt *scene.Event[T]) (ParallelProjectionData, error) {
	return payloadOf[ParallelProjectionData](evt, "parallel projection")
}

// payloadOf accepts payloads of type D, either by value or by non-nil pointer.
func payloadOf[D, T any](evt *scene.Event[T], what string) (D, error) {
	switch d := evt.Data.(type) {
	case D:
		return d, nil
	case *D:
		if d != nil {
			return *d, nil
		}
	}
	var zero D
	return zero, fmt.Errorf("signal %q carries no %s data: %v", evt.Name, what, evt.Data)
}
