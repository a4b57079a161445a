package signal

import (
	"testing"

	"github.com/npillmayer/geoscene/scene"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// camera stands in for a renderer attached to a layer.
type camera struct {
	layer    *scene.Object[string]
	updates  int
	parallel bool
}

func attachCamera(t *testing.T, layer *scene.Object[string]) *camera {
	cam := &camera{layer: layer}
	OnView(layer, func(*scene.Event[string]) error {
		cam.updates++
		return nil
	})
	layer.On(ParallelProjection, Mirror(layer, func(evt *scene.Event[string]) error {
		d, err := ParallelProjectionOf(evt)
		if err != nil {
			return err
		}
		cam.parallel = d.Enabled
		cam.updates++
		return nil
	}))
	return cam
}

func TestViewSignalsReachAllRenderers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoscene.scene")
	defer teardown()
	//
	m := scene.NewObject("map")
	l1, l2 := scene.NewObject("osm"), scene.NewObject("features")
	require.NoError(t, m.AddChild(l1))
	require.NoError(t, m.AddChild(l2))
	cam1, cam2 := attachCamera(t, l1), attachCamera(t, l2)
	for _, name := range []string{Pan, Zoom, Rotate} {
		require.NoError(t, l2.Trigger(name, nil, false))
	}
	assert.Equal(t, 3, cam1.updates)
	assert.Equal(t, 3, cam2.updates)
}

func TestParallelProjectionIsNotMirroredToOrigin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoscene.scene")
	defer teardown()
	//
	m := scene.NewObject("map")
	l1, l2 := scene.NewObject("osm"), scene.NewObject("features")
	require.NoError(t, m.AddChild(l1))
	require.NoError(t, m.AddChild(l2))
	cam1, cam2 := attachCamera(t, l1), attachCamera(t, l2)
	//
	require.NoError(t, SetParallelProjection(l1, true))
	assert.Equal(t, 0, cam1.updates, "originating renderer must ignore its own toggle")
	assert.False(t, cam1.parallel)
	assert.Equal(t, 1, cam2.updates)
	assert.True(t, cam2.parallel)
	//
	require.NoError(t, SetParallelProjection(m, false))
	assert.Equal(t, 1, cam1.updates)
	assert.Equal(t, 2, cam2.updates)
	assert.False(t, cam2.parallel)
}

func TestParallelProjectionOf(t *testing.T) {
	evt := &scene.Event[string]{Name: ParallelProjection, Data: &ParallelProjectionData{Enabled: true}}
	d, err := ParallelProjectionOf(evt)
	require.NoError(t, err)
	assert.True(t, d.Enabled)
	evt.Data = "yes"
	_, err = ParallelProjectionOf(evt)
	assert.Error(t, err)
}

func TestViewSignalPayloads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoscene.signal")
	defer teardown()
	//
	m := scene.NewObject("map")
	layer := scene.NewObject("features")
	require.NoError(t, m.AddChild(layer))
	var pan PanData
	var zoom ZoomData
	var rot RotateData
	OnView(layer, func(evt *scene.Event[string]) (err error) {
		switch evt.Name {
		case Pan:
			pan, err = PanOf(evt)
		case Zoom:
			zoom, err = ZoomOf(evt)
		case Rotate:
			rot, err = RotateOf(evt)
		}
		return err
	})
	require.NoError(t, m.Trigger(Pan, PanData{ScreenDeltaX: 10, ScreenDeltaY: -4}, false))
	require.NoError(t, layer.Trigger(Zoom, &ZoomData{Zoom: 3}, false))
	require.NoError(t, m.Trigger(Rotate, RotateData{Rotation: 0.5}, true))
	assert.Equal(t, PanData{ScreenDeltaX: 10, ScreenDeltaY: -4}, pan)
	assert.Equal(t, ZoomData{Zoom: 3}, zoom)
	assert.Equal(t, RotateData{Rotation: 0.5}, rot)
	//
	err := m.Trigger(Zoom, PanData{}, false)
	assert.Error(t, err, "a zoom signal with a pan payload must be rejected by the handler")
	var nilZoom *ZoomData
	_, err = ZoomOf(&scene.Event[string]{Name: Zoom, Data: nilZoom})
	assert.Error(t, err)
}
