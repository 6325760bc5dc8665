package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func project(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

func TestScreenProjectionMapsPixelsToClip(t *testing.T) {
	m := ScreenProjection(800, 600)

	x, y := project(m, 0, 0)
	require.InDelta(t, -1, x, 1e-6)
	require.InDelta(t, 1, y, 1e-6) // top-left of screen is top-left of clip

	x, y = project(m, 800, 600)
	require.InDelta(t, 1, x, 1e-6)
	require.InDelta(t, -1, y, 1e-6)

	x, y = project(m, 400, 300)
	require.InDelta(t, 0, x, 1e-6)
	require.InDelta(t, 0, y, 1e-6)
}

func TestOrthoCameraCentersWorldOrigin(t *testing.T) {
	c := NewOrtho2D(800, 600)
	m := c.VP()

	x, y := project(m, 0, 0)
	require.InDelta(t, 0, x, 1e-6)
	require.InDelta(t, 0, y, 1e-6)

	x, y = project(m, 400, 0)
	require.InDelta(t, 1, x, 1e-6)
	require.InDelta(t, 0, y, 1e-6)
}

func TestOrthoCameraMoveShiftsView(t *testing.T) {
	c := NewOrtho2D(800, 600)
	c.Move(400, 0)
	m := c.VP()

	x, _ := project(m, 400, 0)
	require.InDelta(t, 0, x, 1e-6)
}

func TestZoomClampsToMinimum(t *testing.T) {
	c := NewOrtho2D(800, 600)
	c.SetZoom(0)
	require.Equal(t, float32(0.05), c.Zoom)
}
