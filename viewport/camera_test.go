package viewport

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const camEps = 1e-9

func TestCamera_Defaults(t *testing.T) {
	c := NewCamera()

	if c.Yaw != defaultYaw || c.Pitch != defaultPitch || c.Radius != defaultRadius {
		t.Fatalf("unexpected pose: yaw=%v pitch=%v radius=%v", c.Yaw, c.Pitch, c.Radius)
	}
	if got := c.Position().Sub(c.Target).Len(); math.Abs(got-defaultRadius) > camEps {
		t.Errorf("eye distance = %v, want %v", got, defaultRadius)
	}
}

func TestCamera_Position(t *testing.T) {
	tests := []struct {
		name   string
		yaw    float64
		pitch  float64
		radius float64
		want   mgl64.Vec3
	}{
		{
			name:   "along x",
			yaw:    0,
			radius: 5,
			want:   mgl64.Vec3{5, 0, 0},
		},
		{
			name:   "along y",
			yaw:    math.Pi / 2,
			radius: 5,
			want:   mgl64.Vec3{0, 5, 0},
		},
		{
			name:   "elevated",
			yaw:    0,
			pitch:  math.Pi / 4,
			radius: 2,
			want:   mgl64.Vec3{math.Sqrt2, 0, math.Sqrt2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera()
			c.Yaw, c.Pitch, c.Radius = tt.yaw, tt.pitch, tt.radius

			got := c.Position()
			if got.Sub(tt.want).Len() > camEps {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCamera_PositionFollowsTarget(t *testing.T) {
	c := NewCamera()
	c.Yaw, c.Pitch, c.Radius = 0, 0, 3
	c.Target = mgl64.Vec3{1, 2, 3}

	got := c.Position()
	want := mgl64.Vec3{4, 2, 3}
	if got.Sub(want).Len() > camEps {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestCamera_ViewLooksAtTarget(t *testing.T) {
	c := NewCamera()

	// The target must sit on the view axis, one radius in front of the
	// eye (camera space looks down -z).
	v := c.View().Mul4x1(mgl64.Vec4{c.Target[0], c.Target[1], c.Target[2], 1})
	if math.Abs(v.X()) > 1e-9 || math.Abs(v.Y()) > 1e-9 {
		t.Errorf("target off the view axis: %v", v)
	}
	if math.Abs(v.Z()+c.Radius) > 1e-9 {
		t.Errorf("target depth = %v, want %v", v.Z(), -c.Radius)
	}
}

func TestCamera_OrbitClampsPitch(t *testing.T) {
	c := NewCamera()

	c.Orbit(0, 10)
	if c.Pitch != maxPitch {
		t.Errorf("pitch after large positive orbit = %v, want %v", c.Pitch, maxPitch)
	}

	c.Orbit(0, -20)
	if c.Pitch != -maxPitch {
		t.Errorf("pitch after large negative orbit = %v, want %v", c.Pitch, -maxPitch)
	}

	c.Orbit(0.25, 0)
	if math.Abs(c.Yaw-(defaultYaw+0.25)) > camEps {
		t.Errorf("yaw = %v, want %v", c.Yaw, defaultYaw+0.25)
	}
}

func TestCamera_ZoomClampsRadius(t *testing.T) {
	c := NewCamera()

	c.Zoom(-100)
	if c.Radius != minRadius {
		t.Errorf("radius after large zoom in = %v, want %v", c.Radius, minRadius)
	}

	c.Zoom(100)
	if c.Radius != maxRadius {
		t.Errorf("radius after large zoom out = %v, want %v", c.Radius, maxRadius)
	}

	c.Zoom(-1)
	if c.Radius != maxRadius-1 {
		t.Errorf("radius = %v, want %v", c.Radius, maxRadius-1)
	}
}

func TestCamera_Reset(t *testing.T) {
	c := NewCamera()
	c.Orbit(1, 0.2)
	c.Zoom(5)
	c.Target = mgl64.Vec3{1, 2, 3}

	c.Reset()

	if c.Yaw != defaultYaw || c.Pitch != defaultPitch || c.Radius != defaultRadius {
		t.Errorf("pose not restored: yaw=%v pitch=%v radius=%v", c.Yaw, c.Pitch, c.Radius)
	}
	if c.Target != (mgl64.Vec3{}) {
		t.Errorf("target = %v, want origin", c.Target)
	}
}

func TestCamera_ProjectionAspectGuard(t *testing.T) {
	c := NewCamera()

	got := c.Projection(0)
	want := c.Projection(1)
	if got != want {
		t.Error("non-positive aspect should fall back to square")
	}
}
