package thicket

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.BoundsEnabled {
		t.Error("BoundsEnabled = true, want false")
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	assertVec(t, "origin", cam.WorldToScreen(Vector2fZero), Vector2f{X: 400, Y: 300})

	cam.Position = Vector2f{X: 100, Y: 50}
	assertVec(t, "camera position", cam.WorldToScreen(Vector2f{X: 100, Y: 50}), Vector2f{X: 400, Y: 300})

	cam.Zoom = 2
	assertVec(t, "zoomed", cam.WorldToScreen(Vector2f{X: 101, Y: 50}), Vector2f{X: 402, Y: 300})
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{X: 10, Y: 20, Width: 640, Height: 480})
	cam.Position = Vector2f{X: -35, Y: 12}
	cam.Zoom = 1.5

	for _, p := range []Vector2f{{0, 0}, {-100, 40}, {333, -7}} {
		back := cam.ScreenToWorld(cam.WorldToScreen(p))
		assertVec(t, "round trip", back, p)
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Position = Vector2f{X: 400, Y: 300}
	cam.Zoom = 2

	got := cam.VisibleBounds()
	want := Rect{X: 200, Y: 150, Width: 400, Height: 300}
	if got != want {
		t.Errorf("VisibleBounds = %v, want %v", got, want)
	}
}

func TestCameraFollow(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	e := NewWorld().NewEntity("target")
	e.SetWorldPosition(Vector2f{X: 100, Y: 0})

	cam.Follow(e, Vector2f{X: 0, Y: 10}, 0.5)
	cam.Update(1.0 / 60)
	assertVec(t, "half lerp", cam.Position, Vector2f{X: 50, Y: 5})

	cam.Unfollow()
	e.SetWorldPosition(Vector2f{X: 1000, Y: 1000})
	cam.Update(1.0 / 60)
	assertVec(t, "unfollowed", cam.Position, Vector2f{X: 50, Y: 5})
}

func TestCameraFollowDisposedTarget(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	e := NewWorld().NewEntity("target")
	e.SetWorldPosition(Vector2f{X: 100, Y: 0})
	cam.Follow(e, Vector2f{}, 1)
	e.Dispose()

	cam.Update(1)
	assertVec(t, "position", cam.Position, Vector2fZero)
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	cam.ScrollTo(Vector2f{X: 200, Y: -100}, 1, ease.Linear)

	cam.Update(0.5)
	assertVecApprox(t, "halfway", cam.Position, Vector2f{X: 100, Y: -50})
	cam.Update(0.5)
	assertVecApprox(t, "end", cam.Position, Vector2f{X: 200, Y: -100})
	if cam.scrollTween != nil {
		t.Error("scroll tween should be cleared once finished")
	}
}

func TestCameraBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 500, Height: 80})
	cam.Position = Vector2f{X: -40, Y: 0}

	cam.Update(0)

	// The 100-wide view fits on x and is pushed in; the 80-high bounds are
	// smaller than the view, so y centers on them.
	assertVec(t, "clamped", cam.Position, Vector2f{X: 50, Y: 40})

	cam.ClearBounds()
	cam.Position = Vector2f{X: -40, Y: 0}
	cam.Update(0)
	assertVec(t, "unclamped", cam.Position, Vector2f{X: -40, Y: 0})
}
