package thicket

import "testing"

// addBody adds an entity with a collider and a drag-free rigid body at pos.
func addBody(s *Scene, pos, size, velocity Vector2f) (*Entity, *RigidBody) {
	e := s.NewEntity("body")
	e.AddComponent(NewCollider(Vector2f{}, size))
	body := NewRigidBody(1, 0)
	body.Velocity = velocity
	e.AddComponent(body)
	s.AddAt(e, pos)
	return e, body
}

func TestRigidBodyDefaults(t *testing.T) {
	b := NewDefaultRigidBody()
	assertNear(t, "Mass", b.Mass, DefaultMass)
	assertNear(t, "LinearDrag", b.LinearDrag, DefaultLinearDrag)
	if b.Velocity != Vector2fZero {
		t.Errorf("Velocity = %v, want zero", b.Velocity)
	}
}

func TestRigidBodyStartFindsCollider(t *testing.T) {
	s := newTestScene()
	e, body := addBody(s, Vector2f{}, box10, Vector2f{})
	if body.Collider() != e.Collider() {
		t.Error("body did not pick up the entity's collider")
	}
	s.Remove(e)
	if body.Collider() != nil {
		t.Error("Destroy should drop the collider")
	}
}

func TestRigidBodySlidesAlongWall(t *testing.T) {
	s := newTestScene()
	addBox(s, "wall", Vector2f{X: 12, Y: -100}, Vector2f{X: 10, Y: 200})
	e, body := addBody(s, Vector2f{}, box10, Vector2f{X: 5, Y: 5})

	body.Update(1)

	assertVec(t, "position", e.WorldPosition(), Vector2f{X: 0, Y: 5})
}

func TestRigidBodySlidesAlongFloor(t *testing.T) {
	s := newTestScene()
	addBox(s, "floor", Vector2f{X: -100, Y: 12}, Vector2f{X: 200, Y: 10})
	e, body := addBody(s, Vector2f{}, box10, Vector2f{X: 5, Y: 5})

	body.Update(1)

	assertVec(t, "position", e.WorldPosition(), Vector2f{X: 5, Y: 0})
}

func TestRigidBodyBlockedInCorner(t *testing.T) {
	s := newTestScene()
	addBox(s, "wall", Vector2f{X: 12, Y: -100}, Vector2f{X: 10, Y: 200})
	addBox(s, "floor", Vector2f{X: -100, Y: 12}, Vector2f{X: 200, Y: 10})
	e, body := addBody(s, Vector2f{}, box10, Vector2f{X: 5, Y: 5})

	body.Update(1)

	assertVec(t, "position", e.WorldPosition(), Vector2fZero)
	if body.Collider().Offset != Vector2fZero {
		t.Errorf("Offset = %v, probing must restore it", body.Collider().Offset)
	}
}

func TestRigidBodyTriggers(t *testing.T) {
	t.Run("trigger obstacle", func(t *testing.T) {
		s := newTestScene()
		wall := addBox(s, "pad", Vector2f{X: 12, Y: -100}, Vector2f{X: 10, Y: 200})
		wall.Collider().Trigger = true
		entered := 0
		wall.Collider().OnCollisionEnter = func(ColliderHit) { entered++ }
		e, body := addBody(s, Vector2f{}, box10, Vector2f{X: 5, Y: 5})

		body.Update(1)

		assertVec(t, "position", e.WorldPosition(), Vector2f{X: 5, Y: 5})
		if entered == 0 {
			t.Error("trigger was not notified")
		}
	})

	t.Run("trigger body", func(t *testing.T) {
		s := newTestScene()
		addBox(s, "wall", Vector2f{X: 12, Y: -100}, Vector2f{X: 10, Y: 200})
		e, body := addBody(s, Vector2f{}, box10, Vector2f{X: 5, Y: 5})
		e.Collider().Trigger = true

		body.Update(1)

		assertVec(t, "position", e.WorldPosition(), Vector2f{X: 5, Y: 5})
	})
}

func TestRigidBodyWithoutColliderMovesFreely(t *testing.T) {
	s := newTestScene()
	addBox(s, "wall", Vector2f{X: 2, Y: 2}, box10)
	e := s.NewEntity("ghost")
	body := NewRigidBody(1, 0)
	body.Velocity = Vector2f{X: 3, Y: 4}
	e.AddComponent(body)
	s.Add(e)

	body.Update(2)

	assertVec(t, "position", e.WorldPosition(), Vector2f{X: 6, Y: 8})
}

func TestRigidBodyDrag(t *testing.T) {
	tests := []struct {
		name     string
		drag     float64
		velocity Vector2f
		pos      Vector2f
	}{
		{"none", 0, Vector2f{X: 10}, Vector2f{X: 10}},
		{"half", 0.5, Vector2f{X: 5}, Vector2f{X: 5}},
		{"full", 1, Vector2fZero, Vector2fZero},
		{"above one", 3, Vector2fZero, Vector2fZero},
		{"negative", -1, Vector2f{X: 10}, Vector2f{X: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewWorld().NewEntity("e")
			body := NewRigidBody(1, tt.drag)
			body.Velocity = Vector2f{X: 10}
			e.AddComponent(body)

			body.Update(1)

			assertVec(t, "Velocity", body.Velocity, tt.velocity)
			assertVec(t, "position", e.WorldPosition(), tt.pos)
		})
	}
}

func TestApplyForce(t *testing.T) {
	tests := []struct {
		name  string
		mass  float64
		force Vector2f
		want  Vector2f
	}{
		{"axis aligned", 2, Vector2f{X: 10}, Vector2f{X: 5}},
		{"diagonal weakened", 2, Vector2f{X: 3, Y: 4}, Vector2f{X: 0.9, Y: 1.6}},
		{"negative axis", 1, Vector2f{Y: -6}, Vector2f{Y: -6}},
		{"zero", 1, Vector2fZero, Vector2fZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := NewRigidBody(tt.mass, 0)
			body.ApplyForce(tt.force)
			assertVec(t, "Velocity", body.Velocity, tt.want)
		})
	}
}

func TestApplyForceAccumulates(t *testing.T) {
	body := NewRigidBody(1, 0)
	body.ApplyForce(Vector2f{X: 2})
	body.ApplyForce(Vector2f{Y: 3})
	assertVec(t, "Velocity", body.Velocity, Vector2f{X: 2, Y: 3})
}

func TestRigidBodyStopsAtWallOverTicks(t *testing.T) {
	s := newTestScene()
	addBox(s, "wall", Vector2f{X: 22, Y: -50}, Vector2f{X: 10, Y: 100})
	e, _ := addBody(s, Vector2f{}, box10, Vector2f{X: 5})

	for i := 0; i < 6; i++ {
		s.Update(1)
	}

	assertVec(t, "position", e.WorldPosition(), Vector2f{X: 10})
}

func TestMovePositionZeroStep(t *testing.T) {
	s := newTestScene()
	e, body := addBody(s, Vector2f{X: 4, Y: 4}, box10, Vector2f{})
	called := false
	e.Collider().OnCollisionEnter = func(ColliderHit) { called = true }
	addBox(s, "overlapping", Vector2f{X: 4, Y: 4}, box10)

	body.MovePosition(Vector2f{X: 4, Y: 4})

	if called {
		t.Error("zero step should not probe")
	}
}

func TestRigidBodyRemovedByCollisionCallback(t *testing.T) {
	s := newTestScene()
	wall := addBox(s, "wall", Vector2f{X: 12, Y: 0}, box10)
	e, body := addBody(s, Vector2f{}, box10, Vector2f{X: 10, Y: 10})
	wall.Collider().OnCollisionEnter = func(ColliderHit) { s.Remove(e) }

	body.Update(1)

	if e.Scene() != nil {
		t.Error("body should have left the scene")
	}
	if body.Collider() != nil {
		t.Error("Collider() should be nil after removal")
	}
	assertVec(t, "position", e.WorldPosition(), Vector2fZero)
}
