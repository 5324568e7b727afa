// Package thicket is the spatial-simulation core of a 2D scene engine for
// [Ebitengine].
//
// Thicket keeps a hierarchy of positioned entities, indexes their collider
// rectangles for fast region queries, detects axis-aligned overlaps, and moves
// rigid bodies against obstacles one axis at a time so they slide along walls.
// It draws nothing except an optional debug overlay.
//
// # Quick start
//
// Create a [Scene], give entities components, and call [Scene.Update] from
// your game loop:
//
//	scene := thicket.NewScene("level", thicket.DefaultConfig())
//
//	wall := scene.NewEntity("wall")
//	wall.AddComponent(thicket.NewCollider(thicket.Vector2f{}, thicket.Vector2f{X: 32, Y: 256}))
//	scene.AddAt(wall, thicket.Vector2f{X: 300, Y: 0})
//
//	hero := scene.NewEntity("hero")
//	hero.AddComponent(thicket.NewCollider(thicket.Vector2f{}, thicket.Vector2f{X: 16, Y: 16}))
//	body := thicket.NewDefaultRigidBody()
//	hero.AddComponent(body)
//	scene.AddAt(hero, thicket.Vector2f{X: 100, Y: 100})
//
//	func (g *Game) Update() error {
//		g.body.ApplyForce(thicket.Vector2f{X: 50})
//		g.scene.Update(1.0 / 60)
//		return nil
//	}
//
// # Entities
//
// Entities live in a [World] arena and refer to their parent and children by
// [EntityID] handle. A disposed entity's handle resolves to nil, so stale
// references never reach freed state. Each entity has a world position and a
// local position relative to its parent; moving a parent moves the subtree
// rigidly.
//
// # Components
//
// Behavior is attached as [Component] values. A component opts into the
// tick by implementing [Starter], [Updater], [LateUpdater], or [Destroyer].
// The first [Collider] and [RigidBody] attached fill typed slots on the
// entity ([Entity.Collider], [Entity.RigidBody]).
//
// # Physics
//
// Each scene owns a [Physics] mediator over a [SpatialIndex]: a [RegionTree]
// by default, or a [GridIndex] backed by [resolv]. Gameplay code queries it
// with [Physics.Overlap], [Physics.OverlapAll], and the rect probes; the scene
// runs pointer picking through it every tick when a [PointerSource] is set.
// Hits are reported to [Collider.OnCollisionEnter] and
// [Collider.OnPointerEnter], and optionally to an [EventSink] (see
// thicket/ecs for a [Donburi] bridge).
//
// # Diagnostics
//
// The package logs through [zap]; call [SetLogger] to see its output.
// [Scene.SetDebugMode] adds disposed-entity checks, hierarchy warnings, and
// per-tick timing. [DrawDebug] outlines colliders on an ebiten image.
//
// [Ebitengine]: https://ebitengine.org
// [resolv]: https://github.com/solarlune/resolv
// [Donburi]: https://github.com/yohamta/donburi
// [zap]: https://github.com/uber-go/zap
package thicket
