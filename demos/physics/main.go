// physics drops a pushable box into a walled room with a trigger pad and a
// clickable canvas button. Arrow keys push the box; colliders are drawn with
// the debug overlay.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/thicket"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

const (
	screenW = 1280
	screenH = 720
	push    = 400.0
	tps     = 60
)

type game struct {
	scene   *thicket.Scene
	body    *thicket.RigidBody
	pad     *thicket.Entity
	tweens  *thicket.Tweener
	status  string
	padHits int
}

func newGame() *game {
	cfg := thicket.DefaultConfig()
	cfg.DesignResolution = thicket.Vector2{X: screenW, Y: screenH}
	scene := thicket.NewScene("physics", cfg)
	cam := thicket.NewCamera(thicket.Rect{Width: screenW, Height: screenH})
	cam.Zoom = 1.5
	cam.SetBounds(thicket.Rect{Width: screenW, Height: screenH})
	scene.SetCamera(cam)
	scene.SetPointerSource(&thicket.EbitenPointer{ScreenToWorld: cam.ScreenToWorld})
	scene.SetDisplaySource(thicket.EbitenDisplay{Design: cfg.DesignResolution})

	g := &game{scene: scene, status: "arrow keys push the box"}

	// Walls: one tile collider outlining the room.
	room := scene.NewEntity("room")
	walls := thicket.NewTilemapCollider(thicket.Vector2f{X: 40, Y: 40})
	for x := 0; x < screenW/40; x++ {
		walls.AddTile(thicket.Vector2{X: x, Y: 0})
		walls.AddTile(thicket.Vector2{X: x, Y: screenH/40 - 1})
	}
	for y := 1; y < screenH/40-1; y++ {
		walls.AddTile(thicket.Vector2{X: 0, Y: y})
		walls.AddTile(thicket.Vector2{X: screenW/40 - 1, Y: y})
	}
	// An L-shaped ledge to slide along.
	for x := 10; x < 16; x++ {
		walls.AddTile(thicket.Vector2{X: x, Y: 8})
	}
	for y := 4; y < 8; y++ {
		walls.AddTile(thicket.Vector2{X: 15, Y: y})
	}
	room.AddComponent(walls)
	scene.Add(room)

	// Trigger pad that drifts back and forth.
	g.pad = scene.NewEntity("pad")
	padCollider := thicket.NewCollider(thicket.Vector2f{}, thicket.Vector2f{X: 120, Y: 60})
	padCollider.Trigger = true
	padCollider.OnCollisionEnter = func(thicket.ColliderHit) { g.padHits++ }
	g.pad.AddComponent(padCollider)
	g.tweens = thicket.NewTweener()
	g.pad.AddComponent(g.tweens)
	scene.AddAt(g.pad, thicket.Vector2f{X: 800, Y: 500})

	// The pushable box.
	box := scene.NewEntity("box")
	box.AddComponent(thicket.NewCollider(thicket.Vector2f{}, thicket.Vector2f{X: 32, Y: 32}))
	g.body = thicket.NewDefaultRigidBody()
	box.AddComponent(g.body)
	scene.AddAt(box, thicket.Vector2f{X: 200, Y: 200})
	cam.Follow(box, thicket.Vector2f{X: 16, Y: 16}, 0.1)

	// A canvas button in screen space.
	button := scene.NewEntity("button")
	bc := thicket.NewCollider(thicket.Vector2f{}, thicket.Vector2f{X: 160, Y: 40})
	bc.Canvas = true
	bc.OnPointerEnter = func(ctx thicket.PointerContext) {
		if ctx.Pointer.Released {
			g.status = "button clicked"
		}
	}
	button.AddComponent(bc)
	scene.AddAt(button, thicket.Vector2f{X: screenW - 200, Y: 60})

	return g
}

func (g *game) Update() error {
	var f thicket.Vector2f
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		f.X -= push
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		f.X += push
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		f.Y -= push
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		f.Y += push
	}
	if f != thicket.Vector2fZero {
		g.body.ApplyForce(f)
	}
	if g.tweens.Len() == 0 {
		to := thicket.Vector2f{X: 800, Y: 500}
		if g.pad.WorldPosition().X < 900 {
			to.X = 1000
		}
		g.tweens.Add(thicket.TweenPosition(g.pad, to, 2, ease.InOutQuad))
	}
	g.scene.Update(1.0 / tps)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})
	thicket.DrawDebug(screen, g.scene.Physics(), thicket.DebugDrawOptions{Camera: g.scene.Camera()})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\npad hits: %d", g.status, g.padHits))
}

func (g *game) Layout(int, int) (int, int) {
	return screenW, screenH
}

func main() {
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	thicket.SetLogger(l)

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Thicket: Physics")
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
