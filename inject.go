package thicket

// ScriptedPointer is a PointerSource fed from a queue of injected events,
// for tests and automation. Each call to Pointer consumes one event; when the
// queue is empty the last state is repeated with Released cleared.
//
// Screen coordinates are converted to world coordinates through
// ScreenToWorld, the same way EbitenPointer treats real input.
type ScriptedPointer struct {
	ScreenToWorld func(Vector2f) Vector2f
	Size          Vector2f

	queue []PointerState
	last  PointerState
}

// Pending returns the number of queued events.
func (p *ScriptedPointer) Pending() int {
	return len(p.queue)
}

// InjectPress queues a left-button press at the given screen coordinates.
func (p *ScriptedPointer) InjectPress(x, y float64) {
	p.push(x, y, true, false)
}

// InjectMove queues a pointer move at the given screen coordinates. The
// button state carries over from the previous queued event.
func (p *ScriptedPointer) InjectMove(x, y float64) {
	pressed := p.last.Pressed
	if n := len(p.queue); n > 0 {
		pressed = p.queue[n-1].Pressed
	}
	p.push(x, y, pressed, false)
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (p *ScriptedPointer) InjectRelease(x, y float64) {
	p.push(x, y, false, true)
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two ticks.
func (p *ScriptedPointer) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves
// over frames-2 intermediate ticks, and a release at (toX, toY). The whole
// sequence consumes frames ticks. Minimum frames is 2.
func (p *ScriptedPointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.push(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, true, false)
	}
	p.InjectRelease(toX, toY)
}

// InjectWait queues frames ticks that repeat the previous queued state with
// Released cleared.
func (p *ScriptedPointer) InjectWait(frames int) {
	prev := p.last
	if n := len(p.queue); n > 0 {
		prev = p.queue[n-1]
	}
	prev.Released = false
	for i := 0; i < frames; i++ {
		p.queue = append(p.queue, prev)
	}
}

// Pointer pops the next queued event.
func (p *ScriptedPointer) Pointer() PointerState {
	if len(p.queue) == 0 {
		p.last.Released = false
		return p.last
	}
	evt := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	p.last = evt
	return evt
}

func (p *ScriptedPointer) push(x, y float64, pressed, released bool) {
	screen := Vector2f{X: x, Y: y}
	world := screen
	if p.ScreenToWorld != nil {
		world = p.ScreenToWorld(screen)
	}
	p.queue = append(p.queue, PointerState{
		Screen:   screen,
		World:    world,
		Size:     p.Size,
		Button:   MouseButtonLeft,
		Pressed:  pressed,
		Released: released,
	})
}
