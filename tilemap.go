package thicket

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"
)

// TilemapCollider is a component owning one collider per occupied grid cell,
// plus any number of free rectangles. All of them are anchored at the owning
// entity: a cell's collider sits at cell*TileSize from the entity's world
// position. Hits against them report the owning entity.
//
// The tile colliders are not entity components; the TilemapCollider registers,
// moves, and unregisters them itself.
type TilemapCollider struct {
	BaseComponent

	TileSize Vector2f

	cells     map[Vector2]*Collider
	colliders []*Collider
	physics   *Physics
}

// NewTilemapCollider creates an empty tile collider with the given cell size.
func NewTilemapCollider(tileSize Vector2f) *TilemapCollider {
	return &TilemapCollider{
		TileSize: tileSize,
		cells:    make(map[Vector2]*Collider),
	}
}

// AddTile makes cell solid and returns its collider. Adding an occupied cell
// returns the existing collider.
func (t *TilemapCollider) AddTile(cell Vector2) *Collider {
	if c, ok := t.cells[cell]; ok {
		return c
	}
	c := t.add(t.TileSize.Scale(cell.Float()), t.TileSize)
	t.cells[cell] = c
	return c
}

// AddRect adds a free rectangle at offset from the entity.
func (t *TilemapCollider) AddRect(offset, size Vector2f) *Collider {
	return t.add(offset, size)
}

func (t *TilemapCollider) add(offset, size Vector2f) *Collider {
	c := NewCollider(offset, size)
	c.attach(t.Entity())
	c.SetActive(t.Active())
	t.colliders = append(t.colliders, c)
	if t.physics != nil {
		c.Position = t.Entity().WorldPosition()
		c.lastPosition = c.Position
		t.register(c)
	}
	return c
}

func (t *TilemapCollider) register(c *Collider) {
	if !t.physics.Register(c) {
		logger.Debug("tile collider outside index bounds",
			zap.String("entity", t.Entity().Name), zap.Stringer("rect", c.Rect()))
	}
}

// RemoveTile clears cell. It reports whether the cell was occupied.
func (t *TilemapCollider) RemoveTile(cell Vector2) bool {
	c, ok := t.cells[cell]
	if !ok {
		return false
	}
	delete(t.cells, cell)
	for i, o := range t.colliders {
		if o == c {
			t.colliders = append(t.colliders[:i], t.colliders[i+1:]...)
			break
		}
	}
	if t.physics != nil {
		t.physics.Unregister(c)
	}
	c.attach(nil)
	return true
}

// Tile returns the collider of cell, or nil.
func (t *TilemapCollider) Tile(cell Vector2) *Collider {
	return t.cells[cell]
}

// Colliders returns every owned collider, tiles and rectangles, in insertion
// order. The returned slice MUST NOT be mutated.
func (t *TilemapCollider) Colliders() []*Collider {
	return t.colliders
}

// Start registers every collider at the entity's world position.
func (t *TilemapCollider) Start() {
	e := t.Entity()
	if e == nil || e.Scene() == nil {
		return
	}
	t.physics = e.Scene().Physics()
	p := e.WorldPosition()
	for _, c := range t.colliders {
		c.Position = p
		c.lastPosition = p
		t.register(c)
	}
}

// Update re-anchors the colliders if the entity moved.
func (t *TilemapCollider) Update(float64) {
	e := t.Entity()
	if e == nil {
		return
	}
	p := e.WorldPosition()
	for _, c := range t.colliders {
		c.moveTo(p)
	}
}

// Destroy unregisters every collider.
func (t *TilemapCollider) Destroy() {
	for _, c := range t.colliders {
		c.Destroy()
	}
	t.physics = nil
}

// SetActive enables or disables the component and all of its colliders.
func (t *TilemapCollider) SetActive(active bool) {
	t.BaseComponent.SetActive(active)
	for _, c := range t.colliders {
		c.SetActive(active)
	}
}

func (t *TilemapCollider) attach(e *Entity) {
	t.BaseComponent.attach(e)
	for _, c := range t.colliders {
		c.attach(e)
	}
}

// LoadTilemapCollider builds a TilemapCollider from a Tiled TMX map. Every
// non-empty tile of the tile layer named layer becomes a solid cell; tiles
// whose tileset tile has the property collision=trigger become triggers.
// Objects of an object group with the same name become free rectangles. It
// fails if the map has neither kind of layer with that name.
func LoadTilemapCollider(fsys fs.FS, path, layer string) (*TilemapCollider, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("thicket: load tilemap %s: %w", path, err)
	}

	tc := NewTilemapCollider(Vector2f{X: float64(m.TileWidth), Y: float64(m.TileHeight)})
	found := false
	for _, l := range m.Layers {
		if l.Name != layer {
			continue
		}
		found = true
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := l.Tiles[y*m.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				c := tc.AddTile(Vector2{X: x, Y: y})
				if ts, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					c.Trigger = ts.Properties.GetString("collision") == "trigger"
				}
			}
		}
	}
	for _, og := range m.ObjectGroups {
		if og.Name != layer {
			continue
		}
		found = true
		for _, o := range og.Objects {
			c := tc.AddRect(Vector2f{X: o.X, Y: o.Y}, Vector2f{X: o.Width, Y: o.Height})
			c.Trigger = o.Properties.GetString("collision") == "trigger"
		}
	}
	if !found {
		return nil, fmt.Errorf("thicket: tilemap %s has no layer %q", path, layer)
	}
	logger.Debug("tilemap collider loaded",
		zap.String("path", path), zap.String("layer", layer), zap.Int("colliders", len(tc.colliders)))
	return tc, nil
}
