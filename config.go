package thicket

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// IndexKind selects the SpatialIndex implementation a scene uses.
type IndexKind string

const (
	IndexRegionTree IndexKind = "regiontree"
	IndexGrid       IndexKind = "grid"
)

// MaxGridCells caps the cells a grid index may allocate. The grid allocates
// every cell up front, so IndexGrid needs explicit bounds.
const MaxGridCells = 1 << 20

// Config configures a Scene. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	// Index selects the broad phase.
	Index IndexKind `yaml:"index"`
	// Bounds is the region covered by the index.
	Bounds Rect `yaml:"bounds"`
	// NodeCapacity is the region tree's per-node capacity.
	NodeCapacity int `yaml:"node_capacity"`
	// GridCellSize is the grid index's cell edge length.
	GridCellSize int `yaml:"grid_cell_size"`

	// DesignResolution is the reference screen size canvas colliders are
	// authored for.
	DesignResolution Vector2 `yaml:"design_resolution"`
	// PointerSize is the footprint of pointer queries.
	PointerSize Vector2f `yaml:"pointer_size"`

	// Debug enables disposed-entity panics, hierarchy warnings, and
	// per-tick timing logs.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a region-tree configuration over DefaultBounds.
func DefaultConfig() Config {
	return Config{
		Index:            IndexRegionTree,
		Bounds:           DefaultBounds,
		NodeCapacity:     DefaultNodeCapacity,
		GridCellSize:     32,
		DesignResolution: Vector2{X: 1280, Y: 720},
		PointerSize:      defaultPointerSize,
	}
}

// LoadConfig decodes YAML from r on top of DefaultConfig. Unknown keys are
// rejected. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("thicket: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("thicket: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Index {
	case IndexRegionTree, IndexGrid:
	default:
		return fmt.Errorf("thicket: unknown index kind %q", c.Index)
	}
	if c.Bounds.Width == 0 || c.Bounds.Height == 0 {
		return fmt.Errorf("thicket: index bounds %v have no area", c.Bounds)
	}
	if c.NodeCapacity < 0 {
		return fmt.Errorf("thicket: negative node capacity %d", c.NodeCapacity)
	}
	if c.Index == IndexGrid {
		if c.GridCellSize <= 0 {
			return fmt.Errorf("thicket: grid cell size must be positive, got %d", c.GridCellSize)
		}
		if n := gridCells(c.Bounds, c.GridCellSize); n > MaxGridCells {
			return fmt.Errorf("thicket: grid over %v with cell size %d needs %.0f cells, limit %d",
				c.Bounds, c.GridCellSize, n, MaxGridCells)
		}
	}
	return nil
}

func (c Config) newIndex() SpatialIndex {
	if c.Index == IndexGrid {
		return NewGridIndex(c.Bounds, c.GridCellSize)
	}
	return NewRegionTree(c.Bounds, c.NodeCapacity)
}

func gridCells(bounds Rect, cellSize int) float64 {
	b := bounds.Canon()
	cell := float64(cellSize)
	return math.Ceil(b.Width/cell) * math.Ceil(b.Height/cell)
}
