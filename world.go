package thicket

// EntityID is a generation-checked handle to an Entity inside a World.
// The zero value refers to no entity.
type EntityID uint64

// NoEntity is the zero handle.
const NoEntity EntityID = 0

func makeEntityID(index, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(index+1))
}

func (id EntityID) slot() (index, gen uint32) {
	return uint32(id) - 1, uint32(id >> 32)
}

// World is the arena that owns every Entity of a hierarchy. Parent and child
// relations are stored as handles into the arena, so a disposed entity can
// never be reached through a stale reference: its handle resolves to nil.
//
// A World is not safe for concurrent use.
type World struct {
	slots []*Entity
	gens  []uint32
	free  []uint32
	live  int
}

// NewWorld creates an empty arena.
func NewWorld() *World {
	return &World{}
}

// NewEntity allocates a new active, unparented entity at the origin.
func (w *World) NewEntity(name string) *Entity {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		index = uint32(len(w.slots))
		w.slots = append(w.slots, nil)
		w.gens = append(w.gens, 0)
	}
	e := &Entity{
		ID:     makeEntityID(index, w.gens[index]),
		Name:   name,
		world:  w,
		active: true,
	}
	w.slots[index] = e
	w.live++
	return e
}

// Get resolves a handle. It returns nil for NoEntity, for handles of disposed
// entities, and for handles minted by another World.
func (w *World) Get(id EntityID) *Entity {
	if id == NoEntity {
		return nil
	}
	index, gen := id.slot()
	if int(index) >= len(w.slots) || w.gens[index] != gen {
		return nil
	}
	return w.slots[index]
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.live
}

// release frees e's slot and bumps its generation so outstanding handles go stale.
func (w *World) release(e *Entity) {
	index, gen := e.ID.slot()
	if int(index) >= len(w.slots) || w.gens[index] != gen || w.slots[index] != e {
		return
	}
	w.slots[index] = nil
	w.gens[index]++
	w.free = append(w.free, index)
	w.live--
}
