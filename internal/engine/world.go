package engine

import (
	"fmt"
	"sort"
)

// World owns every live entity. Entities are created through Add and removed
// only by Sweep, which also tells the renderer to release their handles.
type World struct {
	nextID   EntityID
	entities []*Entity
	byID     map[EntityID]*Entity

	announced map[EntityID]bool // entities the renderer already knows about
	released  []EntityID        // removed since the last Sync
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		entities:  make([]*Entity, 0, 64),
		byID:      make(map[EntityID]*Entity),
		announced: make(map[EntityID]bool),
	}
}

// Add takes ownership of e, assigns it an ID and returns it.
// At most one player and one boss may be alive at a time.
func (w *World) Add(e Entity) (*Entity, error) {
	if e.Kind == KindPlayer || e.Kind == KindBoss {
		if w.Count(e.Kind) > 0 {
			return nil, fmt.Errorf("engine: a %s is already alive", e.Kind)
		}
	}

	w.nextID++
	e.ID = w.nextID
	e.Destroyed = false
	ent := &e
	w.entities = append(w.entities, ent)
	w.byID[ent.ID] = ent
	return ent, nil
}

// MustAdd is Add for kinds that are never singletons.
func (w *World) MustAdd(e Entity) *Entity {
	ent, err := w.Add(e)
	if err != nil {
		panic(err)
	}
	return ent
}

// Get returns a live entity by ID, or nil.
func (w *World) Get(id EntityID) *Entity {
	e := w.byID[id]
	if !e.Alive() {
		return nil
	}
	return e
}

// Of returns the live entities of the given kind in creation order.
func (w *World) Of(kind Kind) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if e.Kind == kind && e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity of a kind, or nil.
func (w *World) First(kind Kind) *Entity {
	for _, e := range w.entities {
		if e.Kind == kind && e.Alive() {
			return e
		}
	}
	return nil
}

// Count returns how many live entities of a kind exist.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind && e.Alive() {
			n++
		}
	}
	return n
}

// Len returns the number of entities held, including ones not yet swept.
func (w *World) Len() int {
	return len(w.entities)
}

// Each calls fn for every live entity in creation order.
func (w *World) Each(fn func(e *Entity)) {
	for _, e := range w.entities {
		if e.Alive() {
			fn(e)
		}
	}
}

// Sweep removes destroyed, expired and invalid entities.
// It returns the number of entities removed.
func (w *World) Sweep() int {
	kept := w.entities[:0]
	removed := 0
	for _, e := range w.entities {
		if e.Alive() {
			kept = append(kept, e)
			continue
		}
		e.Destroyed = true
		delete(w.byID, e.ID)
		if w.announced[e.ID] {
			delete(w.announced, e.ID)
			w.released = append(w.released, e.ID)
		}
		removed++
	}
	// Drop trailing pointers so swept entities can be collected
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
	return removed
}

// Clear destroys every entity.
func (w *World) Clear() {
	for _, e := range w.entities {
		e.Destroyed = true
	}
	w.Sweep()
}

// Sync hands the current world to the renderer: Destroy for every entity
// removed since the last sync, Create for new entities and Update for the rest.
func (w *World) Sync(r Renderer) {
	if r == nil {
		r = NopRenderer{}
	}
	sort.Slice(w.released, func(i, j int) bool { return w.released[i] < w.released[j] })
	for _, id := range w.released {
		r.Destroy(id)
	}
	w.released = w.released[:0]

	for _, e := range w.entities {
		if !e.Alive() {
			continue
		}
		if w.announced[e.ID] {
			r.Update(SpriteOf(e))
			continue
		}
		w.announced[e.ID] = true
		r.Create(SpriteOf(e))
	}
}
