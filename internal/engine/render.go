package engine

// Sprite is the render state of one entity handed to the renderer.
// It is a copy; the renderer never holds engine pointers.
type Sprite struct {
	ID      EntityID
	Kind    Kind
	Variant string
	Box     Box
	Health  int
}

// SpriteOf snapshots an entity for the renderer.
func SpriteOf(e *Entity) Sprite {
	return Sprite{
		ID:      e.ID,
		Kind:    e.Kind,
		Variant: e.Variant,
		Box:     e.Box(),
		Health:  e.Health,
	}
}

// Renderer receives create/update/destroy commands keyed by entity identity.
// It computes no geometry or game state of its own.
type Renderer interface {
	Create(s Sprite)
	Update(s Sprite)
	Destroy(id EntityID)
}

// NopRenderer discards all commands. Used for headless simulation.
type NopRenderer struct{}

func (NopRenderer) Create(Sprite) {}
func (NopRenderer) Update(Sprite) {}
func (NopRenderer) Destroy(EntityID) {}
