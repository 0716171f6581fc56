// Package canvas rasterises engine sprites onto a terminal cell buffer.
// A Canvas is the engine's renderer collaborator: it keeps one sprite per
// entity ID between ticks and draws them when the platform asks for a frame.
package canvas

import (
	"math"
	"sort"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// Shape is the outline a sprite is drawn with.
type Shape int

const (
	ShapeFill         Shape = iota // solid rectangle
	ShapeFrame                     // rectangle outline with a filled interior
	ShapeTriangleUp                // widens towards the bottom
	ShapeTriangleDown              // widens towards the top
)

// Style is how one sprite looks on screen.
type Style struct {
	Shape Shape
	Fill  rune
	Edge  rune // used by ShapeFrame; zero means Fill
	Color core.Color
}

// Stylist picks the style for a sprite. Games provide one.
type Stylist func(s engine.Sprite) Style

// DefaultStylist draws everything as solid blocks.
func DefaultStylist(engine.Sprite) Style {
	return Style{Shape: ShapeFill, Fill: '█', Color: core.ColorWhite}
}

// layers is the draw order; later kinds are painted on top.
var layers = map[engine.Kind]int{
	engine.KindBackgroundTile: 0,
	engine.KindParticle:       1,
	engine.KindObstacle:       2,
	engine.KindEnemy:          3,
	engine.KindBoss:           4,
	engine.KindBullet:         5,
	engine.KindPlayer:         6,
}

// Canvas implements engine.Renderer.
type Canvas struct {
	world   engine.Box
	style   Stylist
	sprites map[engine.EntityID]engine.Sprite
}

// New creates a canvas that maps the given world region onto the draw area.
func New(world engine.Box, style Stylist) *Canvas {
	if style == nil {
		style = DefaultStylist
	}
	return &Canvas{
		world:   world,
		style:   style,
		sprites: make(map[engine.EntityID]engine.Sprite),
	}
}

// Create registers a new sprite.
func (c *Canvas) Create(s engine.Sprite) {
	c.sprites[s.ID] = s
}

// Update replaces a sprite's render state.
func (c *Canvas) Update(s engine.Sprite) {
	c.sprites[s.ID] = s
}

// Destroy releases the sprite handle.
func (c *Canvas) Destroy(id engine.EntityID) {
	delete(c.sprites, id)
}

// Len returns the number of live sprite handles.
func (c *Canvas) Len() int {
	return len(c.sprites)
}

// Sprite returns the stored sprite for an entity.
func (c *Canvas) Sprite(id engine.EntityID) (engine.Sprite, bool) {
	s, ok := c.sprites[id]
	return s, ok
}

// World returns the world region the canvas maps.
func (c *Canvas) World() engine.Box {
	return c.world
}

// Draw paints every sprite into area of dst, scaling world units to cells.
// Sprites are clipped to area and ordered by layer, then by ID.
func (c *Canvas) Draw(dst *core.Screen, area core.Rect) {
	if area.Empty() || !c.world.Valid() {
		return
	}

	ordered := make([]engine.Sprite, 0, len(c.sprites))
	for _, s := range c.sprites {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		li, lj := layers[ordered[i].Kind], layers[ordered[j].Kind]
		if li != lj {
			return li < lj
		}
		return ordered[i].ID < ordered[j].ID
	})

	for _, s := range ordered {
		full := c.Project(s.Box, area)
		clip := full.Intersect(area)
		if clip.Empty() {
			continue
		}
		paint(dst, full, clip, c.style(s))
	}
}

// Project maps a world box to cells of area. Any visible box covers at least
// one cell.
func (c *Canvas) Project(b engine.Box, area core.Rect) core.Rect {
	sx := float64(area.W) / c.world.Width()
	sy := float64(area.H) / c.world.Height()

	x0 := int(math.Floor((b.Left - c.world.Left) * sx))
	y0 := int(math.Floor((b.Top - c.world.Top) * sy))
	x1 := int(math.Ceil((b.Right - c.world.Left) * sx))
	y1 := int(math.Ceil((b.Bottom - c.world.Top) * sy))

	return core.NewRect(area.X+x0, area.Y+y0, max(1, x1-x0), max(1, y1-y0))
}

// ProjectPoint maps a world point to the cell containing it.
func (c *Canvas) ProjectPoint(p engine.Vec, area core.Rect) (x, y int) {
	r := c.Project(engine.Box{Left: p.X, Top: p.Y, Right: p.X, Bottom: p.Y}, area)
	return r.X, r.Y
}

// paint draws shape full, writing only cells inside clip.
func paint(dst *core.Screen, full, clip core.Rect, st Style) {
	fill := st.Fill
	if fill == 0 {
		fill = '█'
	}
	edge := st.Edge
	if edge == 0 {
		edge = fill
	}

	for y := clip.Y; y < clip.Bottom(); y++ {
		row := y - full.Y
		lo, hi := full.X, full.Right()
		switch st.Shape {
		case ShapeTriangleUp:
			lo, hi = span(full, row+1)
		case ShapeTriangleDown:
			lo, hi = span(full, full.H-row)
		}

		for x := max(lo, clip.X); x < min(hi, clip.Right()); x++ {
			r := fill
			if st.Shape == ShapeFrame && (y == full.Y || y == full.Bottom()-1 || x == full.X || x == full.Right()-1) {
				r = edge
			}
			dst.SetCell(x, y, r, st.Color)
		}
	}
}

// span returns the columns of a triangle row covering n of full.H rows,
// centered in full.
func span(full core.Rect, n int) (lo, hi int) {
	w := max(1, int(math.Round(float64(full.W)*float64(n)/float64(full.H))))
	lo = full.X + (full.W-w)/2
	return lo, lo + w
}
