package types

import "github.com/cbodonnell/pong/pkg/kinematic"

// Entity is a positioned object in the arena.
type Entity struct {
	Position kinematic.Vector `json:"position"`
}

// Move translates the entity by the displacement. It performs no bounds checks.
func (e *Entity) Move(displacement kinematic.Vector) {
	e.Position = e.Position.Add(displacement)
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// NewBox returns the box of the given half extents around center.
func NewBox(center kinematic.Vector, halfWidth, halfHeight float64) Box {
	return Box{
		MinX: center.X - halfWidth,
		MaxX: center.X + halfWidth,
		MinY: center.Y - halfHeight,
		MaxY: center.Y + halfHeight,
	}
}

// Overlaps reports whether the boxes overlap on both axes. The intervals are
// closed, so boxes whose edges touch overlap.
func (b Box) Overlaps(o Box) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX &&
		b.MinY <= o.MaxY && o.MinY <= b.MaxY
}
