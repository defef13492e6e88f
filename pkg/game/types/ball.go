package types

import "github.com/cbodonnell/pong/pkg/kinematic"

// Ball is a circle positioned by its center with a per-tick velocity.
type Ball struct {
	Entity
	Radius   float64          `json:"radius"`
	Velocity kinematic.Vector `json:"velocity"`
}

func NewBall(x, y, radius float64, velocity kinematic.Vector) *Ball {
	return &Ball{
		Entity:   Entity{Position: kinematic.Vector{X: x, Y: y}},
		Radius:   radius,
		Velocity: velocity,
	}
}

func (b *Ball) Top() float64 {
	return b.Position.Y - b.Radius
}

func (b *Ball) Bottom() float64 {
	return b.Position.Y + b.Radius
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() Box {
	return NewBox(b.Position, b.Radius, b.Radius)
}

// Copy returns a copy of the ball.
func (b *Ball) Copy() *Ball {
	c := *b
	return &c
}
