package types

import "github.com/cbodonnell/pong/pkg/kinematic"

// Paddle is a rectangle positioned by its center.
type Paddle struct {
	Entity
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewPaddle(x, y, width, height float64) *Paddle {
	return &Paddle{
		Entity: Entity{Position: kinematic.Vector{X: x, Y: y}},
		Width:  width,
		Height: height,
	}
}

func (p *Paddle) HalfWidth() float64 {
	return p.Width / 2
}

func (p *Paddle) HalfHeight() float64 {
	return p.Height / 2
}

// Top returns the y coordinate of the paddle's top edge.
func (p *Paddle) Top() float64 {
	return p.Position.Y - p.HalfHeight()
}

// Bottom returns the y coordinate of the paddle's bottom edge.
func (p *Paddle) Bottom() float64 {
	return p.Position.Y + p.HalfHeight()
}

func (p *Paddle) Bounds() Box {
	return NewBox(p.Position, p.HalfWidth(), p.HalfHeight())
}

// Copy returns a copy of the paddle.
func (p *Paddle) Copy() *Paddle {
	c := *p
	return &c
}
