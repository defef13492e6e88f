package game

import (
	"math"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
)

// Physics integrates the ball for one tick.
type Physics struct {
	// BallSpeed is the base ball speed in pixels per tick.
	BallSpeed float64
	// BounceSmoothness converts the paddle to ball vertical offset into vertical velocity.
	BounceSmoothness float64
	// BounceSpeedRatio is the share of BallSpeed added to the horizontal velocity on each paddle hit.
	BounceSpeedRatio float64
	ArenaHeight      float64
}

// MovePaddle moves the paddle by twice the speed in the intended direction.
// The move is skipped, not clamped, when it would put an edge on or past
// the top or bottom of the arena. It returns whether the paddle moved.
func MovePaddle(paddle *types.Paddle, intent types.Intent, speed float64, arenaHeight float64) bool {
	var direction kinematic.Vector
	switch {
	case intent.Up:
		direction = kinematic.Vector{Y: -1}
	case intent.Down:
		direction = kinematic.Vector{Y: 1}
	default:
		return false
	}

	displacement := direction.Scale(2 * speed)
	if paddle.Top()+displacement.Y <= 0 || paddle.Bottom()+displacement.Y >= arenaHeight {
		return false
	}
	paddle.Move(displacement)
	return true
}

// BouncePaddle reflects the ball off the paddle on the given side if they
// collide and returns whether they did.
func (p Physics) BouncePaddle(side types.Player, paddle *types.Paddle, ball *types.Ball) bool {
	if !Collides(paddle, ball) {
		return false
	}

	boost := p.BallSpeed * p.BounceSpeedRatio
	candidate := ball.Velocity.X
	if side == types.Player1 {
		candidate -= boost
	} else {
		candidate += boost
	}
	// repeated hits while the ball is still inside the paddle must not run away
	candidate = math.Max(-ball.Radius, math.Min(ball.Radius, candidate))

	ball.Velocity.X = -candidate
	ball.Velocity.Y = (paddle.Position.Y - ball.Position.Y) * p.BounceSmoothness * -1
	return true
}

// BounceWalls sends the ball back into the arena when it touches the top or
// bottom wall. Each wall is checked on its own. The velocity is pointed away
// from the wall rather than negated so a ball still overlapping a wall on the
// tick after a bounce does not flip back into it. Integrate runs it after
// BouncePaddle, whose vertical velocity can aim a ball caught near a wall
// into that wall; this check corrects it within the same tick.
func (p Physics) BounceWalls(ball *types.Ball) (top, bottom bool) {
	if ball.Top() <= 0 {
		ball.Velocity.Y = math.Abs(ball.Velocity.Y)
		top = true
	}
	if ball.Bottom() >= p.ArenaHeight {
		ball.Velocity.Y = -math.Abs(ball.Velocity.Y)
		bottom = true
	}
	return top, bottom
}

// Integrate runs the ball's part of a tick: paddle bounces, wall bounces,
// then the move. Paddles must already have moved for this tick.
func (p Physics) Integrate(ball *types.Ball, left, right *types.Paddle) {
	p.BouncePaddle(types.Player1, left, ball)
	p.BouncePaddle(types.Player2, right, ball)
	p.BounceWalls(ball)
	ball.Move(ball.Velocity)
}
