package game

import "github.com/cbodonnell/pong/pkg/game/types"

// Collides reports whether the paddle's box and the ball's bounding square
// overlap. Touching edges count as a collision.
func Collides(paddle *types.Paddle, ball *types.Ball) bool {
	return paddle.Bounds().Overlaps(ball.Bounds())
}
