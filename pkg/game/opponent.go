package game

import (
	"strings"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
)

// Difficulty scales the computer opponent's paddle speed.
type Difficulty float64

const (
	DifficultyEasy   Difficulty = 0.6
	DifficultyNormal Difficulty = 0.8
	DifficultyHard   Difficulty = 1.0
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	}
	return "unknown"
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyNormal || d == DifficultyHard
}

// ParseDifficulty parses a difficulty name. Unknown names play as normal.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	}
	log.Debug("Unknown difficulty %q, using %s", s, DifficultyNormal)
	return DifficultyNormal
}

// ComputerOpponent steers player 2's paddle in single-player.
type ComputerOpponent struct {
	difficulty Difficulty
}

func NewComputerOpponent(difficulty Difficulty) *ComputerOpponent {
	if !difficulty.Valid() {
		log.Debug("Unknown difficulty %v, using %s", float64(difficulty), DifficultyNormal)
		difficulty = DifficultyNormal
	}
	return &ComputerOpponent{difficulty: difficulty}
}

func (o *ComputerOpponent) Difficulty() Difficulty {
	return o.difficulty
}

// Intent follows the ball vertically and holds still when the ball is level
// with the paddle's center.
func (o *ComputerOpponent) Intent(ball *types.Ball, paddle *types.Paddle) types.Intent {
	switch {
	case ball.Position.Y < paddle.Position.Y:
		return types.Intent{Up: true}
	case ball.Position.Y > paddle.Position.Y:
		return types.Intent{Down: true}
	}
	return types.Intent{}
}

// Speed returns the opponent's paddle speed for the given base speed.
func (o *ComputerOpponent) Speed(base float64) float64 {
	return base * float64(o.difficulty)
}
