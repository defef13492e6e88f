package game

import "github.com/cbodonnell/pong/pkg/game/types"

// ScoreEvent records a point.
type ScoreEvent struct {
	Scorer types.Player
	// Score is the scorer's score after the point.
	Score int
}

// ScoreKeeper tracks the score of a match.
type ScoreKeeper struct {
	target int
	scores [types.NumPlayers]int
}

func NewScoreKeeper(target int) *ScoreKeeper {
	return &ScoreKeeper{target: target}
}

// CheckScore awards a point when the ball's center has left the arena
// horizontally. Reaching the right edge is a point for player 1 and the left
// edge a point for player 2. At most one point is awarded per call.
func (s *ScoreKeeper) CheckScore(ball *types.Ball, arenaWidth float64) (ScoreEvent, bool) {
	var scorer types.Player
	switch {
	case ball.Position.X >= arenaWidth:
		scorer = types.Player1
	case ball.Position.X <= 0:
		scorer = types.Player2
	default:
		return ScoreEvent{}, false
	}
	s.scores[scorer]++
	return ScoreEvent{Scorer: scorer, Score: s.scores[scorer]}, true
}

// IsMatchOver reports whether either player has reached the target score.
func (s *ScoreKeeper) IsMatchOver() bool {
	_, ok := s.Winner()
	return ok
}

// Winner returns the player who reached the target score.
func (s *ScoreKeeper) Winner() (types.Player, bool) {
	for i, score := range s.scores {
		if score == s.target {
			return types.Player(i), true
		}
	}
	return 0, false
}

func (s *ScoreKeeper) Score(player types.Player) int {
	return s.scores[player]
}

func (s *ScoreKeeper) Scores() [types.NumPlayers]int {
	return s.scores
}

func (s *ScoreKeeper) Target() int {
	return s.target
}

// Reset sets both scores to zero.
func (s *ScoreKeeper) Reset() {
	s.scores = [types.NumPlayers]int{}
}
