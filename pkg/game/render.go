package game

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
)

// Renderer draws frames for the game loop. Positions are in arena pixels.
// Paddles are positioned by their center, text by the left end of its baseline.
type Renderer interface {
	// Clear fills the frame with the background.
	Clear()
	DrawPaddle(position kinematic.Vector, width, height float64, clr color.Color)
	DrawBall(position kinematic.Vector, radius float64, clr color.Color)
	DrawText(content string, position kinematic.Vector, fontSize float64, clr color.Color)
	MeasureTextWidth(content string, fontSize float64) float64
}

// draw renders the current state as one complete frame.
func (l *GameLoop) draw() {
	colors := l.cfg.Colors

	l.renderer.Clear()
	for _, paddle := range l.paddles {
		l.renderer.DrawPaddle(paddle.Position, paddle.Width, paddle.Height, colors.Paddle)
	}
	l.renderer.DrawBall(l.ball.Position, l.ball.Radius, colors.Ball)

	scores := l.scores.Scores()
	if l.state == types.GameStateMatchOver && l.result != nil {
		scores = l.result.Scores
	}
	l.drawScores(scores)

	if message := l.message(); message != "" {
		l.drawCentered(message, l.arena.MessageFontSize, 0)
	}
	if hint := l.hints[l.state]; hint != "" {
		l.drawCentered(hint, l.arena.ScoreFontSize, l.arena.MessageFontSize)
	}
}

func (l *GameLoop) drawScores(scores [types.NumPlayers]int) {
	size := l.arena.ScoreFontSize
	clr := l.cfg.Colors.Score

	left := fmt.Sprintf("%s %d", l.cfg.Player1Name, scores[types.Player1])
	l.renderer.DrawText(left, kinematic.Vector{X: l.arena.BorderSpacing, Y: size}, size, clr)

	right := fmt.Sprintf("%s %d", l.cfg.Player2Name, scores[types.Player2])
	width := l.renderer.MeasureTextWidth(right, size)
	l.renderer.DrawText(right, kinematic.Vector{X: l.arena.Width - width - l.arena.BorderSpacing, Y: size}, size, clr)
}

// drawCentered draws text horizontally centered with its baseline offset
// from the vertical center of the arena.
func (l *GameLoop) drawCentered(content string, fontSize float64, offsetY float64) {
	width := l.renderer.MeasureTextWidth(content, fontSize)
	position := l.arena.Center().Add(kinematic.Vector{X: -width / 2, Y: offsetY})
	l.renderer.DrawText(content, position, fontSize, l.cfg.Colors.Message)
}

func (l *GameLoop) message() string {
	switch l.state {
	case types.GameStateNotStarted:
		return TitleMessage
	case types.GameStatePaused:
		return PausedMessage
	case types.GameStateMatchOver:
		if l.result != nil {
			return fmt.Sprintf("%s wins!", l.result.WinnerName)
		}
	}
	return ""
}
