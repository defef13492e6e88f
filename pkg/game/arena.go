package game

import (
	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
)

// Arena holds the dimensions derived once from the configured arena size.
type Arena struct {
	Width           float64
	Height          float64
	PaddleWidth     float64
	PaddleHeight    float64
	BorderSpacing   float64
	BallRadius      float64
	ScoreFontSize   float64
	MessageFontSize float64
}

func NewArena(cfg config.Config) Arena {
	return Arena{
		Width:           cfg.ArenaWidth,
		Height:          cfg.ArenaHeight,
		PaddleWidth:     cfg.ArenaWidth * cfg.PaddleWidthRatio,
		PaddleHeight:    cfg.ArenaHeight * cfg.PaddleHeightRatio,
		BorderSpacing:   cfg.ArenaWidth * cfg.PaddleBorderSpacingRatio,
		BallRadius:      cfg.ArenaWidth * cfg.BallRadiusRatio,
		ScoreFontSize:   cfg.ArenaWidth * cfg.ScoreFontSizeRatio,
		MessageFontSize: cfg.ArenaWidth * cfg.MessageFontSizeRatio,
	}
}

// NewPaddle returns the player's paddle at its starting position: vertically
// centered and offset from its side wall by the border spacing.
func (a Arena) NewPaddle(player types.Player) *types.Paddle {
	x := a.BorderSpacing + a.PaddleWidth/2
	if player == types.Player2 {
		x = a.Width - a.BorderSpacing - a.PaddleWidth/2
	}
	return types.NewPaddle(x, a.Height/2, a.PaddleWidth, a.PaddleHeight)
}

// NewBall returns a ball at the center of the arena.
func (a Arena) NewBall(velocity kinematic.Vector) *types.Ball {
	return types.NewBall(a.Width/2, a.Height/2, a.BallRadius, velocity)
}

// Center returns the center of the arena.
func (a Arena) Center() kinematic.Vector {
	return kinematic.Vector{X: a.Width / 2, Y: a.Height / 2}
}
