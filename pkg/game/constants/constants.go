package constants

import (
	"image/color"
	"time"
)

const (
	// ArenaWidth is the default arena width in pixels
	ArenaWidth float64 = 800.0
	// ArenaHeight is the default arena height in pixels
	ArenaHeight float64 = 600.0

	// PaddleHeightRatio is the paddle height relative to the arena height
	PaddleHeightRatio float64 = 0.3
	// PaddleWidthRatio is the paddle width relative to the arena width
	PaddleWidthRatio float64 = 0.035
	// PaddleBorderSpacingRatio is the gap between a paddle and its side wall relative to the arena width
	PaddleBorderSpacingRatio float64 = 0.01
	// BallRadiusRatio is the ball radius relative to the arena width
	BallRadiusRatio float64 = 0.02
	// ScoreFontSizeRatio is the score font size relative to the arena width
	ScoreFontSizeRatio float64 = 0.03
	// MessageFontSizeRatio is the title, pause and winner font size relative to the arena width
	MessageFontSizeRatio float64 = 0.06

	// GameSpeed is the base ball and paddle speed in pixels per tick
	GameSpeed float64 = 2.0
	// BounceSmoothness converts the paddle to ball offset at contact into vertical velocity
	BounceSmoothness float64 = 0.05
	// BounceSpeedRatio is the share of GameSpeed added to the ball on each paddle hit
	BounceSpeedRatio float64 = 0.25

	// TickInterval is the time between physics ticks
	TickInterval = 10 * time.Millisecond
	// RallyDelay is the pause before the ball is served after a point
	RallyDelay = 1 * time.Second

	// TargetScore is the score that wins the match
	TargetScore int = 10

	// Difficulty is the default computer opponent difficulty
	Difficulty = "normal"

	// Player1Name is the default name of the left player
	Player1Name = "Player1"
	// Player2Name is the default name of the right player
	Player2Name = "Player2"

	// Player1UpKey is the default up key of the left player
	Player1UpKey = "w"
	// Player1DownKey is the default down key of the left player
	Player1DownKey = "s"
	// Player2UpKey is the default up key of the right player
	Player2UpKey = "arrowup"
	// Player2DownKey is the default down key of the right player
	Player2DownKey = "arrowdown"
)

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorPaddle     = color.RGBA{0, 128, 0, 255}
	ColorBall       = color.RGBA{255, 255, 255, 255}
	ColorScore      = color.RGBA{255, 0, 0, 255}
	ColorMessage    = color.RGBA{255, 255, 255, 255}
)
