package render

import (
	"image/color"

	"github.com/cbodonnell/pong/client/fonts"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type command func(screen *ebiten.Image)

// Renderer records the frames the game loop draws during Update and replays
// the latest one on Draw. Update and Draw run on the same goroutine, so a
// presented frame is always complete.
type Renderer struct {
	fonts      *fonts.Cache
	background color.Color
	frame      []command
}

func NewRenderer(fontCache *fonts.Cache, background color.Color) *Renderer {
	return &Renderer{
		fonts:      fontCache,
		background: background,
	}
}

// Clear starts a new frame filled with the background color.
func (r *Renderer) Clear() {
	background := r.background
	r.frame = []command{func(screen *ebiten.Image) {
		screen.Fill(background)
	}}
}

// DrawPaddle draws a filled rectangle centered on position.
func (r *Renderer) DrawPaddle(position kinematic.Vector, width, height float64, clr color.Color) {
	topLeft := position.Sub(kinematic.Vector{X: width / 2, Y: height / 2})
	x, y := float32(topLeft.X), float32(topLeft.Y)
	r.frame = append(r.frame, func(screen *ebiten.Image) {
		vector.DrawFilledRect(screen, x, y, float32(width), float32(height), clr, false)
	})
}

func (r *Renderer) DrawBall(position kinematic.Vector, radius float64, clr color.Color) {
	r.frame = append(r.frame, func(screen *ebiten.Image) {
		vector.DrawFilledCircle(screen, float32(position.X), float32(position.Y), float32(radius), clr, true)
	})
}

// DrawText draws content with the left end of its baseline at position.
func (r *Renderer) DrawText(content string, position kinematic.Vector, fontSize float64, clr color.Color) {
	face, err := r.fonts.Face(fontSize)
	if err != nil {
		log.Error("Failed to draw text: %v", err)
		return
	}
	r.frame = append(r.frame, func(screen *ebiten.Image) {
		text.Draw(screen, content, face, int(position.X), int(position.Y), clr)
	})
}

func (r *Renderer) MeasureTextWidth(content string, fontSize float64) float64 {
	width, err := r.fonts.MeasureString(content, fontSize)
	if err != nil {
		log.Error("Failed to measure text: %v", err)
		return 0
	}
	return width
}

// Present draws the last recorded frame.
func (r *Renderer) Present(screen *ebiten.Image) {
	for _, draw := range r.frame {
		draw(screen)
	}
}

// Len returns the number of draw commands in the recorded frame.
func (r *Renderer) Len() int {
	return len(r.frame)
}
