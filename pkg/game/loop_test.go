package game

import (
	"image/color"
	"math/rand"
	"testing"
	"time"

	mocks "github.com/cbodonnell/pong/mocks/github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/cbodonnell/pong/pkg/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// frameRecorder keeps the text of the last frame drawn.
type frameRecorder struct {
	frames int
	texts  []string
}

func (r *frameRecorder) Clear() {
	r.frames++
	r.texts = nil
}

func (r *frameRecorder) DrawPaddle(kinematic.Vector, float64, float64, color.Color) {}

func (r *frameRecorder) DrawBall(kinematic.Vector, float64, color.Color) {}

func (r *frameRecorder) DrawText(content string, _ kinematic.Vector, _ float64, _ color.Color) {
	r.texts = append(r.texts, content)
}

func (r *frameRecorder) MeasureTextWidth(content string, fontSize float64) float64 {
	return float64(len(content)) * fontSize / 2
}

type testLoop struct {
	*GameLoop
	clock     *scheduler.ManualClock
	scheduler *scheduler.Scheduler
	frames    *frameRecorder
}

func newTestLoop(t *testing.T, modify func(cfg *config.Config)) *testLoop {
	t.Helper()

	cfg := config.Default()
	if modify != nil {
		modify(&cfg)
	}
	clock := scheduler.NewManualClock(time.Unix(0, 0))
	sched := scheduler.New(clock)
	frames := &frameRecorder{}

	l, err := NewGameLoop(NewGameLoopOptions{
		Config:    cfg,
		Renderer:  frames,
		Scheduler: sched,
		Rand:      rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	return &testLoop{GameLoop: l, clock: clock, scheduler: sched, frames: frames}
}

func (tl *testLoop) advance(d time.Duration) {
	tl.clock.Add(d)
	tl.scheduler.RunPending()
}

// putBall places the ball where the next tick moves it past an edge, away
// from both paddles.
func (tl *testLoop) putBall(x, vx float64) {
	tl.ball.Position = kinematic.Vector{X: x, Y: 100}
	tl.ball.Velocity = kinematic.Vector{X: vx}
}

func TestNewGameLoop_Validation(t *testing.T) {
	sched := scheduler.New(scheduler.NewManualClock(time.Unix(0, 0)))

	_, err := NewGameLoop(NewGameLoopOptions{Config: config.Default(), Scheduler: sched})
	assert.Error(t, err)

	_, err = NewGameLoop(NewGameLoopOptions{Config: config.Default(), Renderer: &frameRecorder{}})
	assert.Error(t, err)

	cfg := config.Default()
	cfg.TargetScore = 0
	_, err = NewGameLoop(NewGameLoopOptions{Config: cfg, Renderer: &frameRecorder{}, Scheduler: sched})
	assert.Error(t, err)
}

func TestNewGameLoop_DrawsTitleFrame(t *testing.T) {
	tl := newTestLoop(t, nil)

	assert.Equal(t, types.GameStateNotStarted, tl.State())
	assert.Equal(t, 1, tl.frames.frames)
	assert.Equal(t, []string{"Player1 0", "Player2 0", TitleMessage}, tl.frames.texts)
	assert.Equal(t, 0, tl.scheduler.Pending())
}

func TestGameLoop_Draw(t *testing.T) {
	cfg := config.Default()
	renderer := mocks.NewRenderer(t)
	colors := cfg.Colors

	renderer.EXPECT().Clear().Return().Once()
	renderer.EXPECT().DrawPaddle(mock.Anything, mock.Anything, mock.Anything, colors.Paddle).
		Run(func(position kinematic.Vector, width float64, height float64, clr color.Color) {
			assert.Equal(t, 300.0, position.Y)
			assert.InDelta(t, 28.0, width, 1e-9)
			assert.InDelta(t, 180.0, height, 1e-9)
		}).
		Return().Twice()
	renderer.EXPECT().DrawBall(kinematic.Vector{X: 400, Y: 300}, mock.Anything, colors.Ball).Return().Once()
	renderer.EXPECT().MeasureTextWidth(mock.Anything, mock.Anything).Return(100).Times(2)
	renderer.EXPECT().DrawText("Player1 0", mock.Anything, mock.Anything, colors.Score).
		Run(func(content string, position kinematic.Vector, fontSize float64, clr color.Color) {
			assert.InDelta(t, 8.0, position.X, 1e-9)
			assert.InDelta(t, 24.0, position.Y, 1e-9)
		}).
		Return().Once()
	renderer.EXPECT().DrawText("Player2 0", mock.Anything, mock.Anything, colors.Score).
		Run(func(content string, position kinematic.Vector, fontSize float64, clr color.Color) {
			assert.InDelta(t, 692.0, position.X, 1e-9)
		}).
		Return().Once()
	renderer.EXPECT().DrawText(TitleMessage, mock.Anything, mock.Anything, colors.Message).
		Run(func(content string, position kinematic.Vector, fontSize float64, clr color.Color) {
			assert.InDelta(t, 350.0, position.X, 1e-9)
			assert.InDelta(t, 300.0, position.Y, 1e-9)
			assert.InDelta(t, 48.0, fontSize, 1e-9)
		}).
		Return().Once()

	_, err := NewGameLoop(NewGameLoopOptions{
		Config:    cfg,
		Renderer:  renderer,
		Scheduler: scheduler.New(scheduler.NewManualClock(time.Unix(0, 0))),
	})
	require.NoError(t, err)
}

func TestGameLoop_Start(t *testing.T) {
	tl := newTestLoop(t, nil)

	require.True(t, tl.Start())
	assert.False(t, tl.Start())
	assert.Equal(t, types.GameStateRunning, tl.State())

	s := tl.Snapshot()
	assert.NotEmpty(t, s.MatchID)
	assert.Equal(t, 2.0, abs(s.Ball.Velocity.X))
	assert.Equal(t, 0.0, s.Ball.Velocity.Y)

	tl.advance(10 * time.Millisecond)
	s = tl.Snapshot()
	assert.Equal(t, uint64(1), s.Ticks)
	assert.Equal(t, 2.0, abs(s.Ball.Position.X-400))

	// no catch-up burst beyond the elapsed ticks
	tl.advance(50 * time.Millisecond)
	assert.Equal(t, uint64(6), tl.Snapshot().Ticks)
}

func TestGameLoop_ServeDirection(t *testing.T) {
	tl := newTestLoop(t, nil)

	seen := map[float64]int{}
	for i := 0; i < 100; i++ {
		tl.serve()
		seen[tl.ball.Velocity.X]++
	}
	assert.Len(t, seen, 2)
	assert.Contains(t, seen, 2.0)
	assert.Contains(t, seen, -2.0)
}

func TestGameLoop_PauseResume(t *testing.T) {
	tl := newTestLoop(t, nil)
	assert.False(t, tl.Pause())
	assert.False(t, tl.Resume())

	require.True(t, tl.Start())
	tl.advance(50 * time.Millisecond)

	require.True(t, tl.Pause())
	assert.False(t, tl.Pause())
	assert.Equal(t, types.GameStatePaused, tl.State())
	assert.Contains(t, tl.frames.texts, PausedMessage)

	paused := tl.Snapshot()
	tl.advance(time.Second)
	assert.Equal(t, paused, tl.Snapshot())
	assert.Equal(t, 0, tl.scheduler.Pending())

	require.True(t, tl.Resume())
	assert.False(t, tl.Resume())
	assert.Equal(t, types.GameStateRunning, tl.State())

	tl.advance(10 * time.Millisecond)
	assert.Equal(t, paused.Ticks+1, tl.Snapshot().Ticks)
}

func TestGameLoop_BlurFocus(t *testing.T) {
	tl := newTestLoop(t, nil)
	assert.False(t, tl.Blur())

	require.True(t, tl.Start())
	assert.True(t, tl.Blur())
	assert.Equal(t, types.GameStatePaused, tl.State())
	assert.True(t, tl.Focus())
	assert.Equal(t, types.GameStateRunning, tl.State())
}

func TestGameLoop_ScoreRight(t *testing.T) {
	tl := newTestLoop(t, nil)
	require.True(t, tl.Start())

	tl.putBall(798, 2)
	tl.advance(10 * time.Millisecond)

	assert.Equal(t, [types.NumPlayers]int{1, 0}, tl.Scores())
	assert.Equal(t, types.GameStateRallyReset, tl.State())
	assert.Contains(t, tl.frames.texts, "Player1 1")

	s := tl.Snapshot()
	assert.Equal(t, kinematic.Vector{X: 400, Y: 300}, s.Ball.Position)
	assert.Equal(t, 2.0, abs(s.Ball.Velocity.X))
	assert.Equal(t, 2, s.Rally)

	tl.advance(500 * time.Millisecond)
	assert.Equal(t, types.GameStateRallyReset, tl.State())
	assert.Equal(t, s.Ball, tl.Snapshot().Ball)

	tl.advance(500 * time.Millisecond)
	assert.Equal(t, types.GameStateRunning, tl.State())
}

func TestGameLoop_ScoreLeft(t *testing.T) {
	tl := newTestLoop(t, nil)
	require.True(t, tl.Start())

	tl.putBall(2, -2)
	tl.advance(10 * time.Millisecond)

	assert.Equal(t, [types.NumPlayers]int{0, 1}, tl.Scores())
	assert.Equal(t, types.GameStateRallyReset, tl.State())
}

func TestGameLoop_PauseDuringRallyReset(t *testing.T) {
	tl := newTestLoop(t, nil)
	require.True(t, tl.Start())

	tl.putBall(798, 2)
	tl.advance(10 * time.Millisecond)
	tl.advance(900 * time.Millisecond)

	require.True(t, tl.Pause())
	tl.advance(5 * time.Second)
	assert.Equal(t, types.GameStatePaused, tl.State())

	require.True(t, tl.Resume())
	assert.Equal(t, types.GameStateRallyReset, tl.State())

	tl.advance(900 * time.Millisecond)
	assert.Equal(t, types.GameStateRallyReset, tl.State())
	tl.advance(100 * time.Millisecond)
	assert.Equal(t, types.GameStateRunning, tl.State())
}

func TestGameLoop_MatchOver(t *testing.T) {
	tl := newTestLoop(t, func(cfg *config.Config) {
		cfg.TargetScore = 5
	})
	require.True(t, tl.Start())

	for i := 0; i < 5; i++ {
		require.Equal(t, types.GameStateRunning, tl.State())
		tl.putBall(798, 2)
		tl.advance(10 * time.Millisecond)
		if i < 4 {
			require.Equal(t, types.GameStateRallyReset, tl.State())
			tl.advance(time.Second)
		}
	}

	assert.Equal(t, types.GameStateMatchOver, tl.State())
	assert.Equal(t, [types.NumPlayers]int{0, 0}, tl.Scores())
	assert.Equal(t, 0, tl.scheduler.Pending())

	result, ok := tl.Result()
	require.True(t, ok)
	assert.Equal(t, types.Player1, result.Winner)
	assert.Equal(t, [types.NumPlayers]int{5, 0}, result.Scores)
	assert.Equal(t, "Player1 5 - 0 Player2", result.String())
	assert.Contains(t, tl.frames.texts, "Player1 wins!")
	assert.Contains(t, tl.frames.texts, "Player1 5")

	over := tl.Snapshot()
	tl.advance(10 * time.Second)
	assert.Equal(t, over, tl.Snapshot())

	assert.False(t, tl.Start())
	assert.False(t, tl.Pause())
	assert.False(t, tl.Resume())
}

func TestGameLoop_Restart(t *testing.T) {
	tl := newTestLoop(t, func(cfg *config.Config) {
		cfg.TargetScore = 1
		cfg.Multiplayer = true
	})
	assert.False(t, tl.Restart())

	require.True(t, tl.Start())
	assert.False(t, tl.Restart())

	tl.Input().KeyDown("w")
	tl.advance(50 * time.Millisecond)
	assert.Less(t, tl.Snapshot().Paddles[types.Player1].Position.Y, 300.0)

	tl.putBall(2, -2)
	tl.advance(10 * time.Millisecond)
	require.Equal(t, types.GameStateMatchOver, tl.State())

	require.True(t, tl.Restart())
	assert.Equal(t, types.GameStateNotStarted, tl.State())
	assert.Equal(t, [types.NumPlayers]int{0, 0}, tl.Scores())
	_, ok := tl.Result()
	assert.False(t, ok)
	assert.Contains(t, tl.frames.texts, TitleMessage)

	s := tl.Snapshot()
	assert.Equal(t, tl.Arena().NewPaddle(types.Player1).Position, s.Paddles[types.Player1].Position)
	assert.Equal(t, tl.Arena().NewPaddle(types.Player2).Position, s.Paddles[types.Player2].Position)

	// held keys do not carry over into the next match
	require.True(t, tl.Start())
	tl.advance(10 * time.Millisecond)
	assert.Equal(t, 300.0, tl.Snapshot().Paddles[types.Player1].Position.Y)
}

func TestGameLoop_MultiplayerInput(t *testing.T) {
	tl := newTestLoop(t, func(cfg *config.Config) {
		cfg.Multiplayer = true
	})
	require.True(t, tl.Start())

	tl.Input().KeyDown("ArrowUp")
	tl.advance(10 * time.Millisecond)
	assert.Equal(t, 296.0, tl.Snapshot().Paddles[types.Player2].Position.Y)

	tl.Input().KeyUp("ArrowUp")
	tl.Input().KeyDown("w")
	tl.advance(10 * time.Millisecond)
	s := tl.Snapshot()
	assert.Equal(t, 296.0, s.Paddles[types.Player2].Position.Y)
	assert.Equal(t, 296.0, s.Paddles[types.Player1].Position.Y)
}

func TestGameLoop_InputOnlyAppliesOnTicks(t *testing.T) {
	tl := newTestLoop(t, nil)
	require.True(t, tl.Start())

	tl.Input().KeyDown("s")
	assert.Equal(t, 300.0, tl.Snapshot().Paddles[types.Player1].Position.Y)

	tl.advance(10 * time.Millisecond)
	assert.Equal(t, 304.0, tl.Snapshot().Paddles[types.Player1].Position.Y)
}

func TestGameLoop_ComputerOpponentFollowsBall(t *testing.T) {
	tl := newTestLoop(t, func(cfg *config.Config) {
		cfg.Difficulty = "easy"
	})
	require.True(t, tl.Start())

	tl.ball.Position = kinematic.Vector{X: 400, Y: 100}
	tl.ball.Velocity = kinematic.Vector{X: 2}
	tl.advance(10 * time.Millisecond)

	// easy plays at 0.6 of the base speed, moving twice that per tick
	assert.InDelta(t, 297.6, tl.Snapshot().Paddles[types.Player2].Position.Y, 1e-9)
}

func TestGameLoop_PaddlesStayInBounds(t *testing.T) {
	tl := newTestLoop(t, func(cfg *config.Config) {
		cfg.Multiplayer = true
	})
	require.True(t, tl.Start())

	tl.Input().KeyDown("w")
	tl.Input().KeyDown("arrowdown")
	arena := tl.Arena()
	for i := 0; i < 3000; i++ {
		tl.advance(10 * time.Millisecond)
		for _, p := range tl.Snapshot().Paddles {
			require.GreaterOrEqual(t, p.Position.Y, p.HalfHeight())
			require.LessOrEqual(t, p.Position.Y, arena.Height-p.HalfHeight())
		}
	}
}

func TestGameLoop_Hints(t *testing.T) {
	cfg := config.Default()
	frames := &frameRecorder{}
	l, err := NewGameLoop(NewGameLoopOptions{
		Config:    cfg,
		Renderer:  frames,
		Scheduler: scheduler.New(scheduler.NewManualClock(time.Unix(0, 0))),
		Hints: map[types.GameState]string{
			types.GameStateNotStarted: "press start",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, frames.texts, "press start")

	require.True(t, l.Start())
	assert.NotContains(t, frames.texts, "press start")
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestGameLoop_BallStaysBetweenWalls(t *testing.T) {
	const target = 3
	tl := newTestLoop(t, func(cfg *config.Config) {
		cfg.Multiplayer = true
		cfg.TargetScore = target
	})
	require.True(t, tl.Start())

	rng := rand.New(rand.NewSource(7))
	keys := []string{"w", "s", "arrowup", "arrowdown"}
	height := tl.Arena().Height
	matches := 0

	for i := 0; i < 50000; i++ {
		key := keys[rng.Intn(len(keys))]
		if rng.Intn(2) == 0 {
			tl.Input().KeyDown(key)
		} else {
			tl.Input().KeyUp(key)
		}
		tl.advance(10 * time.Millisecond)

		s := tl.Snapshot()
		ball := s.Ball
		slack := abs(ball.Velocity.Y)
		require.GreaterOrEqual(t, ball.Top(), -slack, "tick %d", i)
		require.LessOrEqual(t, ball.Bottom(), height+slack, "tick %d", i)
		for _, score := range s.Scores {
			require.Less(t, score, target)
		}

		if s.State == types.GameStateMatchOver {
			require.NotNil(t, s.Result)
			assert.Equal(t, target, max(s.Result.Scores[types.Player1], s.Result.Scores[types.Player2]))
			matches++
			require.True(t, tl.Restart())
			require.True(t, tl.Start())
		}
	}
	assert.Greater(t, matches, 0)
}
