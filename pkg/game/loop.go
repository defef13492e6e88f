package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/scheduler"
	"github.com/google/uuid"
)

const (
	TitleMessage  = "PONG"
	PausedMessage = "Paused"
)

// MatchResult is the outcome of a finished match.
type MatchResult struct {
	MatchID    string                   `json:"matchId"`
	Winner     types.Player             `json:"winner"`
	WinnerName string                   `json:"winnerName"`
	Scores     [types.NumPlayers]int    `json:"scores"`
	Names      [types.NumPlayers]string `json:"names"`
	Rallies    int                      `json:"rallies"`
}

func (r MatchResult) String() string {
	return fmt.Sprintf("%s %d - %d %s", r.Names[types.Player1], r.Scores[types.Player1], r.Scores[types.Player2], r.Names[types.Player2])
}

// Snapshot is a copy of the loop's observable state.
type Snapshot struct {
	MatchID string                         `json:"matchId"`
	State   types.GameState                `json:"state"`
	Scores  [types.NumPlayers]int          `json:"scores"`
	Paddles [types.NumPlayers]types.Paddle `json:"paddles"`
	Ball    types.Ball                     `json:"ball"`
	Rally   int                            `json:"rally"`
	Ticks   uint64                         `json:"ticks"`
	Result  *MatchResult                   `json:"result,omitempty"`
}

// GameLoop owns the game state and advances it one tick at a time on its
// scheduler. It is not safe for concurrent use: entry points must be called
// from the goroutine that runs the scheduler. Only the input controller
// accepts calls from other goroutines.
type GameLoop struct {
	cfg       config.Config
	arena     Arena
	physics   Physics
	renderer  Renderer
	scheduler *scheduler.Scheduler
	input     *InputController
	opponent  *ComputerOpponent
	scores    *ScoreKeeper
	rng       *rand.Rand
	logger    *log.Logger
	hints     map[types.GameState]string

	state      types.GameState
	pausedFrom types.GameState
	paddles    [types.NumPlayers]*types.Paddle
	ball       *types.Ball
	timer      *scheduler.Timer

	matchID string
	rally   int
	ticks   uint64
	result  *MatchResult
}

type NewGameLoopOptions struct {
	Config    config.Config
	Renderer  Renderer
	Scheduler *scheduler.Scheduler
	// Input defaults to a controller built from the configured key bindings.
	Input *InputController
	// Rand picks the serve direction. Defaults to a time seeded source.
	Rand *rand.Rand
	// Logger defaults to the package logger.
	Logger *log.Logger
	// Hints are drawn below the main message in the given states.
	Hints map[types.GameState]string
}

// NewGameLoop validates the options and returns a loop in the NotStarted
// state with its first frame drawn.
func NewGameLoop(opts NewGameLoopOptions) (*GameLoop, error) {
	if opts.Renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("scheduler is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	input := opts.Input
	if input == nil {
		var err error
		input, err = NewInputController(opts.Config.Player1Keys, opts.Config.Player2Keys, opts.Config.Multiplayer)
		if err != nil {
			return nil, fmt.Errorf("failed to create input controller: %v", err)
		}
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	arena := NewArena(opts.Config)
	l := &GameLoop{
		cfg:   opts.Config,
		arena: arena,
		physics: Physics{
			BallSpeed:        opts.Config.GameSpeed,
			BounceSmoothness: opts.Config.BounceSmoothness,
			BounceSpeedRatio: opts.Config.BounceSpeedRatio,
			ArenaHeight:      arena.Height,
		},
		renderer:  opts.Renderer,
		scheduler: opts.Scheduler,
		input:     input,
		opponent:  NewComputerOpponent(ParseDifficulty(opts.Config.Difficulty)),
		scores:    NewScoreKeeper(opts.Config.TargetScore),
		rng:       rng,
		logger:    logger,
		hints:     opts.Hints,
		state:     types.GameStateNotStarted,
	}
	l.resetObjects()
	l.draw()
	return l, nil
}

// Start begins a match from NotStarted. It returns false in any other state.
func (l *GameLoop) Start() bool {
	if l.state != types.GameStateNotStarted {
		return false
	}

	l.matchID = uuid.New().String()
	l.rally = 1
	l.ticks = 0
	l.result = nil
	l.scores.Reset()
	l.resetObjects()
	l.serve()
	l.state = types.GameStateRunning
	l.matchLogger().Info("Match started: target=%d multiplayer=%t difficulty=%s", l.scores.Target(), l.cfg.Multiplayer, l.opponent.Difficulty())

	l.draw()
	l.scheduleTick()
	return true
}

// Pause suspends a running match or rally reset. It returns false when there
// is nothing to pause.
func (l *GameLoop) Pause() bool {
	if l.state != types.GameStateRunning && l.state != types.GameStateRallyReset {
		return false
	}

	l.stopTimer()
	l.pausedFrom = l.state
	l.state = types.GameStatePaused
	l.matchLogger().Debug("Paused from %s", l.pausedFrom)
	l.draw()
	return true
}

// Resume continues a paused match where it left off. An interrupted rally
// reset waits its full delay again.
func (l *GameLoop) Resume() bool {
	if l.state != types.GameStatePaused {
		return false
	}

	l.state = l.pausedFrom
	l.matchLogger().Debug("Resumed into %s", l.state)
	l.draw()
	if l.state == types.GameStateRallyReset {
		l.timer = l.scheduler.After(l.cfg.RallyDelay, l.serveRally)
	} else {
		l.scheduleTick()
	}
	return true
}

// Blur pauses the match when the host loses focus.
func (l *GameLoop) Blur() bool {
	return l.Pause()
}

// Focus resumes the match when the host regains focus.
func (l *GameLoop) Focus() bool {
	return l.Resume()
}

// Restart returns a finished match to NotStarted with scores and positions
// reset. It returns false unless the match is over.
func (l *GameLoop) Restart() bool {
	if l.state != types.GameStateMatchOver {
		return false
	}

	l.state = types.GameStateNotStarted
	l.scores.Reset()
	l.resetObjects()
	l.input.Reset()
	l.result = nil
	l.matchLogger().Debug("Restarted")
	l.draw()
	return true
}

func (l *GameLoop) State() types.GameState {
	return l.state
}

func (l *GameLoop) Scores() [types.NumPlayers]int {
	return l.scores.Scores()
}

// Result returns the outcome of the last finished match, if it is still shown.
func (l *GameLoop) Result() (MatchResult, bool) {
	if l.result == nil {
		return MatchResult{}, false
	}
	return *l.result, true
}

func (l *GameLoop) Input() *InputController {
	return l.input
}

func (l *GameLoop) Arena() Arena {
	return l.arena
}

func (l *GameLoop) Snapshot() Snapshot {
	s := Snapshot{
		MatchID: l.matchID,
		State:   l.state,
		Scores:  l.scores.Scores(),
		Paddles: [types.NumPlayers]types.Paddle{*l.paddles[types.Player1].Copy(), *l.paddles[types.Player2].Copy()},
		Ball:    *l.ball.Copy(),
		Rally:   l.rally,
		Ticks:   l.ticks,
	}
	if l.result != nil {
		result := *l.result
		s.Result = &result
	}
	return s
}

func (l *GameLoop) scheduleTick() {
	l.timer = l.scheduler.After(l.cfg.TickInterval, l.tick)
}

func (l *GameLoop) stopTimer() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

func (l *GameLoop) tick() {
	l.timer = nil
	if l.state != types.GameStateRunning {
		return
	}
	l.ticks++

	l.input.Poll()
	for i, paddle := range l.paddles {
		player := types.Player(i)
		intent, speed := l.control(player)
		MovePaddle(paddle, intent, speed, l.arena.Height)
	}

	l.physics.Integrate(l.ball, l.paddles[types.Player1], l.paddles[types.Player2])
	l.logger.Trace("Tick %d: ball=(%0.1f, %0.1f) v=(%0.2f, %0.2f)", l.ticks, l.ball.Position.X, l.ball.Position.Y, l.ball.Velocity.X, l.ball.Velocity.Y)

	if event, ok := l.scores.CheckScore(l.ball, l.arena.Width); ok {
		l.point(event)
		return
	}

	l.draw()
	l.scheduleTick()
}

// control returns who steers the player's paddle this tick and how fast.
func (l *GameLoop) control(player types.Player) (types.Intent, float64) {
	if player == types.Player2 && !l.cfg.Multiplayer {
		return l.opponent.Intent(l.ball, l.paddles[player]), l.opponent.Speed(l.cfg.GameSpeed)
	}
	return l.input.Intent(player), l.cfg.GameSpeed
}

func (l *GameLoop) point(event ScoreEvent) {
	logger := l.matchLogger()
	logger.Info("%s scored: %d - %d", l.name(event.Scorer), l.scores.Score(types.Player1), l.scores.Score(types.Player2))

	if winner, ok := l.scores.Winner(); ok {
		l.result = &MatchResult{
			MatchID:    l.matchID,
			Winner:     winner,
			WinnerName: l.name(winner),
			Scores:     l.scores.Scores(),
			Names:      [types.NumPlayers]string{l.cfg.Player1Name, l.cfg.Player2Name},
			Rallies:    l.rally,
		}
		l.state = types.GameStateMatchOver
		l.scores.Reset()
		l.resetObjects()
		logger.Info("Match over: %s", l.result)
		l.draw()
		return
	}

	l.state = types.GameStateRallyReset
	l.rally++
	l.resetObjects()
	l.serve()
	l.draw()
	l.timer = l.scheduler.After(l.cfg.RallyDelay, l.serveRally)
}

// serveRally ends a rally reset.
func (l *GameLoop) serveRally() {
	l.timer = nil
	if l.state != types.GameStateRallyReset {
		return
	}
	l.state = types.GameStateRunning
	l.matchLogger().Debug("Rally %d served", l.rally)
	l.scheduleTick()
}

func (l *GameLoop) resetObjects() {
	l.paddles[types.Player1] = l.arena.NewPaddle(types.Player1)
	l.paddles[types.Player2] = l.arena.NewPaddle(types.Player2)
	l.ball = l.arena.NewBall(kinematic.Vector{})
}

// serve sends the ball horizontally toward a random side at the base speed.
func (l *GameLoop) serve() {
	direction := 1.0
	if l.rng.Intn(2) == 0 {
		direction = -1.0
	}
	l.ball.Velocity = kinematic.Vector{X: direction * l.cfg.GameSpeed, Y: 0}
}

func (l *GameLoop) name(player types.Player) string {
	if player == types.Player2 {
		return l.cfg.Player2Name
	}
	return l.cfg.Player1Name
}

func (l *GameLoop) matchLogger() *log.Logger {
	if l.matchID == "" {
		return l.logger
	}
	return l.logger.With("match", l.matchID)
}
