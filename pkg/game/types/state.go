package types

// GameState is the state of the game loop's state machine.
type GameState int

const (
	GameStateNotStarted GameState = iota
	GameStateRunning
	GameStatePaused
	// GameStateRallyReset is the short pause between a point and the next serve.
	GameStateRallyReset
	GameStateMatchOver
)

func (s GameState) String() string {
	switch s {
	case GameStateNotStarted:
		return "NotStarted"
	case GameStateRunning:
		return "Running"
	case GameStatePaused:
		return "Paused"
	case GameStateRallyReset:
		return "RallyReset"
	case GameStateMatchOver:
		return "MatchOver"
	}
	return "Unknown"
}
