package types

import "fmt"

// Player identifies one side of the arena.
type Player int

const (
	Player1 Player = iota
	Player2
)

// NumPlayers is the number of paddles in a match.
const NumPlayers = 2

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// Direction is a vertical paddle direction.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}
	return "unknown"
}

// Intent is a player's directional intent for one tick. At most one of Up
// and Down is set.
type Intent struct {
	Up   bool
	Down bool
}

// Action is what a bound key does.
type Action struct {
	Player    Player
	Direction Direction
}
