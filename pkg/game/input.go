package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/queue"
)

// KeyEvent is a key transition reported by the host.
type KeyEvent struct {
	Key     string
	Pressed bool
}

// InputController turns key transitions into per-player intents. Hosts may
// report transitions from any goroutine. They are queued and only applied
// when the game loop polls at the start of a tick.
type InputController struct {
	bindings    map[string]types.Action
	keys        [types.NumPlayers]config.KeyBindings
	multiplayer bool

	events  queue.Queue[KeyEvent]
	pressed map[string]bool

	// releases that did not fit in the queue, applied on the next poll
	lock            sync.Mutex
	droppedReleases map[string]bool
}

// NewInputController validates the bindings and returns a controller.
// Player 2's bindings are only used in multiplayer.
func NewInputController(player1, player2 config.KeyBindings, multiplayer bool) (*InputController, error) {
	c := &InputController{
		bindings:    make(map[string]types.Action),
		multiplayer: multiplayer,
		events:      queue.NewInMemoryQueue[KeyEvent](queue.QueueBufferSize),
		pressed:     make(map[string]bool),

		droppedReleases: make(map[string]bool),
	}

	if err := c.bind(types.Player1, player1); err != nil {
		return nil, err
	}
	if multiplayer {
		if err := c.bind(types.Player2, player2); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *InputController) bind(player types.Player, keys config.KeyBindings) error {
	keys = config.KeyBindings{Up: normalizeKey(keys.Up), Down: normalizeKey(keys.Down)}
	for _, b := range []struct {
		key       string
		direction types.Direction
	}{
		{keys.Up, types.DirectionUp},
		{keys.Down, types.DirectionDown},
	} {
		if b.key == "" {
			return fmt.Errorf("%s has no %s key", player, b.direction)
		}
		if existing, ok := c.bindings[b.key]; ok {
			return fmt.Errorf("key %q is bound to both %s %s and %s %s", b.key, existing.Player, existing.Direction, player, b.direction)
		}
		c.bindings[b.key] = types.Action{Player: player, Direction: b.direction}
	}
	c.keys[player] = keys
	return nil
}

// KeyDown queues a key press.
func (c *InputController) KeyDown(key string) {
	c.enqueue(KeyEvent{Key: normalizeKey(key), Pressed: true})
}

// KeyUp queues a key release.
func (c *InputController) KeyUp(key string) {
	c.enqueue(KeyEvent{Key: normalizeKey(key), Pressed: false})
}

func (c *InputController) enqueue(event KeyEvent) {
	if _, ok := c.bindings[event.Key]; !ok {
		return
	}
	err := c.events.Enqueue(event)

	c.lock.Lock()
	defer c.lock.Unlock()
	switch {
	case err == nil && event.Pressed:
		// a newer press supersedes an older dropped release
		delete(c.droppedReleases, event.Key)
	case err != nil && event.Pressed:
		log.Warn("Dropping key press %s: %v", event.Key, err)
	case err != nil:
		log.Warn("Deferring key release %s to the next poll: %v", event.Key, err)
		c.droppedReleases[event.Key] = true
	}
}

// Poll applies queued key transitions in order. Only the game loop calls it.
func (c *InputController) Poll() {
	for _, event := range c.events.ReadAllMessages() {
		if event.Pressed {
			c.pressed[event.Key] = true
		} else {
			delete(c.pressed, event.Key)
		}
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	for key := range c.droppedReleases {
		delete(c.pressed, key)
	}
	clear(c.droppedReleases)
}

// Intent returns the player's intent from the currently held keys. Up wins
// when both keys are held.
func (c *InputController) Intent(player types.Player) types.Intent {
	if player == types.Player2 && !c.multiplayer {
		return types.Intent{}
	}
	keys := c.keys[player]
	switch {
	case c.pressed[keys.Up]:
		return types.Intent{Up: true}
	case c.pressed[keys.Down]:
		return types.Intent{Down: true}
	}
	return types.Intent{}
}

// IsBound reports whether the key moves a paddle.
func (c *InputController) IsBound(key string) bool {
	_, ok := c.bindings[normalizeKey(key)]
	return ok
}

// Reset releases every key and drops queued transitions.
func (c *InputController) Reset() {
	c.events.ClearQueue()
	clear(c.pressed)

	c.lock.Lock()
	defer c.lock.Unlock()
	clear(c.droppedReleases)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
