package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/joho/godotenv"
)

// KeyBindings are the keys that move one paddle.
type KeyBindings struct {
	Up   string
	Down string
}

// Colors used when drawing a frame.
type Colors struct {
	Background color.Color
	Paddle     color.Color
	Ball       color.Color
	Score      color.Color
	Message    color.Color
}

// Config holds the tunables of a game session. Ratios are relative to the
// arena and are resolved once when the session is created.
type Config struct {
	// Arena
	ArenaWidth  float64
	ArenaHeight float64

	// Object dimensions
	PaddleHeightRatio        float64
	PaddleWidthRatio         float64
	PaddleBorderSpacingRatio float64
	BallRadiusRatio          float64

	// Text
	ScoreFontSizeRatio   float64
	MessageFontSizeRatio float64

	// Physics
	GameSpeed        float64
	BounceSmoothness float64
	BounceSpeedRatio float64

	// Timing
	TickInterval time.Duration
	RallyDelay   time.Duration

	// Match
	TargetScore int
	Multiplayer bool
	// Difficulty is one of easy, normal or hard. Anything else plays as normal.
	Difficulty string

	// Players
	Player1Name string
	Player2Name string
	Player1Keys KeyBindings
	Player2Keys KeyBindings

	Colors Colors
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ArenaWidth:  constants.ArenaWidth,
		ArenaHeight: constants.ArenaHeight,

		PaddleHeightRatio:        constants.PaddleHeightRatio,
		PaddleWidthRatio:         constants.PaddleWidthRatio,
		PaddleBorderSpacingRatio: constants.PaddleBorderSpacingRatio,
		BallRadiusRatio:          constants.BallRadiusRatio,

		ScoreFontSizeRatio:   constants.ScoreFontSizeRatio,
		MessageFontSizeRatio: constants.MessageFontSizeRatio,

		GameSpeed:        constants.GameSpeed,
		BounceSmoothness: constants.BounceSmoothness,
		BounceSpeedRatio: constants.BounceSpeedRatio,

		TickInterval: constants.TickInterval,
		RallyDelay:   constants.RallyDelay,

		TargetScore: constants.TargetScore,
		Multiplayer: false,
		Difficulty:  constants.Difficulty,

		Player1Name: constants.Player1Name,
		Player2Name: constants.Player2Name,
		Player1Keys: KeyBindings{Up: constants.Player1UpKey, Down: constants.Player1DownKey},
		Player2Keys: KeyBindings{Up: constants.Player2UpKey, Down: constants.Player2DownKey},

		Colors: Colors{
			Background: constants.ColorBackground,
			Paddle:     constants.ColorPaddle,
			Ball:       constants.ColorBall,
			Score:      constants.ColorScore,
			Message:    constants.ColorMessage,
		},
	}
}

// Load returns the default configuration overridden by PONG_* environment
// variables. A .env file in the working directory is loaded first if present.
func Load() Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := Default()

	cfg.ArenaWidth = getEnvFloat("PONG_ARENA_WIDTH", cfg.ArenaWidth)
	cfg.ArenaHeight = getEnvFloat("PONG_ARENA_HEIGHT", cfg.ArenaHeight)

	cfg.PaddleHeightRatio = getEnvFloat("PONG_PADDLE_HEIGHT_RATIO", cfg.PaddleHeightRatio)
	cfg.PaddleWidthRatio = getEnvFloat("PONG_PADDLE_WIDTH_RATIO", cfg.PaddleWidthRatio)
	cfg.PaddleBorderSpacingRatio = getEnvFloat("PONG_PADDLE_BORDER_SPACING_RATIO", cfg.PaddleBorderSpacingRatio)
	cfg.BallRadiusRatio = getEnvFloat("PONG_BALL_RADIUS_RATIO", cfg.BallRadiusRatio)

	cfg.GameSpeed = getEnvFloat("PONG_GAME_SPEED", cfg.GameSpeed)
	cfg.BounceSmoothness = getEnvFloat("PONG_BOUNCE_SMOOTHNESS", cfg.BounceSmoothness)
	cfg.BounceSpeedRatio = getEnvFloat("PONG_BOUNCE_SPEED_RATIO", cfg.BounceSpeedRatio)

	cfg.TickInterval = getEnvDuration("PONG_TICK_INTERVAL", cfg.TickInterval)
	cfg.RallyDelay = getEnvDuration("PONG_RALLY_DELAY", cfg.RallyDelay)

	cfg.TargetScore = getEnvInt("PONG_TARGET_SCORE", cfg.TargetScore)
	cfg.Multiplayer = getEnvBool("PONG_MULTIPLAYER", cfg.Multiplayer)
	cfg.Difficulty = getEnv("PONG_DIFFICULTY", cfg.Difficulty)

	cfg.Player1Name = getEnv("PONG_PLAYER1_NAME", cfg.Player1Name)
	cfg.Player2Name = getEnv("PONG_PLAYER2_NAME", cfg.Player2Name)
	cfg.Player1Keys.Up = strings.ToLower(getEnv("PONG_PLAYER1_UP", cfg.Player1Keys.Up))
	cfg.Player1Keys.Down = strings.ToLower(getEnv("PONG_PLAYER1_DOWN", cfg.Player1Keys.Down))
	cfg.Player2Keys.Up = strings.ToLower(getEnv("PONG_PLAYER2_UP", cfg.Player2Keys.Up))
	cfg.Player2Keys.Down = strings.ToLower(getEnv("PONG_PLAYER2_DOWN", cfg.Player2Keys.Down))

	return cfg
}

// Validate checks that the configuration describes a playable session.
// Difficulty is not checked since unknown values fall back to normal.
func (c Config) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("arena must have a positive size, got %vx%v", c.ArenaWidth, c.ArenaHeight)
	}

	ratios := []struct {
		name  string
		value float64
	}{
		{"paddle height ratio", c.PaddleHeightRatio},
		{"paddle width ratio", c.PaddleWidthRatio},
		{"paddle border spacing ratio", c.PaddleBorderSpacingRatio},
		{"ball radius ratio", c.BallRadiusRatio},
		{"score font size ratio", c.ScoreFontSizeRatio},
		{"message font size ratio", c.MessageFontSizeRatio},
	}
	for _, r := range ratios {
		if r.value <= 0 || r.value >= 1 {
			return fmt.Errorf("%s must be in (0, 1), got %v", r.name, r.value)
		}
	}

	if c.GameSpeed <= 0 {
		return fmt.Errorf("game speed must be positive, got %v", c.GameSpeed)
	}
	if c.BounceSmoothness < 0 || c.BounceSpeedRatio < 0 {
		return fmt.Errorf("bounce coefficients must not be negative")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.RallyDelay < 0 {
		return fmt.Errorf("rally delay must not be negative, got %s", c.RallyDelay)
	}
	if c.TargetScore < 1 {
		return fmt.Errorf("target score must be at least 1, got %d", c.TargetScore)
	}

	bindings := []KeyBindings{c.Player1Keys}
	if c.Multiplayer {
		bindings = append(bindings, c.Player2Keys)
	}
	seen := make(map[string]bool)
	for _, b := range bindings {
		for _, key := range []string{b.Up, b.Down} {
			key = strings.ToLower(key)
			if key == "" {
				return fmt.Errorf("key bindings must not be empty")
			}
			if seen[key] {
				return fmt.Errorf("key %q is bound more than once", key)
			}
			seen[key] = true
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		log.Warn("Ignoring %s: %v", key, err)
		return defaultValue
	}
	return i
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warn("Ignoring %s: %v", key, err)
		return defaultValue
	}
	return f
}

func getEnvBool(key string, defaultValue bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn("Ignoring %s: %v", key, err)
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn("Ignoring %s: %v", key, err)
		return defaultValue
	}
	return d
}
