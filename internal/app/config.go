package app

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig reports configuration values the game cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the startup parameters for the game binaries.
type Config struct {
	Width         int
	Height        int
	Window        int
	TPS           int
	Seed          int64
	Speed         float64
	StrictCorners bool
	Sound         bool
	Volume        float64
}

// NewConfig returns a Config populated with sensible defaults: a 50x50 maze
// in a 540x540 window. A zero seed means a fresh time-based seed per run.
func NewConfig() *Config {
	return &Config{
		Width:  50,
		Height: 50,
		Window: 540,
		TPS:    60,
		Speed:  20,
		Sound:  true,
		Volume: 0.5,
	}
}

// LoadEnv overlays values from the process environment, after loading the
// optional dotenv files (".env" when none are given). Unparsable values are
// reported as errors; missing ones keep their current value.
func (c *Config) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[config] dotenv not loaded: %v", err)
	}
	var errs []error
	lookupInt(&c.Width, "MAZE_WIDTH", &errs)
	lookupInt(&c.Height, "MAZE_HEIGHT", &errs)
	lookupInt(&c.Window, "MAZE_WINDOW", &errs)
	lookupInt(&c.TPS, "MAZE_TPS", &errs)
	if v, ok := os.LookupEnv("MAZE_SEED"); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("MAZE_SEED: %w", err))
		} else {
			c.Seed = parsed
		}
	}
	lookupFloat(&c.Speed, "MAZE_SPEED", &errs)
	lookupFloat(&c.Volume, "MAZE_VOLUME", &errs)
	lookupBool(&c.Sound, "MAZE_SOUND", &errs)
	lookupBool(&c.StrictCorners, "MAZE_STRICT_CORNERS", &errs)
	return errors.Join(errs...)
}

// Bind attaches the configuration to the provided FlagSet. Flags override
// values loaded from the environment.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "maze width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "maze height in cells")
	fs.IntVar(&c.Window, "window", c.Window, "window edge length in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "maze seed (0 picks a random seed)")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "player speed in world units per second")
	fs.BoolVar(&c.StrictCorners, "strict-corners", c.StrictCorners, "block diagonal steps that clip a wall corner")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a chime when the exit is reached")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "chime volume in [0,1]")
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: maze size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Window <= 0:
		return fmt.Errorf("%w: window %d", ErrInvalidConfig, c.Window)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed %g", ErrInvalidConfig, c.Speed)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume %g", ErrInvalidConfig, c.Volume)
	}
	return nil
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func lookupInt(dst *int, key string, errs *[]error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = parsed
}

func lookupFloat(dst *float64, key string, errs *[]error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = parsed
}

func lookupBool(dst *bool, key string, errs *[]error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = parsed
}
