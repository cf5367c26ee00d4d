// Package config loads the pathgrid settings from defaults, an optional
// YAML file, PATHGRID_* environment variables and command-line flags, in
// increasing order of precedence, and builds the structured logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/search"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override, e.g. PATHGRID_ROWS.
const EnvPrefix = "PATHGRID"

// Keys shared by flags, the config file and the environment.
const (
	KeyRows         = "rows"
	KeyCols         = "cols"
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyRadius       = "radius"
	KeyDiagonal     = "diagonal"
	KeyStepDelay    = "step-delay"
	KeyAlgorithm    = "algorithm"
	KeyNudge        = "nudge"
	KeyLogFile      = "log-file"
	KeyLogLevel     = "log-level"
	KeyLogMaxSize   = "log-max-size"
	KeyLogMaxAge    = "log-max-age"
	KeyOTLPEndpoint = "otlp-endpoint"
)

// Config is the resolved configuration.
type Config struct {
	Rows      int
	Cols      int
	Width     float64
	Height    float64
	Radius    float64
	Diagonal  bool
	StepDelay time.Duration
	Algorithm string
	Nudge     float64 // pixels per nudge key press

	LogFile    string
	LogLevel   string
	LogMaxSize int // megabytes
	LogMaxAge  int // days

	OTLPEndpoint string
}

// Default returns the classic board: 8×20 cells on an 800×320 canvas,
// radius 10, 15ms animation step, Dijkstra.
func Default() Config {
	l := gridgraph.DefaultLayout()

	return Config{
		Rows:       l.Rows,
		Cols:       l.Cols,
		Width:      l.Width,
		Height:     l.Height,
		Radius:     l.Radius,
		StepDelay:  15 * time.Millisecond,
		Algorithm:  search.Dijkstra.String(),
		Nudge:      5,
		LogLevel:   "info",
		LogMaxSize: 10,
		LogMaxAge:  7,
	}
}

// SetDefaults registers the values of Default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyRows, d.Rows)
	v.SetDefault(KeyCols, d.Cols)
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyRadius, d.Radius)
	v.SetDefault(KeyDiagonal, d.Diagonal)
	v.SetDefault(KeyStepDelay, d.StepDelay)
	v.SetDefault(KeyAlgorithm, d.Algorithm)
	v.SetDefault(KeyNudge, d.Nudge)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogMaxSize, d.LogMaxSize)
	v.SetDefault(KeyLogMaxAge, d.LogMaxAge)
	v.SetDefault(KeyOTLPEndpoint, d.OTLPEndpoint)
}

// RegisterFlags adds the configuration flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int(KeyRows, d.Rows, "number of grid rows")
	fs.Int(KeyCols, d.Cols, "number of grid columns")
	fs.Float64(KeyWidth, d.Width, "canvas width in pixels")
	fs.Float64(KeyHeight, d.Height, "canvas height in pixels")
	fs.Float64(KeyRadius, d.Radius, "node radius in pixels")
	fs.Bool(KeyDiagonal, d.Diagonal, "connect diagonal neighbors too")
	fs.Duration(KeyStepDelay, d.StepDelay, "delay between animation steps")
	fs.String(KeyAlgorithm, d.Algorithm, "search algorithm (dijkstra, bfs, dfs, astar, greedy)")
	fs.Float64(KeyNudge, d.Nudge, "pixels a grabbed node moves per key press")
	fs.String(KeyLogFile, d.LogFile, "rotating log file (logs are discarded when empty)")
	fs.String(KeyLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.Int(KeyLogMaxSize, d.LogMaxSize, "log file size in megabytes before rotation")
	fs.Int(KeyLogMaxAge, d.LogMaxAge, "days to keep rotated log files")
	fs.String(KeyOTLPEndpoint, d.OTLPEndpoint, "OTLP/HTTP trace endpoint (traces are discarded when empty)")
}

// Bind wires v to PATHGRID_* variables and, when fs is not nil, to flags.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if fs == nil {
		return nil
	}
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("config: bind flags: %w", err)
	}

	return nil
}

// ReadFile reads path into v. With an empty path it looks for
// $HOME/.pathgrid.yaml and silently skips a missing file.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(".pathgrid")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("config: read home config: %w", err)
	}

	return nil
}

// FromViper resolves a Config from v and validates it.
func FromViper(v *viper.Viper) (Config, error) {
	c := Config{
		Rows:         v.GetInt(KeyRows),
		Cols:         v.GetInt(KeyCols),
		Width:        v.GetFloat64(KeyWidth),
		Height:       v.GetFloat64(KeyHeight),
		Radius:       v.GetFloat64(KeyRadius),
		Diagonal:     v.GetBool(KeyDiagonal),
		StepDelay:    v.GetDuration(KeyStepDelay),
		Algorithm:    v.GetString(KeyAlgorithm),
		Nudge:        v.GetFloat64(KeyNudge),
		LogFile:      v.GetString(KeyLogFile),
		LogLevel:     v.GetString(KeyLogLevel),
		LogMaxSize:   v.GetInt(KeyLogMaxSize),
		LogMaxAge:    v.GetInt(KeyLogMaxAge),
		OTLPEndpoint: v.GetString(KeyOTLPEndpoint),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load is SetDefaults, Bind, ReadFile and FromViper in one call.
func Load(v *viper.Viper, fs *pflag.FlagSet, path string) (Config, error) {
	SetDefaults(v)
	if err := Bind(v, fs); err != nil {
		return Config{}, err
	}
	if err := ReadFile(v, path); err != nil {
		return Config{}, err
	}

	return FromViper(v)
}

// Validate checks every field and returns the first violation wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1:
		return fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidConfig, c.Rows)
	case c.Cols < 1:
		return fmt.Errorf("%w: cols must be at least 1, got %d", ErrInvalidConfig, c.Cols)
	case c.Radius < 0:
		return fmt.Errorf("%w: radius must be non-negative, got %v", ErrInvalidConfig, c.Radius)
	case c.Width <= 4*c.Radius:
		return fmt.Errorf("%w: width %v leaves no room for radius %v", ErrInvalidConfig, c.Width, c.Radius)
	case c.Height <= 4*c.Radius:
		return fmt.Errorf("%w: height %v leaves no room for radius %v", ErrInvalidConfig, c.Height, c.Radius)
	case c.StepDelay < 0:
		return fmt.Errorf("%w: step delay must be non-negative, got %v", ErrInvalidConfig, c.StepDelay)
	case c.Nudge <= 0:
		return fmt.Errorf("%w: nudge must be positive, got %v", ErrInvalidConfig, c.Nudge)
	case c.LogMaxSize < 0 || c.LogMaxAge < 0:
		return fmt.Errorf("%w: log rotation limits must be non-negative", ErrInvalidConfig)
	}
	if _, err := search.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Layout returns the grid layout described by c.
func (c Config) Layout() gridgraph.Layout {
	conn := gridgraph.Conn4
	if c.Diagonal {
		conn = gridgraph.Conn8
	}

	return gridgraph.Layout{
		Rows:   c.Rows,
		Cols:   c.Cols,
		Width:  c.Width,
		Height: c.Height,
		Radius: c.Radius,
		Conn:   conn,
	}
}

// SearchAlgorithm parses the configured algorithm. An unknown name is
// reported as ErrInvalidConfig, never replaced by a default.
func (c Config) SearchAlgorithm() (search.Algorithm, error) {
	alg, err := search.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyAlgorithm, err)
	}

	return alg, nil
}
