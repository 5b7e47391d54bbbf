// Package config loads the pathrace driver configuration.
//
// Sources are layered, later ones winning:
//
//	defaults -> pathviz.toml (optional) -> PATHVIZ_* environment -> command-line flags
//
// Keys are dotted: rows, cols, walls, pace, seed, conn, log.level, log.format,
// start.row, start.col, end.row, end.col. Environment variables map
// underscores to dots (PATHVIZ_LOG_LEVEL -> log.level); flags map hyphens to
// dots (--start-row -> start.row).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is read when present and no --config flag names another file.
const DefaultFile = "pathviz.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PATHVIZ_"

// ErrInvalid indicates a configuration that cannot drive a race.
var ErrInvalid = errors.New("config: invalid configuration")

// Point is a grid coordinate in configuration form.
type Point struct {
	Row int `koanf:"row"`
	Col int `koanf:"col"`
}

// Log selects logger level and format.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Config holds everything the driver needs.
type Config struct {
	Rows  int           `koanf:"rows"`
	Cols  int           `koanf:"cols"`
	Walls int           `koanf:"walls"`
	Pace  time.Duration `koanf:"pace"`
	// Seed feeds the wall generator; 0 picks a random seed.
	Seed uint64 `koanf:"seed"`
	// Conn is 8 (diagonals allowed) or 4.
	Conn  int   `koanf:"conn"`
	Log   Log   `koanf:"log"`
	Start Point `koanf:"start"`
	End   Point `koanf:"end"`
}

// Defaults returns the built-in configuration layer.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"rows":       25,
		"cols":       40,
		"walls":      300,
		"pace":       "0s",
		"seed":       0,
		"conn":       8,
		"log.level":  "info",
		"log.format": "text",
		"start.row":  0,
		"start.col":  0,
		"end.row":    24,
		"end.col":    39,
	}
}

// Flags registers every key on a new FlagSet named name.
func Flags(name string) *pflag.FlagSet {
	f := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.String("config", DefaultFile, "path to a TOML configuration file")
	f.Int("rows", 25, "grid rows")
	f.Int("cols", 40, "grid columns")
	f.Int("walls", 300, "random walls placed on both grids")
	f.Duration("pace", 0, "delay between node expansions")
	f.Uint64("seed", 0, "wall generator seed (0 = random)")
	f.Int("conn", 8, "neighbor connectivity: 8 or 4")
	f.String("log-level", "info", "trace, debug, info, warn, error")
	f.String("log-format", "text", "text or json")
	f.Int("start-row", 0, "start node row")
	f.Int("start-col", 0, "start node column")
	f.Int("end-row", 24, "end node row")
	f.Int("end-col", 39, "end node column")

	return f
}

// Load builds the configuration from defaults, the config file, environment
// variables and f (which may be nil), then validates it.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file; a missing file is not an error, a broken one is.
	path := DefaultFile
	if f != nil {
		if p, err := f.GetString("config"); err == nil && p != "" {
			path = p
		}
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// 3. Environment: PATHVIZ_START_ROW=3 -> start.row
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags; unchanged flags never shadow earlier layers.
	if f != nil {
		if err := k.Load(posflag.ProviderWithFlag(f, ".", k, func(fl *pflag.Flag) (string, interface{}) {
			return strings.ReplaceAll(fl.Name, "-", "."), posflag.FlagVal(f, fl)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks dimensions, counts and that both endpoints are distinct
// cells inside the grid.
func (c *Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Rows, c.Cols)
	case c.Walls < 0:
		return fmt.Errorf("%w: walls %d", ErrInvalid, c.Walls)
	case c.Pace < 0:
		return fmt.Errorf("%w: pace %s", ErrInvalid, c.Pace)
	case c.Conn != 4 && c.Conn != 8:
		return fmt.Errorf("%w: conn %d", ErrInvalid, c.Conn)
	case !c.inside(c.Start):
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d", ErrInvalid, c.Start.Row, c.Start.Col, c.Rows, c.Cols)
	case !c.inside(c.End):
		return fmt.Errorf("%w: end (%d,%d) outside %dx%d", ErrInvalid, c.End.Row, c.End.Col, c.Rows, c.Cols)
	case c.Start == c.End:
		return fmt.Errorf("%w: start and end coincide", ErrInvalid)
	}

	return nil
}

func (c *Config) inside(p Point) bool {
	return p.Row >= 0 && p.Row < c.Rows && p.Col >= 0 && p.Col < c.Cols
}

// mapProvider feeds a plain map into koanf.
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

// Read returns the map with dotted keys expanded into nested maps.
func (p *mapProvider) Read() (map[string]interface{}, error) {
	out := make(map[string]interface{})
	for key, v := range p.m {
		parts := strings.Split(key, ".")
		cur := out
		for _, part := range parts[:len(parts)-1] {
			next, ok := cur[part].(map[string]interface{})
			if !ok {
				next = make(map[string]interface{})
				cur[part] = next
			}
			cur = next
		}
		cur[parts[len(parts)-1]] = v
	}

	return out, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
