// SPDX-License-Identifier: MIT
// Package: doormap/config
//
// config.go: run settings for cmd/doormap.
//
// Design:
//   - Config is the single source of truth for every knob of a run.
//   - Default() is deterministic; Load() layers an optional .env file and
//     then the process environment on top of it.
//   - Settings pick policies (group mode, edge policy, output format). The
//     path expression itself is compiled into the binary and never read here.
//
// Keys:
//   - DOORMAP_MODE        scoped | reference
//   - DOORMAP_EDGES       symmetric | directed
//   - DOORMAP_UNDIRECTED  bool, walk doors both ways during the search
//   - DOORMAP_STRICT      bool, validate anchors and groups before compiling
//   - DOORMAP_FORMAT      text | yaml
//   - DOORMAP_THRESHOLD   int >= 0, distance used for the "at least" count
//   - DOORMAP_LOG_LEVEL   debug | info | warn | error

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/doormap/bfs"
	"github.com/katalvlaran/doormap/pathexpr"
)

// Environment keys.
const (
	KeyMode       = "DOORMAP_MODE"
	KeyEdges      = "DOORMAP_EDGES"
	KeyUndirected = "DOORMAP_UNDIRECTED"
	KeyStrict     = "DOORMAP_STRICT"
	KeyFormat     = "DOORMAP_FORMAT"
	KeyThreshold  = "DOORMAP_THRESHOLD"
	KeyLogLevel   = "DOORMAP_LOG_LEVEL"
)

// ErrInvalidValue is returned when an environment value cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Format selects how the command renders its report.
type Format string

const (
	// FormatText prints the branch stack and the maximum distance, one per line.
	FormatText Format = "text"
	// FormatYAML prints the full report as YAML.
	FormatYAML Format = "yaml"
)

// defaultThreshold is the door count the puzzle's second question asks about.
const defaultThreshold = 1000

// Config aggregates every setting of one run.
type Config struct {
	Mode       pathexpr.Mode
	Edges      pathexpr.EdgePolicy
	Undirected bool
	Strict     bool
	Format     Format
	Threshold  int
	LogLevel   slog.Level
}

// Default returns the deterministic defaults: scoped groups, symmetric doors,
// directed search, no strict validation, text output, threshold 1000, info logs.
func Default() Config {
	return Config{
		Mode:       pathexpr.ModeScoped,
		Edges:      pathexpr.EdgesSymmetric,
		Undirected: false,
		Strict:     false,
		Format:     FormatText,
		Threshold:  defaultThreshold,
		LogLevel:   slog.LevelInfo,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then builds
// a Config from the environment. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from Default() overridden by whatever lookup finds.
func FromEnv(lookup func(key string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(KeyMode); ok {
		m, err := pathexpr.ParseMode(v)
		if err != nil {
			return Config{}, invalid(KeyMode, v, err)
		}
		cfg.Mode = m
	}
	if v, ok := lookup(KeyEdges); ok {
		p, err := pathexpr.ParseEdgePolicy(v)
		if err != nil {
			return Config{}, invalid(KeyEdges, v, err)
		}
		cfg.Edges = p
	}
	if v, ok := lookup(KeyUndirected); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, invalid(KeyUndirected, v, err)
		}
		cfg.Undirected = b
	}
	if v, ok := lookup(KeyStrict); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, invalid(KeyStrict, v, err)
		}
		cfg.Strict = b
	}
	if v, ok := lookup(KeyFormat); ok {
		switch f := Format(v); f {
		case FormatText, FormatYAML:
			cfg.Format = f
		default:
			return Config{}, invalid(KeyFormat, v, errors.New("want text or yaml"))
		}
	}
	if v, ok := lookup(KeyThreshold); ok {
		n, err := strconv.Atoi(v)
		if err == nil && n < 0 {
			err = errors.New("must not be negative")
		}
		if err != nil {
			return Config{}, invalid(KeyThreshold, v, err)
		}
		cfg.Threshold = n
	}
	if v, ok := lookup(KeyLogLevel); ok {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err != nil {
			return Config{}, invalid(KeyLogLevel, v, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// CompileOptions translates the settings into pathexpr options.
func (c Config) CompileOptions() []pathexpr.Option {
	opts := []pathexpr.Option{
		pathexpr.WithMode(c.Mode),
		pathexpr.WithEdgePolicy(c.Edges),
	}
	if c.Strict {
		opts = append(opts, pathexpr.WithStrict())
	}

	return opts
}

// SearchOptions translates the settings into bfs options.
func (c Config) SearchOptions() []bfs.Option {
	var opts []bfs.Option
	if c.Undirected {
		opts = append(opts, bfs.WithUndirected())
	}

	return opts
}

func invalid(key, value string, err error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, value, err)
}
