// Package main compiles the embedded room path expression, runs the
// breadth-first explorer from the origin, and prints the leftover branch
// stack followed by the largest door count needed to reach any room.
//
// Settings come from the environment or a .env file (see package config):
//
//	DOORMAP_MODE=reference DOORMAP_FORMAT=yaml go run ./cmd/doormap
//
// Diagnostics go to stderr through log/slog; results go to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/doormap/bfs"
	"github.com/katalvlaran/doormap/config"
	"github.com/katalvlaran/doormap/core"
	"github.com/katalvlaran/doormap/pathexpr"
	"github.com/katalvlaran/doormap/report"
)

// expression is the map this program explores.
const expression = "^ENNWSWW(NEWS|)SSSEEN(WNSE|)EE(SWEN|)NNN$"

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run wires config, logging, compiler, explorer and report together.
// Errors are logged before being returned.
func run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("load config", "err", err)
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	compileOpts := append(cfg.CompileOptions(), pathexpr.WithOnDoor(func(from, to core.Coord) {
		log.Debug("door", "from", from.String(), "to", to.String())
	}))
	comp, err := pathexpr.Compile(expression, compileOpts...)
	if err != nil {
		log.Error("compile path expression", "err", err)
		return err
	}
	log.Info("compiled",
		"mode", comp.Mode.String(),
		"edges", comp.Edges.String(),
		"steps", comp.Steps,
		"rooms", comp.Graph.RoomCount(),
		"doors", comp.Graph.DoorCount(),
		"stack", len(comp.Stack),
	)

	searchOpts := append(cfg.SearchOptions(), bfs.WithContext(ctx))
	res, err := bfs.BFS(comp.Graph, comp.Graph.Origin(), searchOpts...)
	if err != nil {
		log.Error("explore rooms", "err", err)
		return err
	}
	log.Info("explored", "reached", len(res.Depth), "max_doors", res.Max, "undirected", cfg.Undirected)

	rep, err := report.New(expression, comp, res, cfg.Threshold)
	if err != nil {
		log.Error("build report", "err", err)
		return err
	}

	switch cfg.Format {
	case config.FormatYAML:
		err = rep.WriteYAML(stdout)
	default:
		err = rep.WriteText(stdout)
	}
	if err != nil {
		log.Error("write report", "format", string(cfg.Format), "err", err)
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

