// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package treegen generates transformation commands for every matching file
// under a directory tree. The target path mirrors the full traversal path
// under the output directory, not the path relative to the input directory:
// walking "data/mets" into "out" targets "out/data/mets/...", and an
// absolute input directory is mirrored with its leading separator dropped.
package treegen

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mets2rdf/internal/emit"
	"github.com/pdiddy/mets2rdf/internal/logging"
	"github.com/pdiddy/mets2rdf/pkg/types"
)

// Generator walks a directory and emits one command per matching file.
type Generator struct {
	cfg types.TreeConfig
	em  emit.Emitter
	log *slog.Logger
}

// New returns a Generator. A nil logger discards diagnostics.
func New(cfg types.TreeConfig, em emit.Emitter, log *slog.Logger) *Generator {
	return &Generator{cfg: cfg, em: em, log: logging.OrDiscard(log)}
}

// Matches reports whether name carries the configured input suffix.
func (g *Generator) Matches(name string) bool {
	return strings.HasSuffix(name, g.cfg.InputSuffix)
}

// Paths computes the source and target for file name found in traversal
// directory dir. Both are built by plain concatenation; dir is used as
// spelled.
func (g *Generator) Paths(dir, name string) types.PathPair {
	targetDir := strings.TrimRight(g.cfg.OutputDir, "/") + "/" + strings.TrimLeft(dir, "/")
	targetName := strings.TrimSuffix(name, g.cfg.InputSuffix) + g.cfg.OutputSuffix
	return types.PathPair{
		Source: dir + "/" + name,
		Target: targetDir + "/" + targetName,
	}
}

// traversalDir returns the directory containing the walked file at path,
// spelled from the input directory as the user gave it. The walk cleans
// the paths it hands back, so the offset below the input directory is
// recovered and appended to InputDir verbatim.
func (g *Generator) traversalDir(path string) (string, error) {
	rel, err := filepath.Rel(g.cfg.InputDir, filepath.Dir(path))
	if err != nil {
		return "", fmt.Errorf("locating %s under %s: %w", path, g.cfg.InputDir, err)
	}
	if rel == "." {
		return g.cfg.InputDir, nil
	}
	rel = filepath.ToSlash(rel)
	if strings.HasSuffix(g.cfg.InputDir, "/") {
		return g.cfg.InputDir + rel, nil
	}
	return g.cfg.InputDir + "/" + rel, nil
}

// Generate walks the input directory in lexical order and emits a command
// for every file whose name ends with the input suffix. When either the
// input or output directory is unset, or the input is not a directory, it
// does nothing and returns a zero Summary. Walk errors, including a missing
// or unreadable input directory, end the pass. Target directories are
// never created.
func (g *Generator) Generate() (types.Summary, error) {
	var sum types.Summary

	if g.cfg.InputDir == "" || g.cfg.OutputDir == "" {
		g.log.Info("tree.noop", "reason", "input and output directories are both required",
			"input_dir", g.cfg.InputDir, "output_dir", g.cfg.OutputDir)
		return sum, nil
	}

	info, err := os.Stat(g.cfg.InputDir)
	if err != nil {
		return sum, fmt.Errorf("walking %s: %w", g.cfg.InputDir, err)
	}
	if !info.IsDir() {
		g.log.Info("tree.noop", "reason", "input is not a directory", "input_dir", g.cfg.InputDir)
		return sum, nil
	}

	g.log.Debug("tree.start", "input_dir", g.cfg.InputDir, "output_dir", g.cfg.OutputDir,
		"suffix", g.cfg.InputSuffix)

	err = filepath.WalkDir(g.cfg.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !g.Matches(name) {
			sum.Skipped++
			g.log.Debug("tree.skip", "path", path)
			return nil
		}
		dir, err := g.traversalDir(path)
		if err != nil {
			return err
		}
		cmd := types.CommandLine{
			PathPair:      g.Paths(dir, name),
			Tool:          g.cfg.Tool,
			TransformRule: g.cfg.TransformRule,
		}
		if err := g.em.Emit(cmd); err != nil {
			return err
		}
		sum.Emitted++
		return nil
	})
	if err != nil {
		return sum, err
	}

	g.log.Info("tree.done", "input_dir", g.cfg.InputDir,
		"emitted", sum.Emitted, "skipped", sum.Skipped)
	return sum, nil
}
