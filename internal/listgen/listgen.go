// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listgen generates transformation commands for the files named in
// a manifest. Source and target paths are the configured roots with each
// manifest line appended verbatim.
package listgen

import (
	"log/slog"

	"github.com/pdiddy/mets2rdf/internal/emit"
	"github.com/pdiddy/mets2rdf/internal/logging"
	"github.com/pdiddy/mets2rdf/internal/manifest"
	"github.com/pdiddy/mets2rdf/pkg/types"
)

// Generator walks a manifest and emits one command per entry.
type Generator struct {
	cfg types.ListConfig
	em  emit.Emitter
	log *slog.Logger
}

// New returns a Generator. A nil logger discards diagnostics.
func New(cfg types.ListConfig, em emit.Emitter, log *slog.Logger) *Generator {
	return &Generator{cfg: cfg, em: em, log: logging.OrDiscard(log)}
}

// Paths builds the source and target for ref by plain concatenation with
// the configured roots. No separator is inserted or normalized.
func (g *Generator) Paths(ref types.FileReference) types.PathPair {
	return types.PathPair{
		Source: g.cfg.SourceRoot + string(ref),
		Target: g.cfg.TargetRoot + string(ref),
	}
}

// Generate reads the manifest top to bottom and emits a command for each
// non-empty line, in manifest order. A missing manifest is returned as an
// error wrapping fs.ErrNotExist. Source files are not checked.
func (g *Generator) Generate() (types.Summary, error) {
	var sum types.Summary

	f, err := manifest.Open(g.cfg.Manifest)
	if err != nil {
		return sum, err
	}
	defer f.Close()

	g.log.Debug("list.start", "manifest", g.cfg.Manifest,
		"source_root", g.cfg.SourceRoot, "target_root", g.cfg.TargetRoot)

	err = manifest.Each(f, func(lineNo int, ref types.FileReference) error {
		if ref == "" {
			sum.Skipped++
			g.log.Debug("list.skip_blank", "line", lineNo)
			return nil
		}
		cmd := types.CommandLine{
			PathPair:      g.Paths(ref),
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

	g.log.Info("list.done", "manifest", g.cfg.Manifest,
		"emitted", sum.Emitted, "skipped", sum.Skipped)
	return sum, nil
}
