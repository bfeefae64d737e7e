// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit renders transformation commands to a writer. The default
// shell format prints an echo line followed by the command itself so the
// output can be reviewed and then piped into a shell. The yaml and json
// formats describe the same plan as structured records. Nothing here runs
// a command.
package emit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mets2rdf/pkg/types"
)

// Format selects the output rendering.
type Format string

const (
	FormatShell Format = "shell"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ErrUnknownFormat is returned by New for an unsupported Format.
var ErrUnknownFormat = errors.New("unknown output format")

// Emitter writes one command at a time. Close flushes anything the format
// buffers; it does not close the underlying writer.
type Emitter interface {
	Emit(cmd types.CommandLine) error
	Close() error
}

// New returns an Emitter for format writing to w. An empty format selects
// FormatShell.
func New(format Format, w io.Writer) (Emitter, error) {
	switch format {
	case FormatShell, "":
		return &shellEmitter{w: w}, nil
	case FormatYAML:
		return &yamlEmitter{enc: yaml.NewEncoder(w)}, nil
	case FormatJSON:
		return &jsonEmitter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("%w %q: use shell, yaml, or json", ErrUnknownFormat, format)
	}
}

// shellEmitter writes "echo <cmd>" and "<cmd>" for each command.
type shellEmitter struct {
	w io.Writer
}

func (e *shellEmitter) Emit(cmd types.CommandLine) error {
	line := cmd.String()
	if _, err := fmt.Fprintf(e.w, "echo %s\n%s\n", line, line); err != nil {
		return fmt.Errorf("writing command: %w", err)
	}
	return nil
}

func (e *shellEmitter) Close() error { return nil }

// record is the structured form of one command.
type record struct {
	Source        string `json:"source" yaml:"source"`
	Target        string `json:"target" yaml:"target"`
	TransformRule string `json:"transform_rule" yaml:"transform_rule"`
	Tool          string `json:"tool" yaml:"tool"`
	Command       string `json:"command" yaml:"command"`
}

func newRecord(cmd types.CommandLine) record {
	return record{
		Source:        cmd.Source,
		Target:        cmd.Target,
		TransformRule: cmd.TransformRule,
		Tool:          cmd.Tool,
		Command:       cmd.String(),
	}
}

// yamlEmitter writes one YAML document per command.
type yamlEmitter struct {
	enc *yaml.Encoder
}

func (e *yamlEmitter) Emit(cmd types.CommandLine) error {
	rec := newRecord(cmd)
	if err := e.enc.Encode(&rec); err != nil {
		return fmt.Errorf("encoding command as yaml: %w", err)
	}
	return nil
}

func (e *yamlEmitter) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("closing yaml stream: %w", err)
	}
	return nil
}

// jsonEmitter writes one JSON object per line.
type jsonEmitter struct {
	enc *json.Encoder
}

func (e *jsonEmitter) Emit(cmd types.CommandLine) error {
	if err := e.enc.Encode(newRecord(cmd)); err != nil {
		return fmt.Errorf("encoding command as json: %w", err)
	}
	return nil
}

func (e *jsonEmitter) Close() error { return nil }
