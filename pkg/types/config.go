// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ToolConfig holds the settings shared by both generators: which XSLT
// processor the emitted commands invoke and which stylesheet they pass it.
type ToolConfig struct {
	// Tool is the command name of the XSLT processor (e.g. "saxon").
	Tool string `json:"tool" yaml:"tool" mapstructure:"tool"`

	// TransformRule is the stylesheet path passed as -xsl:.
	TransformRule string `json:"transform_rule" yaml:"transform_rule" mapstructure:"transform_rule"`
}

// Validate reports whether the tool settings can produce a command.
func (c ToolConfig) Validate() error {
	if c.Tool == "" {
		return fmt.Errorf("%w: tool is empty", ErrInvalidConfig)
	}
	if c.TransformRule == "" {
		return fmt.Errorf("%w: transform_rule is empty", ErrInvalidConfig)
	}
	return nil
}

// ListConfig holds settings for the manifest-driven generator.
type ListConfig struct {
	ToolConfig `yaml:",inline" mapstructure:",squash"`

	// Manifest is the text file listing one relative file name per line.
	Manifest string `json:"manifest" yaml:"manifest" mapstructure:"manifest"`

	// SourceRoot is prepended verbatim to each manifest line. It should
	// carry its own trailing separator.
	SourceRoot string `json:"source_root" yaml:"source_root" mapstructure:"source_root"`

	// TargetRoot is prepended verbatim to each manifest line to form the
	// output path.
	TargetRoot string `json:"target_root" yaml:"target_root" mapstructure:"target_root"`
}

// Validate reports whether the list settings are usable.
func (c ListConfig) Validate() error {
	if err := c.ToolConfig.Validate(); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if c.Manifest == "" {
		return fmt.Errorf("list: %w: manifest is empty", ErrInvalidConfig)
	}
	return nil
}

// TreeConfig holds settings for the directory-walking generator.
type TreeConfig struct {
	ToolConfig `yaml:",inline" mapstructure:",squash"`

	// InputDir is the directory to walk. Empty means no traversal.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir is the directory the traversal path is mirrored under.
	// Empty means no traversal.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// InputSuffix selects which file names are converted (default ".mets.xml").
	InputSuffix string `json:"input_suffix" yaml:"input_suffix" mapstructure:"input_suffix"`

	// OutputSuffix replaces InputSuffix in the target file name (default ".rdf").
	OutputSuffix string `json:"output_suffix" yaml:"output_suffix" mapstructure:"output_suffix"`
}

// Validate reports whether the tree settings are usable. Empty InputDir
// and OutputDir are valid; they select the no-op pass.
func (c TreeConfig) Validate() error {
	if err := c.ToolConfig.Validate(); err != nil {
		return fmt.Errorf("tree: %w", err)
	}
	if c.InputSuffix == "" {
		return fmt.Errorf("tree: %w: input_suffix is empty", ErrInvalidConfig)
	}
	return nil
}

// Config groups both generator configurations.
type Config struct {
	List ListConfig `json:"list" yaml:"list" mapstructure:"list"`
	Tree TreeConfig `json:"tree" yaml:"tree" mapstructure:"tree"`
}

// Validate checks both sections.
func (c Config) Validate() error {
	if err := c.List.Validate(); err != nil {
		return err
	}
	return c.Tree.Validate()
}

// Defaults used when neither a config file, the environment, nor a flag
// supplies a value.
const (
	DefaultTool             = "saxon"
	DefaultManifest         = "newage.txt"
	DefaultListSourceRoot   = "metsfiles/"
	DefaultListTargetRoot   = "newage/"
	DefaultListRule         = "mjp2rdf.xsl"
	DefaultTreeRule         = "bmtn2rdf.xsl"
	DefaultTreeInputSuffix  = ".mets.xml"
	DefaultTreeOutputSuffix = ".rdf"
)

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		List: ListConfig{
			ToolConfig: ToolConfig{Tool: DefaultTool, TransformRule: DefaultListRule},
			Manifest:   DefaultManifest,
			SourceRoot: DefaultListSourceRoot,
			TargetRoot: DefaultListTargetRoot,
		},
		Tree: TreeConfig{
			ToolConfig:   ToolConfig{Tool: DefaultTool, TransformRule: DefaultTreeRule},
			InputSuffix:  DefaultTreeInputSuffix,
			OutputSuffix: DefaultTreeOutputSuffix,
		},
	}
}
