// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the generator configuration through viper. Values
// are resolved in the order flags, environment (METS2RDF_ prefix), config
// file, then the defaults from types.DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/mets2rdf/pkg/types"
)

const (
	// EnvPrefix prefixes every environment override, e.g.
	// METS2RDF_LIST_SOURCE_ROOT.
	EnvPrefix = "METS2RDF"

	fileName = "mets2rdf"
	fileType = "yaml"
	appDir   = "mets2rdf"
)

// Setup points v at the config file and the environment. When file is
// empty, v searches ./mets2rdf.yaml then ~/.config/mets2rdf/mets2rdf.yaml.
func Setup(v *viper.Viper, file string) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType(fileType)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appDir))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Read reads the config file selected by Setup. It returns the file used,
// or "" when no config file was found. A file that exists but does not
// parse is an error.
func Read(v *viper.Viper) (string, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// SetDefaults registers every key of types.DefaultConfig with v so that
// environment variables are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	defaults := map[string]string{
		"list.tool":           d.List.Tool,
		"list.transform_rule": d.List.TransformRule,
		"list.manifest":       d.List.Manifest,
		"list.source_root":    d.List.SourceRoot,
		"list.target_root":    d.List.TargetRoot,
		"tree.tool":           d.Tree.Tool,
		"tree.transform_rule": d.Tree.TransformRule,
		"tree.input_dir":      d.Tree.InputDir,
		"tree.output_dir":     d.Tree.OutputDir,
		"tree.input_suffix":   d.Tree.InputSuffix,
		"tree.output_suffix":  d.Tree.OutputSuffix,
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

// BindFlags binds each named flag in fs to the viper key it maps to.
// A flag only overrides lower layers when it was set on the command line.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			return fmt.Errorf("binding %s: no flag named %q", key, flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// Load resolves the whole configuration held by v and validates both
// sections.
func Load(v *viper.Viper) (types.Config, error) {
	cfg, err := decode(v)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadList resolves the configuration and validates only the list
// section, so a bad tree setting does not block the list generator.
func LoadList(v *viper.Viper) (types.ListConfig, error) {
	cfg, err := decode(v)
	if err != nil {
		return cfg.List, err
	}
	return cfg.List, cfg.List.Validate()
}

// LoadTree resolves the configuration and validates only the tree section.
func LoadTree(v *viper.Viper) (types.TreeConfig, error) {
	cfg, err := decode(v)
	if err != nil {
		return cfg.Tree, err
	}
	return cfg.Tree, cfg.Tree.Validate()
}

func decode(v *viper.Viper) (types.Config, error) {
	SetDefaults(v)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}
