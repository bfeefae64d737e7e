// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mets2rdf/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mets2rdf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
list:
  tool: java -jar saxon.jar
  manifest: bmtn.txt
  source_root: /data/mets/
  target_root: /data/rdf/
  transform_rule: /xsl/mjp2rdf.xsl
tree:
  output_suffix: .ttl
`)
	v := viper.New()
	Setup(v, path)
	used, err := Read(v)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "java -jar saxon.jar", cfg.List.Tool)
	assert.Equal(t, "bmtn.txt", cfg.List.Manifest)
	assert.Equal(t, "/data/mets/", cfg.List.SourceRoot)
	assert.Equal(t, "/data/rdf/", cfg.List.TargetRoot)
	assert.Equal(t, "/xsl/mjp2rdf.xsl", cfg.List.TransformRule)

	// Unset keys keep their defaults.
	assert.Equal(t, ".ttl", cfg.Tree.OutputSuffix)
	assert.Equal(t, types.DefaultTreeInputSuffix, cfg.Tree.InputSuffix)
	assert.Equal(t, types.DefaultTool, cfg.Tree.Tool)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "list:\n  source_root: /from/file/\n")
	t.Setenv("METS2RDF_LIST_SOURCE_ROOT", "/from/env/")
	t.Setenv("METS2RDF_TREE_TRANSFORM_RULE", "env.xsl")

	v := viper.New()
	Setup(v, path)
	_, err := Read(v)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/from/env/", cfg.List.SourceRoot)
	assert.Equal(t, "env.xsl", cfg.Tree.TransformRule)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	path := writeConfig(t, "tree:\n  input_dir: file-in\n  output_dir: file-out\n")
	t.Setenv("METS2RDF_TREE_OUTPUT_DIR", "env-out")

	fs := pflag.NewFlagSet("tree", pflag.ContinueOnError)
	fs.StringP("input_dir", "i", "", "")
	fs.StringP("output_dir", "o", "", "")
	require.NoError(t, fs.Parse([]string{"-i", "flag-in"}))

	v := viper.New()
	Setup(v, path)
	_, err := Read(v)
	require.NoError(t, err)
	require.NoError(t, BindFlags(v, fs, map[string]string{
		"input_dir":  "tree.input_dir",
		"output_dir": "tree.output_dir",
	}))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "flag-in", cfg.Tree.InputDir)
	assert.Equal(t, "env-out", cfg.Tree.OutputDir, "unset flag falls through to env")
}

func TestBindFlagsUnknownFlag(t *testing.T) {
	fs := pflag.NewFlagSet("x", pflag.ContinueOnError)
	err := BindFlags(viper.New(), fs, map[string]string{"nope": "list.tool"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestReadMissingFileSearch(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	Setup(v, "")
	used, err := Read(v)
	require.NoError(t, err)
	assert.Empty(t, used)
}

func TestReadMalformedFile(t *testing.T) {
	path := writeConfig(t, "list: [unclosed\n")
	v := viper.New()
	Setup(v, path)
	_, err := Read(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, "tree:\n  input_suffix: \"\"\n")
	v := viper.New()
	Setup(v, path)
	_, err := Read(v)
	require.NoError(t, err)

	_, err = Load(v)
	require.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestLoadSectionValidatesOnlyItself(t *testing.T) {
	path := writeConfig(t, "list:\n  manifest: \"\"\n")
	v := viper.New()
	Setup(v, path)
	_, err := Read(v)
	require.NoError(t, err)

	tree, err := LoadTree(v)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig().Tree, tree)

	_, err = LoadList(v)
	require.ErrorIs(t, err, types.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "manifest is empty")

	_, err = Load(v)
	require.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestLoadListIgnoresBadTree(t *testing.T) {
	path := writeConfig(t, "tree:\n  tool: \"\"\nlist:\n  source_root: /src/\n")
	v := viper.New()
	Setup(v, path)
	_, err := Read(v)
	require.NoError(t, err)

	list, err := LoadList(v)
	require.NoError(t, err)
	assert.Equal(t, "/src/", list.SourceRoot)

	_, err = LoadTree(v)
	require.ErrorIs(t, err, types.ErrInvalidConfig)
}
