// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mets2rdf CLI. It prints the
// shell commands that convert METS files to RDF with an XSLT processor;
// running them is left to whoever pipes the output into a shell.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mets2rdf/internal/config"
	"github.com/pdiddy/mets2rdf/internal/emit"
	"github.com/pdiddy/mets2rdf/internal/logging"
	"github.com/pdiddy/mets2rdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes diagnostics to stderr; set in PersistentPreRunE.
var logger = logging.Discard()

// rootCmd is the base command for the mets2rdf CLI.
var rootCmd = &cobra.Command{
	Use:   "mets2rdf",
	Short: "Generate XSLT commands that convert METS files to RDF",
	Long: `mets2rdf prints, for every METS file it finds, an echo of a transformation
command followed by the command itself. Nothing is executed: review the output,
then pipe it into a shell.

Files come either from a manifest (list) or from a directory walk (tree).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = logging.New(os.Stderr, verbose)

		cfgFile, _ := cmd.Flags().GetString("config")
		config.Setup(viper.GetViper(), cfgFile)
		used, err := config.Read(viper.GetViper())
		if err != nil {
			return err
		}
		if used != "" {
			fmt.Fprintln(os.Stderr, "Using config file:", used)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mets2rdf.yaml or ~/.config/mets2rdf/mets2rdf.yaml)")
	rootCmd.PersistentFlags().String("format", string(emit.FormatShell), "output format: shell, yaml, or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging on stderr")
}

// loadConfig resolves the configuration from flags, environment, config
// file, and defaults.
func loadConfig() (types.Config, error) {
	return config.Load(viper.GetViper())
}

// newEmitter builds the emitter selected by --format, writing to cmd's
// output stream.
func newEmitter(cmd *cobra.Command) (emit.Emitter, error) {
	format, _ := cmd.Flags().GetString("format")
	return emit.New(emit.Format(format), cmd.OutOrStdout())
}

// bindFlags wires a subcommand's override flags to their config keys.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	if err := config.BindFlags(viper.GetViper(), cmd.Flags(), keys); err != nil {
		panic(err)
	}
}

// finish closes em and logs the pass summary.
func finish(em emit.Emitter, mode string, sum types.Summary, err error) error {
	if cerr := em.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Debug("generate.summary", slog.String("mode", mode),
		slog.Int("emitted", sum.Emitted), slog.Int("skipped", sum.Skipped), slog.Int("total", sum.Total()))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
