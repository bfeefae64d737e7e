package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mets2rdf/internal/toolcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the XSLT processor, stylesheets, and manifest exist",
	Long: `Check looks up the configured XSLT processor on PATH and stats the
stylesheets, the manifest, and the tree input directory when one is set.
It does not run the processor.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		report := toolcheck.Run(cfg)
		report.Write(cmd.OutOrStdout())
		if n := report.Failed(); n > 0 {
			return fmt.Errorf("%d check(s) failed", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
