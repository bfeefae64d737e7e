package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mets2rdf/internal/config"
	"github.com/pdiddy/mets2rdf/internal/listgen"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Generate commands for every file named in a manifest",
	Long: `List reads a manifest of relative file names, one per line, and prints a
transformation command for each non-empty line. Source and target paths are
the configured roots with the line appended verbatim; roots should end with
a separator. Paths default from configuration (list.* keys) and may be
overridden with flags.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("manifest", "", "manifest file (default newage.txt)")
	listCmd.Flags().String("source-root", "", "prefix for source paths (default metsfiles/)")
	listCmd.Flags().String("target-root", "", "prefix for target paths (default newage/)")
	listCmd.Flags().String("xsl", "", "stylesheet passed as -xsl: (default mjp2rdf.xsl)")
	listCmd.Flags().String("tool", "", "XSLT processor command (default saxon)")

	bindFlags(listCmd, map[string]string{
		"manifest":    "list.manifest",
		"source-root": "list.source_root",
		"target-root": "list.target_root",
		"xsl":         "list.transform_rule",
		"tool":        "list.tool",
	})

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadList(viper.GetViper())
	if err != nil {
		return err
	}
	em, err := newEmitter(cmd)
	if err != nil {
		return err
	}

	sum, err := listgen.New(cfg, em, logger).Generate()
	return finish(em, "list", sum, err)
}
