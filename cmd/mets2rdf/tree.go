package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mets2rdf/internal/config"
	"github.com/pdiddy/mets2rdf/internal/treegen"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Generate commands for every METS file under a directory",
	Long: `Tree walks the input directory and prints a transformation command for
every file ending in the input suffix (default .mets.xml). The output file
name swaps that suffix for the output suffix (default .rdf) and is placed
under the output directory at the full traversal path: -i data/mets -o out
writes out/data/mets/....

Without both -i and -o nothing is generated.`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringP("input_dir", "i", "", "top-level directory of source xml files")
	treeCmd.Flags().StringP("output_dir", "o", "", "target directory")
	treeCmd.Flags().String("xsl", "", "stylesheet passed as -xsl: (default bmtn2rdf.xsl)")
	treeCmd.Flags().String("tool", "", "XSLT processor command (default saxon)")
	treeCmd.Flags().String("input-suffix", "", "suffix of files to convert (default .mets.xml)")
	treeCmd.Flags().String("output-suffix", "", "suffix of generated files (default .rdf)")

	bindFlags(treeCmd, map[string]string{
		"input_dir":     "tree.input_dir",
		"output_dir":    "tree.output_dir",
		"xsl":           "tree.transform_rule",
		"tool":          "tree.tool",
		"input-suffix":  "tree.input_suffix",
		"output-suffix": "tree.output_suffix",
	})

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadTree(viper.GetViper())
	if err != nil {
		return err
	}
	em, err := newEmitter(cmd)
	if err != nil {
		return err
	}

	sum, err := treegen.New(cfg, em, logger).Generate()
	return finish(em, "tree", sum, err)
}
