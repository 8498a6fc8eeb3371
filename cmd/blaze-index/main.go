// Command blaze-index builds a blaze on-disk index from a JSON-lines
// document stream.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blazesearch/blaze"
)

func main() {
	var outDir string

	root := &cobra.Command{
		Use:   "blaze-index <jsonl-file>",
		Short: "Build a blaze inverted index from a JSON-lines document stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := blaze.NewBuilder()
			if err := b.BuildFromStream(args[0]); err != nil {
				return fmt.Errorf("build: %w", err)
			}
			if err := b.Save(outDir); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			if err := b.WriteZipfReport(outDir + "/zipf_stats.csv"); err != nil {
				return fmt.Errorf("zipf report: %w", err)
			}

			stats := b.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d documents, %d tokens, %d stems in %s\n",
				stats.Documents, stats.Tokens, stats.Stems, stats.Elapsed)
			return nil
		},
	}
	root.Flags().StringVar(&outDir, "out", "index", "output directory for the index files")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
