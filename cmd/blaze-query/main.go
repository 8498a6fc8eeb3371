// Command blaze-query answers boolean queries, one per line of standard
// input, against a saved blaze index.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blazesearch/blaze"
)

func main() {
	var indexDir string

	root := &cobra.Command{
		Use:   "blaze-query",
		Short: "Answer boolean queries against a blaze index",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := blaze.Load(indexDir)
			if err != nil {
				return fmt.Errorf("load index: %w", err)
			}
			return runQueryLoop(engine, os.Stdin, cmd.OutOrStdout())
		},
	}
	root.Flags().StringVar(&indexDir, "index", "index", "index directory to load")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runQueryLoop(engine *blaze.Engine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		start := time.Now()
		results, total := engine.Search(line)
		elapsed := time.Since(start)

		fmt.Fprintf(out, "Found %d documents (%d ms):\n", total, elapsed.Milliseconds())
		for _, r := range results {
			fmt.Fprintf(out, "%d\t%s\t%s\n", r.DocID, r.URL, r.Title)
		}
		if total > len(results) {
			fmt.Fprintf(out, "... and %d more results\n", total-len(results))
		}
	}
	return scanner.Err()
}
