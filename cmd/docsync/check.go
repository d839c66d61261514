package main

import (
	"fmt"
	"os"

	"github.com/aretw0/docsync/internal/presentation/diff"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var checkCmd = &cobra.Command{
	Use:   "check <document>",
	Short: "Verify a document is in sync without rewriting it",
	Long: `Runs the same scan as a sync but writes nothing. Prints a unified diff
of what a sync would change and exits 1 when the document is out of date,
so CI can gate on it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rw := newRewriter(cmd)
		original, synced, changed, err := rw.CheckFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
			os.Exit(1)
		}
		if !changed {
			fmt.Printf("%s is in sync ✅\n", args[0])
			return
		}

		unified, err := diff.Unified(args[0], original, synced)
		if err == nil {
			if term.IsTerminal(int(os.Stdout.Fd())) {
				unified = diff.Colorize(unified)
			}
			fmt.Print(unified)
		}
		fmt.Fprintf(os.Stderr, "%s is out of sync\n", args[0])
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
