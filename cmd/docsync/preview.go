package main

import (
	"fmt"
	"os"

	"github.com/aretw0/docsync/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <document>",
	Short: "Render the synced document to the terminal",
	Long: `Runs the scan in memory and renders the result as rich terminal
markdown. The document on disk is never touched.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rw := newRewriter(cmd)
		_, synced, _, err := rw.CheckFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Preview failed: %v\n", err)
			os.Exit(1)
		}

		out, err := tui.Render(synced)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Preview failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
