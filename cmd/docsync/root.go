package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/docsync/internal/logging"
	"github.com/aretw0/docsync/internal/rewriter"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docsync <document>",
	Short: "Docsync keeps documentation code samples in sync with their sources",
	Long: `Docsync scans a document for <!-- INCLUDE-RUST: path --> markers and
replaces the contents of the rust fenced block following each marker with
the referenced file. The document is rewritten in place only if something
changed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rw := newRewriter(cmd)
		changed, err := rw.ProcessFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Sync failed: %v\n", err)
			os.Exit(1)
		}
		if changed {
			fmt.Printf("Updated %s\n", args[0])
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// createLogger configures the application logger.
// In debug mode, it writes to stderr (to separate from document output on stdout).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

func newRewriter(cmd *cobra.Command) *rewriter.Rewriter {
	debug, _ := cmd.Flags().GetBool("debug")
	return rewriter.New(rewriter.WithLogger(createLogger(debug)))
}
