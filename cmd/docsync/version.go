package main

import (
	"fmt"

	"github.com/aretw0/docsync"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of docsync",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("docsync version %s\n", docsync.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
