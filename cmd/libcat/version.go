package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/libcat"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of libcat",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "libcat version %s\n", strings.TrimSpace(libcat.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
