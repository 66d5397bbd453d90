package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wnzid/SQLparser/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sqlparser version:", version.Version())
		fmt.Println("Built with:", version.GoVersion())
		fmt.Println("Git commit:", version.Revision())
		if version.LocalModified() {
			fmt.Println("Warning: this build contains uncommitted changes.")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
