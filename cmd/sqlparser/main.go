package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wnzid/SQLparser/pkg/config"
	"github.com/wnzid/SQLparser/pkg/logger"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sqlparser",
	Short: "Interactive SQL statement parser",
	Long: `sqlparser reads SQL statements (SELECT, CREATE TABLE) from standard
input and prints the parsed syntax tree, or a parse error with its
source position.

Statements may span multiple lines and end with ";". An empty line
exits the shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(cfgFile); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger.Init()
		if verbose {
			logger.SetLevel(slog.LevelDebug)
		}
		return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
