package main

import (
	"errors"
	"os"

	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacksonzamorano/dispatch"
)

var commands = []*cobra.Command{
	escapeCmd,
	unescapeCmd,
	splitCmd,
	joinCmd,
	modesCmd,
	testModeCmd,
	basenameCmd,
}

var flagVerbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log why mode lookups answered false")
	rootCmd.AddCommand(commands...)
}

var rootCmd = &cobra.Command{
	Use:               "ncdispatch subcommand",
	Short:             "ncdispatch inspects dataset URLs: mode lists, path segments and escaping",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func setupLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	if flagVerbose {
		cfg = zap.NewDevelopmentConfig()
	}
	zapLog, err := cfg.Build()
	if err != nil {
		return err
	}
	dispatch.SetLogger(zapr.NewLogger(zapLog))
	return nil
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errNotFound) {
			rootCmd.PrintErrln("Error:", err)
		}
		os.Exit(1)
	}
}
