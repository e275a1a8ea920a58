package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksonzamorano/dispatch"
)

var flagDelim string

var splitCmd = &cobra.Command{
	Use:   "split STRING",
	Short: "split a string at a delimiter, one segment per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(flagDelim) != 1 {
			return fmt.Errorf("delimiter must be a single byte, got %q", flagDelim)
		}
		segments, err := dispatch.Split(args[0], flagDelim[0])
		if err != nil {
			return err
		}
		for _, seg := range segments {
			fmt.Fprintln(cmd.OutOrStdout(), seg)
		}
		return nil
	},
}

var joinCmd = &cobra.Command{
	Use:   "join [SEGMENT]...",
	Short: "join segments into a '/' path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dispatch.Join(append([]string{}, args...))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	splitCmd.Flags().StringVar(&flagDelim, "delim", "/", "Delimiter byte.")
}
