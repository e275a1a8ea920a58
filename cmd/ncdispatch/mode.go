package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksonzamorano/dispatch"
)

// errNotFound makes testmode exit non-zero without printing anything.
var errNotFound = errors.New("mode not found")

var modesCmd = &cobra.Command{
	Use:   "modes MODESTRING",
	Short: "list the tags of a comma separated mode string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modes, err := dispatch.GetModeList(args[0])
		if err != nil {
			return err
		}
		for _, mode := range modes {
			fmt.Fprintln(cmd.OutOrStdout(), mode)
		}
		return nil
	},
}

var testModeCmd = &cobra.Command{
	Use:     "testmode PATH TAG",
	Short:   "report whether a URL's mode list carries TAG",
	Example: `  ncdispatch testmode "https://host/x.nc\#mode=bytes,dap4" dap4`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		found := dispatch.TestPathMode(dispatch.ShellUnescape(args[0]), args[1])
		fmt.Fprintln(cmd.OutOrStdout(), found)
		if !found {
			return errNotFound
		}
		return nil
	},
}

var basenameCmd = &cobra.Command{
	Use:   "basename URL",
	Short: "print the dataset name of a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := dispatch.URLBasename(dispatch.ShellUnescape(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}
