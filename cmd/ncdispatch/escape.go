package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksonzamorano/dispatch"
)

const (
	dialectBackslash = "backslash"
	dialectEntity    = "entity"
	dialectShell     = "shell"
)

var (
	flagEscapeDialect   string
	flagUnescapeDialect string
)

const escapeExamples = `  # protect path characters
  ncdispatch escape "group/var.v1@x"

  # escape for XML
  ncdispatch escape --dialect=entity "a<b&c"`

var escapeCmd = &cobra.Command{
	Use:     "escape STRING",
	Short:   "escape a path string",
	Example: escapeExamples,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch flagEscapeDialect {
		case dialectBackslash:
			fmt.Fprintln(cmd.OutOrStdout(), dispatch.BackslashEscape(args[0]))
		case dialectEntity:
			fmt.Fprintln(cmd.OutOrStdout(), dispatch.EntityEscape(args[0]))
		default:
			return fmt.Errorf("unknown dialect %q, want one of: %s|%s", flagEscapeDialect, dialectBackslash, dialectEntity)
		}
		return nil
	},
}

var unescapeCmd = &cobra.Command{
	Use:   "unescape STRING",
	Short: "undo backslash escaping, or strip shell escapes before '#'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch flagUnescapeDialect {
		case dialectBackslash:
			fmt.Fprintln(cmd.OutOrStdout(), dispatch.BackslashUnescape(args[0]))
		case dialectShell:
			fmt.Fprintln(cmd.OutOrStdout(), dispatch.ShellUnescape(args[0]))
		default:
			return fmt.Errorf("unknown dialect %q, want one of: %s|%s", flagUnescapeDialect, dialectBackslash, dialectShell)
		}
		return nil
	},
}

func init() {
	escapeCmd.Flags().StringVarP(&flagEscapeDialect, "dialect", "d", dialectBackslash, fmt.Sprintf("Escape dialect. One of: %s|%s.", dialectBackslash, dialectEntity))
	unescapeCmd.Flags().StringVarP(&flagUnescapeDialect, "dialect", "d", dialectBackslash, fmt.Sprintf("Unescape dialect. One of: %s|%s.", dialectBackslash, dialectShell))
}
