package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/regstore/internal/buffer"
)

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registers that have content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Type Name Content")
			for _, l := range c.app.Registers().List(buffer.NewView("")) {
				fmt.Fprintf(out, "  %c  \"%c   %s\n", l.Type, l.Name, display(l.Values))
			}
			return nil
		},
	}
}

func newGetCmd(c *cli) *cobra.Command {
	var quote bool

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print the content of a register",
		Long: `The get command prints a register's fragments joined by newlines.
Reading the unnamed register consumes a pending expression value.

Example:
  regstore get a
  regstore get '"' --quote`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := c.app.Registers().Get(buffer.NewView(""), args[0])
			if err != nil {
				return err
			}
			printValues(cmd.OutOrStdout(), values, quote)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Print each fragment quoted on its own line")
	return cmd
}

func newSetCmd(c *cli) *cobra.Command {
	var linewise bool

	cmd := &cobra.Command{
		Use:   "set <name> <value>...",
		Short: "Write values into a register",
		Long: `The set command writes one fragment per value. An uppercase letter
appends to the lowercase register.

Example:
  regstore set a "first line"
  regstore set A " more"
  regstore set b "one" "two" --linewise`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Registers().Set(args[0], args[1:], linewise)
		},
	}
	cmd.Flags().BoolVarP(&linewise, "linewise", "l", false, "Store the values as whole lines")
	return cmd
}

// display renders fragments on one line, showing newlines as ^J.
func display(values []string) string {
	return strings.ReplaceAll(strings.Join(values, "\n"), "\n", "^J")
}

func printValues(w io.Writer, values []string, quote bool) {
	if quote {
		for _, v := range values {
			fmt.Fprintf(w, "%q\n", v)
		}
		return
	}

	text := strings.Join(values, "\n")
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	io.WriteString(w, text)
}
