package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/regstore/internal/app"
	"github.com/dshills/regstore/internal/buffer"
	"github.com/dshills/regstore/internal/register"
)

func parseRanges(specs []string) ([]buffer.Range, error) {
	ranges := make([]buffer.Range, 0, len(specs))
	for _, s := range specs {
		r, err := buffer.ParseRange(s)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseShape(s string) (register.Shape, error) {
	switch s {
	case "auto":
		return register.AutoLinewise, nil
	case "true", "line":
		return register.Linewise, nil
	case "false", "char":
		return register.Charwise, nil
	default:
		return register.Charwise, fmt.Errorf("invalid --linewise %q: want auto, true or false", s)
	}
}

func newCaptureCmd(c *cli, name, short string) *cobra.Command {
	var (
		ranges   []string
		reg      string
		linewise string
	)

	cmd := &cobra.Command{
		Use:   name + " <file>",
		Short: short,
		Long: fmt.Sprintf(`The %[1]s command captures the selected ranges of a file the way a
%[1]s in the editor would. The file itself is not modified.

Ranges are byte offsets start:end; give --range once per selection.
Without --range the whole file is selected.

Example:
  regstore %[1]s notes.txt --range 0:12
  regstore %[1]s notes.txt --range 0:3 --range 8:11 --register a
  regstore %[1]s notes.txt --range 4:20 --linewise true`, name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseRanges(ranges)
			if err != nil {
				return err
			}
			shape, err := parseShape(linewise)
			if err != nil {
				return err
			}
			view, err := app.OpenView(args[0], sel)
			if err != nil {
				return err
			}

			regs := c.app.Registers()
			switch name {
			case "yank":
				return regs.Yank(view, reg, shape)
			case "delete":
				return regs.Delete(view, reg, shape)
			default:
				return regs.Change(view, reg, shape)
			}
		},
	}
	cmd.Flags().StringArrayVarP(&ranges, "range", "r", nil, "Selection as start:end byte offsets (repeatable)")
	cmd.Flags().StringVar(&reg, "register", "", "Target register (default unnamed)")
	cmd.Flags().StringVarP(&linewise, "linewise", "l", "auto", "Capture shape: auto, true or false")
	return cmd
}

func newPasteCmd(c *cli) *cobra.Command {
	var (
		ranges []string
		mode   string
		quote  bool
	)

	cmd := &cobra.Command{
		Use:   "paste <name> <file>",
		Short: "Print what a paste from a register would insert",
		Long: `The paste command resolves a register for pasting into a file in the
given mode and prints the shape (l or c) followed by the fragments.

In visual modes the selected ranges are captured into the unnamed register
first, as replacing a selection would.

Example:
  regstore paste a notes.txt
  regstore paste '"' notes.txt --mode visual-line --range 0:6`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := register.ParsePasteMode(mode)
			if err != nil {
				return err
			}
			sel, err := parseRanges(ranges)
			if err != nil {
				return err
			}
			view, err := app.OpenView(args[1], sel)
			if err != nil {
				return err
			}

			values, linewise, err := c.app.Registers().ResolveForPaste(view, args[0], pm)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if linewise {
				fmt.Fprintln(out, "l")
			} else {
				fmt.Fprintln(out, "c")
			}
			printValues(out, values, quote)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&ranges, "range", "r", nil, "Selection as start:end byte offsets (repeatable)")
	cmd.Flags().StringVarP(&mode, "mode", "m", register.ModeNormal.String(),
		"Editor mode: normal, insert, visual, visual-line or visual-block")
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Print each fragment quoted on its own line")
	return cmd
}

func newExprCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "expr <expression>",
		Short: "Evaluate a Lua expression into the expression register",
		Long: `The expr command evaluates a Lua expression and stores the result in the
expression register. The next read of the unnamed register returns it once.

Example:
  regstore expr '"hello " .. string.rep("!", 3)'
  regstore expr '{"one", "two"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := c.app.Evaluate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printValues(cmd.OutOrStdout(), values, true)
			return nil
		},
	}
}

func newAlternateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "alternate [path]",
		Short: "Show or set the alternate file name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regs := c.app.Registers()
			if len(args) == 1 {
				regs.SetAlternateFile(args[0])
				return nil
			}
			if path, ok := regs.AlternateFile(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}
