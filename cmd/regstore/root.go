package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/regstore/internal/app"
)

// cli is the state shared by every command of one process, including
// the commands run from the shell.
type cli struct {
	app     *app.Application
	inShell bool
}

// open starts the application on first use.
func (c *cli) open(opts app.Options) error {
	if c.app != nil {
		return nil
	}
	a, err := app.New(opts)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	return c.app.Shutdown()
}

func newRootCmd(c *cli) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "regstore",
		Short: "Vim-style registers backed by a session file",
		Long: `regstore keeps a set of Vim-style registers (unnamed, numbered, named,
small delete, clipboard and read-only) in a session file, so yanks and deletes
made against files survive between invocations.

Example:
  regstore yank notes.txt --range 0:5
  regstore set a "hello"
  regstore paste a notes.txt --mode visual --range 0:5
  regstore list`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open(opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Flush()
		},
	}

	root.PersistentFlags().StringVar(&opts.SessionPath, "session", "", "Path to the session file")
	root.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the TOML configuration file")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.MemoryClipboard, "memory-clipboard", false, "Use an in-process clipboard instead of the system one")

	root.AddCommand(
		newListCmd(c),
		newGetCmd(c),
		newSetCmd(c),
		newCaptureCmd(c, "yank", "Copy selected text into a register"),
		newCaptureCmd(c, "delete", "Record deleted text in the registers"),
		newCaptureCmd(c, "change", "Record changed text in the registers"),
		newPasteCmd(c),
		newExprCmd(c),
		newAlternateCmd(c),
		newShellCmd(c),
	)
	return root
}
