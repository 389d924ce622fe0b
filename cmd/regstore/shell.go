package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shellPrompt = "regstore> "

var errNestedShell = errors.New("already in a shell")

func newShellCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively against one session",
		Long: `The shell command reads commands line by line and runs them against a
single loaded session. The configuration file is watched and reloaded when it
changes. Type exit or quit, or send EOF, to leave.

Example:
  regstore shell
  regstore> yank notes.txt --range 0:5
  regstore> get '"'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.inShell {
				return errNestedShell
			}
			c.inShell = true
			defer func() { c.inShell = false }()

			if err := c.app.WatchConfig(cmd.Context()); err != nil {
				c.app.Logger().Warn("config watch unavailable", zap.Error(err))
			}
			return runShell(cmd, c)
		},
	}
}

func runShell(cmd *cobra.Command, c *cli) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	for {
		fmt.Fprint(out, shellPrompt)
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}

		line := strings.TrimSpace(in.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		words, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}

		sub := newRootCmd(c)
		sub.SetArgs(words)
		sub.SetIn(cmd.InOrStdin())
		sub.SetOut(out)
		sub.SetErr(errOut)
		if err := sub.ExecuteContext(cmd.Context()); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}

		if err := cmd.Context().Err(); err != nil {
			return nil
		}
	}
}
