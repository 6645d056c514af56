package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-family-vault/internal/vault"
	"github.com/MKhiriev/go-family-vault/internal/workers"
)

func (a *App) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively with the vault kept unlocked until idle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context())
		},
	}
}

// runShell reads command lines until exit or end of input. The master
// password is asked once and kept until `vault lock`, logout or the
// auto-locker fires.
func (a *App) runShell(ctx context.Context) error {
	a.shell = true
	defer func() { a.shell = false }()

	bg := workers.NewWorkers()
	if a.cfg.AutoLockAfter > 0 {
		bg = workers.NewWorkers(vault.NewAutoLocker(a.vault, a.cfg.AutoLockAfter, a.logger))
	}
	bg.Run(ctx)
	defer bg.Stop()

	fmt.Fprintln(a.out, "Type a command such as `vault list`, `help` or `exit`.")

	for {
		line, err := a.prompter.ReadLine("family-vault> ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		root := a.newRootCommand()
		root.SetArgs(args)
		if err = root.ExecuteContext(ctx); err != nil {
			fmt.Fprintf(a.out, "Error: %s\n", HumanizeError(err))
		}
	}
}
