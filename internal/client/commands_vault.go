// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-family-vault/internal/crypto"
	"github.com/MKhiriev/go-family-vault/models"
)

func (a *App) vaultCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Save, reveal and share secrets",
	}

	cmd.AddCommand(
		a.vaultListCommand(),
		a.vaultSaveCommand(),
		a.vaultRevealCommand(),
		a.vaultShareCommand(),
		a.vaultSharesCommand(),
		a.vaultDeleteCommand(),
		&cobra.Command{
			Use:   "lock",
			Short: "Forget the master password and every revealed secret",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				a.vault.Lock()
				fmt.Fprintln(a.out, "Vault locked")
				return nil
			},
		},
	)

	return cmd
}

func (a *App) vaultListCommand() *cobra.Command {
	var shared bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your secrets, or the ones shared with you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				items []models.VaultItem
				err   error
			)
			if shared {
				items, err = a.vault.ListSharedWithMe(cmd.Context())
			} else {
				items, err = a.vault.ListMyItems(cmd.Context())
			}
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Fprintln(a.out, "No secrets")
				return nil
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			if shared {
				fmt.Fprintln(tw, "ID\tTITLE\tOWNER\tCREATED\t")
			} else {
				fmt.Fprintln(tw, "ID\tTITLE\tSHARE VERSION\tCREATED\t")
			}
			for _, item := range items {
				title := item.Title
				if a.vault.Revealed(item.ID) {
					title += " (shown)"
				}
				if shared {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", item.ID, title, item.OwnerID, item.CreatedAt.Local().Format(time.DateTime))
				} else {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t\n", item.ID, title, item.ShareVersion, item.CreatedAt.Local().Format(time.DateTime))
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&shared, "shared", false, "list secrets other members shared with you")
	return cmd
}

func (a *App) vaultSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <title>",
		Short: "Encrypt a secret and save it to your family vault",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			if err := a.unlock(); err != nil {
				return err
			}

			secret, err := a.prompter.ReadSecret("Secret: ")
			if err != nil {
				return err
			}
			defer crypto.Wipe(secret)
			if len(secret) == 0 {
				return ErrEmptyInput
			}

			item, err := a.vault.SaveSecret(cmd.Context(), title, secret)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Saved %q (id %s)\n", item.Title, item.ID)
			return nil
		},
	}
}

func (a *App) vaultRevealCommand() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "reveal <id>",
		Short: "Decrypt a secret; in the shell, run again to hide it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			item, err := a.vault.Item(ctx, args[0])
			if err != nil {
				return err
			}
			if err = a.unlock(); err != nil {
				return err
			}

			if copyToClipboard {
				secret, err := a.vault.RevealSecret(ctx, item)
				if err != nil {
					return err
				}
				defer secret.Destroy()

				if err = a.clipboard.WriteAll(secret.Expose()); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintf(a.out, "Copied %q to the clipboard\n", item.Title)
				return nil
			}

			secret, shown, err := a.vault.ToggleReveal(ctx, item)
			if err != nil {
				return err
			}
			if !shown {
				fmt.Fprintf(a.out, "%s: hidden\n", item.Title)
				return nil
			}

			fmt.Fprintf(a.out, "%s: %s\n", item.Title, secret.Expose())
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "copy to the clipboard instead of printing")
	return cmd
}

func (a *App) vaultShareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id> [member-id...]",
		Short: "Share a secret with exactly the given members; no members unshares it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			item, err := a.vault.Item(ctx, args[0])
			if err != nil {
				return err
			}

			updated, err := a.vault.ShareItem(ctx, item, args[1:])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				fmt.Fprintf(a.out, "%q is no longer shared\n", updated.Title)
				return nil
			}
			fmt.Fprintf(a.out, "%q is shared with %d member(s)\n", updated.Title, len(args)-1)
			return nil
		},
	}
}

func (a *App) vaultSharesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shares <id>",
		Short: "List the members a secret is shared with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			item, err := a.vault.Item(ctx, args[0])
			if err != nil {
				return err
			}

			members, err := a.vault.Grants(ctx, item)
			if err != nil {
				return err
			}

			if len(members) == 0 {
				fmt.Fprintf(a.out, "%q is not shared\n", item.Title)
				return nil
			}
			for _, id := range members {
				fmt.Fprintln(a.out, id)
			}
			return nil
		},
	}
}

func (a *App) vaultDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Unshare and delete a secret you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			item, err := a.vault.Item(ctx, args[0])
			if err != nil {
				return err
			}
			if err = a.vault.DeleteSecret(ctx, item); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Deleted %q\n", item.Title)
			return nil
		},
	}
}
