package client

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *App) familyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "family",
		Short: "Create, join or list your family",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a family and become its parent",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				family, err := a.server.CreateFamily(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				fmt.Fprintf(a.out, "Created family %q\n", family.Name)
				fmt.Fprintf(a.out, "Family id: %s (give it to members so they can join)\n", family.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "join <family-id>",
			Short: "Join an existing family",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.server.JoinFamily(cmd.Context(), args[0]); err != nil {
					return err
				}

				fmt.Fprintln(a.out, "Joined the family")
				return nil
			},
		},
		&cobra.Command{
			Use:   "members",
			Short: "List the members of your family",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				members, err := a.vault.FamilyMembers(cmd.Context())
				if err != nil {
					return err
				}

				identity, err := a.server.CurrentUser(cmd.Context())
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tROLE\t")
				for _, m := range members {
					name := m.FullName
					if identity != nil && m.UserID == identity.ID {
						name += " (you)"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t\n", m.UserID, name, m.Role)
				}
				return tw.Flush()
			},
		},
	)

	return cmd
}
