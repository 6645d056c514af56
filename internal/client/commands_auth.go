package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-family-vault/internal/crypto"
	"github.com/MKhiriev/go-family-vault/models"
)

func (a *App) registerCommand() *cobra.Command {
	var login, fullName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if login, err = a.askIfEmpty(login, "Login: "); err != nil {
				return err
			}
			if fullName, err = a.askIfEmpty(fullName, "Full name: "); err != nil {
				return err
			}

			password, err := readConfirmedSecret(a.prompter, "Account password: ", "Repeat account password: ")
			if err != nil {
				return err
			}
			defer crypto.Wipe(password)

			user := models.User{Login: login, FullName: fullName, Password: string(password)}
			if err = a.server.Register(cmd.Context(), user); err != nil {
				return err
			}
			if err = a.saveToken(); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Registered and logged in as %s\n", login)
			fmt.Fprintln(a.out, "Your vault master password is separate from the account password and is never sent to the server.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&login, "login", "l", "", "account login")
	cmd.Flags().StringVar(&fullName, "name", "", "name shown to family members")
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var login string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if login, err = a.askIfEmpty(login, "Login: "); err != nil {
				return err
			}

			password, err := a.prompter.ReadSecret("Account password: ")
			if err != nil {
				return err
			}
			defer crypto.Wipe(password)

			if err = a.server.Login(cmd.Context(), models.User{Login: login, Password: string(password)}); err != nil {
				return err
			}
			if err = a.saveToken(); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Logged in as %s\n", login)
			return nil
		},
	}

	cmd.Flags().StringVarP(&login, "login", "l", "", "account login")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session and lock the vault",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a.vault.Lock()
			a.server.SetToken("")
			if err := a.sessions.Clear(); err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

// saveToken persists the adapter's token. A new identity invalidates the
// master password held for the previous one.
func (a *App) saveToken() error {
	a.vault.Lock()
	return a.sessions.Save(a.server.Token())
}

func (a *App) askIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	answer, err := a.prompter.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", ErrEmptyInput
	}
	return answer, nil
}
