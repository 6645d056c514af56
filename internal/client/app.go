package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-family-vault/internal/adapter"
	"github.com/MKhiriev/go-family-vault/internal/config"
	"github.com/MKhiriev/go-family-vault/internal/crypto"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/vault"
	"github.com/MKhiriev/go-family-vault/models"
)

const clientRole = "family-vault-client"

// App is the CLI runtime. Collaborators left nil by options are built from
// the merged client config on the first command.
type App struct {
	overrides *config.StructuredConfig
	buildInfo models.AppBuildInfo

	cfg       *config.ClientConfig
	server    adapter.ServerAdapter
	sessions  *SessionFile
	prompter  Prompter
	clipboard Clipboard
	vault     *vault.Session

	// shell is set while the interactive loop runs commands.
	shell bool

	out    io.Writer
	logger *logger.Logger
}

type Option func(*App)

func WithConfig(cfg *config.ClientConfig) Option {
	return func(a *App) { a.cfg = cfg }
}

func WithServerAdapter(server adapter.ServerAdapter) Option {
	return func(a *App) { a.server = server }
}

func WithSessionFile(f *SessionFile) Option {
	return func(a *App) { a.sessions = f }
}

func WithPrompter(p Prompter) Option {
	return func(a *App) { a.prompter = p }
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clipboard = c }
}

func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

func WithLogger(l *logger.Logger) Option {
	return func(a *App) { a.logger = l }
}

func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		overrides: &config.StructuredConfig{},
		buildInfo: buildInfo,
		clipboard: systemClipboard{},
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.prompter == nil {
		a.prompter = NewPrompter(os.Stdin, a.out)
	}
	return a
}

// Run executes one command line (without the program name). The vault
// session is locked before Run returns.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if a.vault != nil {
		a.vault.Lock()
	}
	return err
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "family-vault",
		Short:         "Family vault keeps household secrets encrypted on your device",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			cmd.SetContext(a.logger.WithContext(cmd.Context()))
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.out)
	root.SetErr(a.out)

	if !a.shell {
		flags := root.PersistentFlags()
		flags.StringVarP(&a.overrides.FilePath, "config", "c", "", "JSON or YAML config file")
		flags.StringVar(&a.overrides.Adapter.ServerAddress, "server", "", "server base URL")
		flags.StringVar(&a.overrides.Adapter.SessionFile, "session-file", "", "file keeping the account token")
		flags.DurationVar(&a.overrides.Workers.AutoLockAfter, "auto-lock", 0, "lock the shell after this idle time")
		flags.StringVar(&a.overrides.Log.Level, "log-level", "", "client log level")
	}

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.familyCommand(),
		a.vaultCommand(),
		a.versionCommand(),
	)
	if !a.shell {
		root.AddCommand(a.shellCommand())
	}

	return root
}

// setup builds whatever the options did not provide. It runs before every
// command and does nothing once the session exists.
func (a *App) setup() error {
	if a.vault != nil {
		return nil
	}

	if a.cfg == nil {
		cfg, err := config.GetClientConfig(a.overrides)
		if err != nil {
			return fmt.Errorf("load client config: %w", err)
		}
		a.cfg = cfg
	}

	if a.logger == nil {
		a.logger = logger.NewClientLogger(clientRole, filepath.Join(filepath.Dir(a.cfg.SessionFile), "client.log"))
		if err := logger.SetLevel(a.cfg.LogLevel); err != nil {
			return err
		}
	}

	if a.sessions == nil {
		a.sessions = NewSessionFile(a.cfg.SessionFile)
	}

	if a.server == nil {
		server, err := adapter.NewHTTPServerAdapter(a.cfg, a.logger)
		if err != nil {
			return err
		}
		a.server = server
	}

	token, err := a.sessions.Load()
	switch {
	case err == nil:
		a.server.SetToken(token)
	case errors.Is(err, ErrNoSession):
	default:
		return err
	}

	a.vault = vault.NewSession(
		a.server,
		a.server,
		vault.NewItemStore(a.server, a.logger),
		vault.NewSharingManager(a.server, a.logger),
		crypto.NewVaultCipher(),
		a.logger,
	)

	return nil
}

// unlock asks for the master password unless the session already holds one.
func (a *App) unlock() error {
	if a.vault.State() == vault.StateUnlocked {
		return nil
	}

	password, err := a.prompter.ReadSecret("Master password: ")
	if err != nil {
		return err
	}
	defer crypto.Wipe(password)

	return a.vault.Unlock(password)
}
