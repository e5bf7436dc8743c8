package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/buy/internal/buildinfo"
	"github.com/cleared-dev/buy/internal/config"
	"github.com/cleared-dev/buy/internal/gitops"
	"github.com/cleared-dev/buy/internal/ledger"
	buylog "github.com/cleared-dev/buy/internal/log"
	"github.com/cleared-dev/buy/internal/recorder"
)

type globalOptions struct {
	settingsPath string
	debug        bool
	logger       *slog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "buy <category> <amount>",
		Short: "Append an expense to your ledger file",
		Long: `buy appends one dated transaction to the ledger named by $LEDGER_FILE.

The amount is a whole number of shekels. Run "buy categories" for the list
of categories. Flags go before the category; everything after it is taken
as a positional argument.`,
		Example: "  buy keter 100\n  buy serve",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			_, _, err := requireCategoryAndAmount(args)
			return err
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = buylog.New(cmd.ErrOrStderr(), opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuy(opts, args[0], args[1])
		},
	}

	// Stop flag parsing at the category so an amount like "-5" reaches
	// ParseAmount instead of being read as a shorthand flag.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVar(&opts.settingsPath, "config", "", "YAML settings file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))

	return rootCmd
}

func runBuy(opts *globalOptions, categoryToken, amountToken string) error {
	app, err := startup(opts)
	if err != nil {
		return err
	}
	defer app.close()

	if _, err := app.rec.Record(categoryToken, amountToken); err != nil {
		return err
	}
	return nil
}

type application struct {
	cfg    *config.Config
	writer *ledger.Writer
	rec    *recorder.Recorder
}

func (a *application) close() {
	_ = a.writer.Close()
}

// startup resolves configuration and opens the ledger. Every error here is
// fatal to the process.
func startup(opts *globalOptions) (*application, error) {
	logger := opts.logger
	if logger == nil {
		logger = buylog.Discard()
	}

	cfg, err := config.Resolve(opts.settingsPath)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	lw, err := ledger.Open(cfg.LedgerPath)
	if err != nil {
		return nil, err
	}

	ropts := recorder.Options{
		Writer:   lw,
		Location: loc,
		Logger:   logger,
	}
	if cfg.Git.AutoCommit {
		committer, err := gitops.NewCommitter(cfg.LedgerPath, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			// Keep writing; just don't commit.
			buylog.WithComponent(logger, buylog.ComponentGit).Warn("auto-commit disabled", buylog.FieldError, err)
		} else {
			ropts.Committer = committer
		}
	}

	return &application{cfg: cfg, writer: lw, rec: recorder.New(ropts)}, nil
}
