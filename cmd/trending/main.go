package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/studiowebux/trending/internal/api"
	"github.com/studiowebux/trending/internal/cli"
	"github.com/studiowebux/trending/internal/config"
	"github.com/studiowebux/trending/internal/logging"
	"github.com/studiowebux/trending/internal/render"
	"github.com/studiowebux/trending/internal/version"
	"go.uber.org/zap"
)

var (
	appVersion = "0.1.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trending",
	Short: "Browse GitHub trending repositories from the terminal",
	Long: `trending lists the repositories trending on GitHub.

Pick a language (type to search, "All" for no filter), a time range and a
project. The selected project's name and URL are printed on stdout.

Examples:
  trending                             # Pick everything interactively
  trending -l go -s weekly             # Skip the language and time range prompts
  trending --confirm                   # Ask before showing the language picker
  trending -f '[?stars > ` + "`1000`" + `]'       # Only show projects above 1000 stars
  trending -o json                     # Print the selected project as JSON
  trending languages                   # List the languages known to the API`,
	Version:       appVersion,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig, cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		if flagNoEmoji {
			cfg.Emoji = render.EmojiNever
		}

		logger, err = logging.New(cfg.Verbose)
		if err != nil {
			return err
		}
		if cfg.File != "" {
			logger.Debug("config loaded", zap.String("file", cfg.File))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{
			Language: flagLanguage,
			Since:    flagSince,
			Confirm:  cfg.Confirm,
			Output:   cfg.Output,
			Filter:   flagFilter,
			Copy:     flagCopy,
		}
		_, err := newRunner().Run(cmd.Context(), opts)
		return err
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages accepted by --language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newRunner().Languages(cmd.Context(), cfg.Output)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, optionally checking for a newer release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("trending %s\n", appVersion)
		if !flagCheck {
			return nil
		}

		update, err := version.CheckForUpdate(cmd.Context(), appVersion)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}
		if update.Available {
			fmt.Printf("A newer version is available: %s (%s)\n", update.Latest, update.URL)
		} else {
			fmt.Println("You are running the latest version")
		}
		return nil
	},
}

// Resolved per invocation in PersistentPreRunE
var (
	cfg    *config.Config
	logger *zap.Logger
)

// Flags for root command
var (
	flagConfig   string
	flagLanguage string
	flagSince    string
	flagFilter   string
	flagCopy     bool
	flagNoEmoji  bool
)

// Flags for version
var flagCheck bool

func init() {
	// Shared flags, resolved through config (flag > env > file > default)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.trending/config.yaml)")
	rootCmd.PersistentFlags().String(config.KeyAPIURL, api.DefaultBaseURL, "Trending API base URL")
	rootCmd.PersistentFlags().Duration(config.KeyTimeout, api.DefaultTimeout, "HTTP request timeout")
	rootCmd.PersistentFlags().StringP(config.KeyOutput, "o", "text", "Output format (text/json/yaml)")
	rootCmd.PersistentFlags().BoolP(config.KeyVerbose, "v", false, "Log debug information to stderr")

	// Root command flags
	rootCmd.Flags().StringVarP(&flagLanguage, "language", "l", "", "Language to filter by, skips the language picker (fuzzy matched, 'all' for none)")
	rootCmd.Flags().StringVarP(&flagSince, "since", "s", "", "Time range (daily/weekly/monthly), skips the time range picker")
	rootCmd.Flags().StringVarP(&flagFilter, "filter", "f", "", "JMESPath expression applied to the repositories list")
	rootCmd.Flags().BoolVarP(&flagCopy, "copy", "c", false, "Copy the selected project URL to the clipboard")
	rootCmd.Flags().Bool(config.KeyConfirm, false, "Ask whether to filter by language before the picker")
	rootCmd.Flags().String(config.KeyEmoji, "auto", "Star/fork glyphs (auto/always/never)")
	rootCmd.Flags().BoolVar(&flagNoEmoji, "no-emoji", false, "Same as --emoji=never")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "Check GitHub for a newer release")

	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(versionCmd)
}

// newRunner wires the pipeline for the terminal. Prompts and project entries are
// drawn on stderr, so colors follow stderr's capabilities.
func newRunner() *cli.Runner {
	client := api.NewClient(cfg.APIURL, cfg.Timeout,
		api.WithLogger(logger),
		api.WithUserAgent("trending/"+appVersion))

	renderer := lipgloss.NewRenderer(os.Stderr)
	formatter := render.NewFormatter(renderer, render.EmojiEnabled(cfg.Emoji, os.Stderr))

	return &cli.Runner{
		Client:    client,
		Prompter:  cli.NewTerminalPrompter(),
		Formatter: formatter,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Logger:    logger,
		Clipboard: clipboard.WriteAll,
	}
}
