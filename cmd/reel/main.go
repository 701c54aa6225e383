package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prxstudio/reel/internal/app"
	"github.com/prxstudio/reel/internal/config"
	"github.com/prxstudio/reel/internal/logging"
)

var (
	// Global flags
	configPath string
	envPath    string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "reel",
	Short: "Carousel, testimonials and logo marquee in the terminal, plus the contact-form relay",
	Long: `reel renders a site's carousel, testimonial slider and logo marquee
from its HTML or a YAML deck, and serves the site's contact-form mail relay.

Run without arguments to open the viewer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadDotEnv(envPath); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}

		opts := logging.Options{Verbose: verbose}
		// The viewer owns the terminal, so its log goes to a file.
		if !cmd.HasParent() || cmd.Name() == "show" {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.Path = cfg.LogPath
		}
		var err error
		logger, err = logging.New(opts)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runShow,
}

var (
	showPage  string
	showPoll  time.Duration
	relayBind string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open the carousel viewer (default)",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Serve the contact-form mail relay",
	Long: `Serves POST /send_mail (and /send_mail.php) plus GET /api/status.

The mail configuration is read on every request from relay.mail_config.
An empty smtp.password falls back to ` + config.PasswordEnv + `, which may
come from the --env file.`,
	Args: cobra.NoArgs,
	RunE: runRelay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config path (default ~/.config/reel/config.toml)")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "dotenv file with secrets (ignored when missing)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	for _, cmd := range []*cobra.Command{rootCmd, showCmd} {
		cmd.Flags().StringVarP(&showPage, "page", "p", "", "HTML page or YAML deck to show (overrides config)")
		cmd.Flags().DurationVar(&showPoll, "poll", 0, "relay status refresh interval (default 2s)")
	}
	relayCmd.Flags().StringVar(&relayBind, "bind", "", "listen address (overrides relay.bind)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(relayCmd)
	rootCmd.AddCommand(contactCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "reel: %v\n", err)
		os.Exit(1)
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.Run(ctx, app.Options{
		ConfigPath: configPath,
		Page:       showPage,
		PollEvery:  showPoll,
		Logger:     logger,
	})
}

func runRelay(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.RunRelay(ctx, app.RelayOptions{
		ConfigPath: configPath,
		Bind:       relayBind,
		Logger:     logger,
	})
}

// loadDotEnv loads environment variables from a dotenv file. A missing
// file is silently ignored.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
