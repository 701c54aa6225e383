package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/prxstudio/reel/internal/config"
	"github.com/prxstudio/reel/internal/relay"
)

// RelayOptions configure the contact-form relay server.
type RelayOptions struct {
	ConfigPath string
	Bind       string // overrides relay.bind
	Logger     *zap.Logger

	// Mailer replaces the SMTP transport, for tests.
	Mailer relay.Mailer
}

// RunRelay serves the contact-form relay until the context is cancelled.
func RunRelay(ctx context.Context, opts RelayOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	bind := cfg.RelayBind
	if opts.Bind != "" {
		bind = opts.Bind
	}

	// The mail config is read per request; a missing file only warns here.
	if _, err := config.LoadMail(cfg.MailConfigPath); err != nil {
		if errors.Is(err, config.ErrMailConfigNotFound) {
			logger.Warn("mail config not found, submissions will fail until it exists",
				zap.String("path", cfg.MailConfigPath))
		} else {
			logger.Warn("mail config invalid", zap.String("path", cfg.MailConfigPath), zap.Error(err))
		}
	}

	mailer := opts.Mailer
	if mailer == nil {
		mailer = relay.SMTPMailer{}
	}
	handler := relay.NewHandler(relay.FileConfig(cfg.MailConfigPath), mailer, relay.NewStats(time.Now()), logger)
	return relay.Serve(ctx, bind, handler.Routes(), logger)
}
