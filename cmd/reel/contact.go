package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prxstudio/reel/internal/config"
	"github.com/prxstudio/reel/internal/relay"
)

const submitTimeout = 30 * time.Second

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Fill in the contact form and submit it to the relay",
	Args:  cobra.NoArgs,
	RunE:  runContact,
}

func runContact(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	client, err := relay.NewClient(cfg.RelayURL)
	if err != nil {
		return fmt.Errorf("init relay client: %w", err)
	}

	s, err := promptSubmission()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, submitTimeout)
	defer cancelTimeout()

	res, err := client.Submit(ctx, s)
	if err != nil {
		logger.Debug("contact submission rejected", zap.Error(err))
		if res.Error != "" {
			return errors.New(res.Error)
		}
		return err
	}
	fmt.Fprintln(os.Stdout, res.Message)
	return nil
}

func promptSubmission() (relay.Submission, error) {
	s := relay.Submission{Subject: "Website contact"}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&s.Name).Validate(required("name")),
		huh.NewInput().Title("Email").Value(&s.Email).Validate(required("email")),
		huh.NewInput().Title("Business email").Value(&s.BusinessEmail).Validate(required("business email")),
		huh.NewInput().Title("Company").Value(&s.Company).Validate(required("company")),
		huh.NewInput().Title("Subject").Value(&s.Subject).Validate(required("subject")),
		huh.NewText().Title("Message").Value(&s.Message).Validate(required("message")),
	)).Run(); err != nil {
		return s, err
	}

	for _, v := range []*string{&s.Name, &s.Email, &s.BusinessEmail, &s.Company, &s.Subject, &s.Message} {
		*v = strings.TrimSpace(*v)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}

	var send bool
	if err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title("Send this message?").Value(&send),
	)).Run(); err != nil {
		return s, err
	}
	if !send {
		return s, errors.New("cancelled")
	}
	return s, nil
}

func required(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
