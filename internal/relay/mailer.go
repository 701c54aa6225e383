package relay

import (
	"context"
	"fmt"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/prxstudio/reel/internal/config"
)

// Mailer delivers messages using the given transport settings.
type Mailer interface {
	Send(ctx context.Context, smtp config.SMTP, msgs ...Message) error
}

// MailerFunc adapts a function to Mailer.
type MailerFunc func(ctx context.Context, smtp config.SMTP, msgs ...Message) error

func (f MailerFunc) Send(ctx context.Context, smtp config.SMTP, msgs ...Message) error {
	return f(ctx, smtp, msgs...)
}

const smtpTimeout = 15 * time.Second

// SMTPMailer sends through an SMTP server with go-mail. A client is dialed
// per call since settings are reloaded per request.
type SMTPMailer struct{}

var _ Mailer = SMTPMailer{}

func (SMTPMailer) Send(ctx context.Context, smtp config.SMTP, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	client, err := mail.NewClient(smtp.Host, clientOptions(smtp)...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	out := make([]*mail.Msg, 0, len(msgs))
	for i, m := range msgs {
		msg, err := toMsg(m)
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		out = append(out, msg)
	}
	if err := client.DialAndSendWithContext(ctx, out...); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func clientOptions(smtp config.SMTP) []mail.Option {
	opts := []mail.Option{
		mail.WithPort(smtp.Port),
		mail.WithTimeout(smtpTimeout),
	}
	switch smtp.Secure {
	case "ssl":
		opts = append(opts, mail.WithSSL())
	case "none":
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if smtp.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(smtp.Username),
			mail.WithPassword(smtp.Password),
		)
	}
	return opts
}

func toMsg(m Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.From.Name, m.From.Email); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := msg.AddToFormat(m.To.Name, m.To.Email); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	if m.ReplyTo != nil {
		if err := msg.ReplyToFormat(m.ReplyTo.Name, m.ReplyTo.Email); err != nil {
			return nil, fmt.Errorf("reply-to: %w", err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextHTML, m.HTML)
	if m.Text != "" {
		msg.AddAlternativeString(mail.TypeTextPlain, m.Text)
	}
	return msg, nil
}
