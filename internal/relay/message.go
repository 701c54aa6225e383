package relay

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/prxstudio/reel/internal/config"
)

// Address is a display name and email.
type Address struct {
	Name  string
	Email string
}

// Message is a transport-neutral outgoing email.
type Message struct {
	From    Address
	To      Address
	ReplyTo *Address
	Subject string
	HTML    string
	Text    string
}

var stripTags = bluemonday.StrictPolicy()

// buildMessages returns the notification for the site owner and, when
// enabled, the acknowledgement for the visitor.
func buildMessages(cfg config.Mail, s Submission) []Message {
	from := Address{Name: cfg.FromName, Email: cfg.FromEmail}

	body := notificationHTML(s)
	msgs := []Message{{
		From:    from,
		To:      Address{Name: cfg.ToName, Email: cfg.ToEmail},
		ReplyTo: &Address{Name: s.Name, Email: s.ReplyTo()},
		Subject: "[Website] " + s.Subject,
		HTML:    body,
		Text:    plainText(body),
	}}

	if cfg.AutoReply {
		ack := fmt.Sprintf("<p>Hi %s,</p><p>Thanks for reaching out. We received your message and will reply within 24 hours.</p><p>%s</p>",
			html.EscapeString(s.Name), html.EscapeString(signature(cfg)))
		msgs = append(msgs, Message{
			From:    from,
			To:      Address{Name: s.Name, Email: s.BusinessEmail},
			Subject: "Received your message",
			HTML:    ack,
			Text:    plainText(ack),
		})
	}
	return msgs
}

func notificationHTML(s Submission) string {
	var b strings.Builder
	b.WriteString("<h3>New contact form submission</h3>")
	row := func(label, value string) {
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
	}
	row("Name", s.Name)
	row("Email", s.Email)
	row("Business Email", s.BusinessEmail)
	row("Company", s.Company)
	row("Subject", s.Subject)
	fmt.Fprintf(&b, "<p><strong>Message:</strong><br>%s</p>", nl2br(html.EscapeString(s.Message)))
	return b.String()
}

func nl2br(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>\n")
}

// plainText strips markup from an HTML body for the text alternative.
func plainText(body string) string {
	body = strings.NewReplacer("</p>", "</p>\n", "</h3>", "</h3>\n", "<br>", "").Replace(body)
	return strings.TrimSpace(html.UnescapeString(stripTags.Sanitize(body)))
}

func signature(cfg config.Mail) string {
	if cfg.FromName != "" {
		return cfg.FromName + " Team"
	}
	return "The Team"
}
