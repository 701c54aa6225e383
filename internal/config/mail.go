package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrMailConfigNotFound means the relay has no mail configuration to use.
var ErrMailConfigNotFound = errors.New("mail configuration not found")

// PasswordEnv overrides an empty smtp.password.
const PasswordEnv = "REEL_SMTP_PASSWORD"

// SMTP holds transport settings.
type SMTP struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Secure   string `toml:"secure"` // "ssl", "tls" or "none"
}

// Mail holds the relay's sender, recipient and transport settings.
type Mail struct {
	SMTP      SMTP
	FromEmail string
	FromName  string
	ToEmail   string
	ToName    string
	AutoReply bool
}

// LoadMail reads the mail config. It is kept apart from the main config so
// it can live outside anything the relay serves. A missing file yields
// ErrMailConfigNotFound.
func LoadMail(path string) (Mail, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return Mail{}, ErrMailConfigNotFound
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Mail{}, ErrMailConfigNotFound
		}
		return Mail{}, fmt.Errorf("read mail config: %w", err)
	}

	var raw struct {
		SMTP SMTP `toml:"smtp"`
		Mail struct {
			FromEmail string `toml:"from_email"`
			FromName  string `toml:"from_name"`
			ToEmail   string `toml:"to_email"`
			ToName    string `toml:"to_name"`
			AutoReply *bool  `toml:"auto_reply"`
		} `toml:"mail"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Mail{}, fmt.Errorf("parse mail config: %w", err)
	}

	m := Mail{
		SMTP:      raw.SMTP,
		FromEmail: strings.TrimSpace(raw.Mail.FromEmail),
		FromName:  strings.TrimSpace(raw.Mail.FromName),
		ToEmail:   strings.TrimSpace(raw.Mail.ToEmail),
		ToName:    strings.TrimSpace(raw.Mail.ToName),
		AutoReply: raw.Mail.AutoReply == nil || *raw.Mail.AutoReply,
	}
	m.SMTP.Host = strings.TrimSpace(m.SMTP.Host)
	m.SMTP.Username = strings.TrimSpace(m.SMTP.Username)
	m.SMTP.Secure = strings.ToLower(strings.TrimSpace(m.SMTP.Secure))
	if m.SMTP.Password == "" {
		m.SMTP.Password = os.Getenv(PasswordEnv)
	}
	if m.SMTP.Port == 0 {
		m.SMTP.Port = defaultPort(m.SMTP.Secure)
	}

	switch {
	case m.SMTP.Host == "":
		return Mail{}, fmt.Errorf("mail config: smtp.host is required")
	case m.FromEmail == "":
		return Mail{}, fmt.Errorf("mail config: mail.from_email is required")
	case m.ToEmail == "":
		return Mail{}, fmt.Errorf("mail config: mail.to_email is required")
	}
	return m, nil
}

func defaultPort(secure string) int {
	switch secure {
	case "ssl":
		return 465
	case "none":
		return 25
	default:
		return 587
	}
}
