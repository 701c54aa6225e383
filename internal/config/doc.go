// Package config loads reel's configuration files.
//
// # Files
//
// Two TOML files are read:
//
//   - config.toml (default ~/.config/reel/config.toml): markup source,
//     carousel timing, relay endpoints and log location
//   - mail.toml (default ~/.config/reel/mail.toml): SMTP transport and
//     sender/recipient addresses for the contact relay
//
// The mail file is separate so it can live outside any served directory,
// and it is re-read on every relay request.
//
// # Defaults
//
// A missing config.toml is not an error. Missing or blank fields fall back
// to:
//
//   - page: ~/.config/reel/deck.yaml
//   - carousel.interval: 7s
//   - carousel.swipe_threshold_max: 60
//   - relay.bind: 127.0.0.1:8025
//   - relay.url: http://<relay.bind>
//   - relay.mail_config: ~/.config/reel/mail.toml
//   - log.path: ~/.local/state/reel/reel.log
//
// A missing mail.toml yields ErrMailConfigNotFound; the relay turns it into
// a 500 response rather than refusing to start.
//
// # TOML Format
//
//	page = "~/site/index.html"
//
//	[carousel]
//	interval = "7s"
//
//	[relay]
//	bind = "0.0.0.0:8025"
//	mail_config = "/etc/reel/mail.toml"
//
// mail.toml:
//
//	[smtp]
//	host = "smtp.example.com"
//	port = 587
//	username = "relay@example.com"
//	secure = "tls"          # ssl, tls or none
//
//	[mail]
//	from_email = "relay@example.com"
//	from_name = "Website"
//	to_email = "contact@example.com"
//	to_name = "Contact"
//	auto_reply = true
//
// An empty smtp.password is taken from REEL_SMTP_PASSWORD, which the CLI
// may load from a .env file.
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory and relative paths are
// made absolute.
package config
