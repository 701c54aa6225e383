// Package relay is the contact form mail relay.
//
// The handler accepts the site's contact form at POST /send_mail, screens
// it (honeypot, required fields, address syntax) and forwards it over SMTP
// with a Reply-To pointing back at the visitor. When enabled it also sends
// the visitor a short acknowledgement. The mail configuration is read on
// every request from a file kept outside anything the relay serves.
//
// Every outcome maps to one JSON body:
//
//	500 {"error":"Configuration not found"}
//	400 {"error":"Invalid request"}           honeypot filled
//	422 {"error":"Missing required fields"}
//	422 {"error":"Invalid email address"}
//	500 {"error":"Unable to send message at this time."}
//	200 {"success":true,"message":"Message sent successfully"}
//
// GET /api/status reports delivery counters; Client reads it for the TUI
// header and posts forms for the contact command.
package relay
