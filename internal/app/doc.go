// Package app is reel's composition root.
//
// Run loads the config and the page, turns the captured layout into the
// carousel controller, the testimonial track and the logo marquee, starts
// the relay status poller and hands everything to the ui package. A widget
// whose markup is missing is disabled with a log line instead of failing
// the run.
//
// RunRelay serves the contact-form relay. The mail configuration is read
// on every request, so a missing file at startup only warns.
//
// The poller refreshes state.Store from the relay's /api/status endpoint.
// Consecutive failures double the wait up to 30 seconds; the UI reports the
// relay offline after two.
package app
