// Package ui is reel's Bubble Tea program.
//
// The screen is a fixed stack of rows: a header with autoplay and relay
// status, the carousel (stage, controls, thumbnails, progress bar), the
// testimonial strip, the logo marquee and a help footer. Fixed heights keep
// mouse hit-testing a pure function of the cell position (see hitTest).
//
// All widget state lives in the carousel, testimonial and marquee packages;
// the model only routes messages to them. Autoplay owns no timer: after
// every Update the model schedules one tea.Tick for the controller's current
// generation, and stale ticks are discarded by the controller. A separate
// frame tick repaints the progress bar and advances the marquee.
//
// Pointer hover, drag and terminal focus suspend autoplay through the
// controller's pause reasons, the same way hovering or focusing the carousel
// pauses it on the site.
package ui
