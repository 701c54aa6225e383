// Package carousel implements the rotating slide carousel.
//
// # Orders
//
// Two sequences describe a carousel. The canonical order is captured once,
// in presentation order, and never changes; it is the index space for dots
// and thumbnails. The physical order is the live display order and is only
// ever rotated, so it stays a cyclic rotation of the canonical order:
//
//	canonical: [A B C D]
//	next()   : [B C D A]   head moved to tail
//	prev()   : [D A B C]   tail moved to head
//
// The active index is never stored. It is recomputed by looking up the
// head's ID in the canonical order, so indicators always reflect the true
// canonical position no matter how the physical order was reached.
//
// Each slide gets a synthetic ID at capture. Image references are kept for
// display and thumbnail matching only, so two slides sharing an image stay
// distinguishable.
//
// # GoTo
//
// GoTo locates the target's physical position p and rotates left p times
// when p <= n/2, otherwise right n-p times. p == 0 performs no rotation.
//
// # Autoplay and progress
//
// Autoplay is a scheduled-task handle with generations. The driver (the
// Bubble Tea program) schedules one tick per generation; Start, Stop,
// Suspend, Resume and Reset bump the generation so stale ticks are dropped
// by Fire. Hover, focus and drag are independent suspend reasons.
//
// The progress bar restarts from empty on every rotation and runs exactly
// one period. It is cleared when autoplay stops or is suspended.
//
// # Concurrency
//
// Engine and Controller are not synchronized. All events are expected to
// arrive on one goroutine, which Bubble Tea's Update loop guarantees.
package carousel
