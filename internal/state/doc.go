// Package state shares relay status between the background poller and the UI.
//
// The poller writes with Update after each /api/status call; the UI reads a
// Snapshot on every frame. Snapshots are copies: the recent delivery list is
// cloned in both directions so neither side can mutate what the other holds.
//
// A failed poll keeps the last good status and records the error:
//
//	store.Update(nil, err)
//	→ snapshot.Relay = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// Two failures in a row mark the snapshot offline, which the header renders
// as "relay offline" instead of the delivery counters.
//
// The zero Store is ready to use.
package state
