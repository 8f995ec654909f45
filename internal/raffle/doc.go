// Package raffle contains the application state machine for the raffle picker.
//
// Allowed here:
// - the roster list with single-selection semantics
// - tab state and the spin engine
// - the State surface that key dispatch and rendering call into
//
// Not allowed here:
// - terminal rendering, key parsing, file or database access
//
// Nothing in this package blocks or fails. Preconditions that are not met
// (spinning an empty roster, removing with nothing selected) are no-ops.
package raffle
