// Package core contains the calendar presentation contracts.
//
// Allowed here:
// - bubbletea message contracts for slide completion and calendar events
// - the key registry and default calendar bindings
// - theme palette and month lookup for typed selector jumps
//
// Not allowed here:
// - navigation state (see package navigation)
// - rendering primitives (see package widgets)
package core
