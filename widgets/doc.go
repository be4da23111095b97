// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing of the calendar header, day grid and selector lists
// - frames, side by side stacks, popup overlay compositor
//
// Not allowed here:
// - key handling, navigation state transitions, selection changes
package widgets
