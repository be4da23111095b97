// Package screens contains the stateful calendar component the playground
// hosts.
//
// Allowed here:
// - tea message handling for one calendar instance
// - mapping keys to navigation and selection operations
//
// Not allowed here:
// - month arithmetic or bounds rules (calendar, navigation)
// - low-level widget/layout primitives (widgets)
package screens
