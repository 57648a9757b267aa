// Package domain contains the core value types of the tapeline library:
// symbols, directions, statuses, transition tables and the Machine itself.
//
// Everything here is a plain value. Machines are built through mutators
// during construction and treated as read-only afterwards, which makes a
// finished Machine safe for concurrent executions (each execution owns
// its private session, see internal/runtime).
package domain
