// Package actions implements the side-effecting steps a matched rule
// applies to a path: move, copy, and delete. Actions are chained; each
// receives the path produced by the previous step and may return a new
// one. Like conditions, actions are built from declaration nodes through
// a factory registry keyed by type tag.
package actions
