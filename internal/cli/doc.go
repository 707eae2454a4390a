// Package cli holds what every executable shares: exit codes, the
// injectable Environment, signal handling and the runner used by the
// single-path tools launched from the context menu.
package cli
