// Package client implements the interactive storefront application runtime.
//
// It wires the terminal UI, the domain services, and the background
// autosave worker into a single process lifecycle: hydrate state on start,
// flush it on exit.
package client
