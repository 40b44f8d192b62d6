// Package tui is the terminal front end of spellbee, built with bubbletea.
// It drives a drill.Session through the same operations as the GUI: one
// controller call per key press, with lookups and playback running as
// commands outside the update loop.
package tui
