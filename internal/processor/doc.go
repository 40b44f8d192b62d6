// Package processor wires the command line configuration to the drill
// session and its providers, and launches the graphical or terminal front
// end. It also converts finished rounds into Anki cards for export.
package processor
