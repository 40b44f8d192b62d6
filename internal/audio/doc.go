// Package audio provides speech synthesis for drill content. Providers turn
// text into an in-memory Clip that is handed straight to the player; nothing
// is written to a shared location on disk.
package audio
