// Package wordlist turns free-form user input into the ordered list of words
// a drill session works through. Input comes either from text typed into the
// UI or from a word file (plain text, CSV or Excel).
package wordlist
