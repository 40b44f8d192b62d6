// Package models lists the OpenAI models available for an API key, split
// into the speech models usable for synthesis and the chat models usable for
// word lookups.
package models
