// Package content fetches the spoken material for a drill round: a short
// definition of the word followed by two example sentences, produced by a
// chat model (OpenAI or Gemini).
package content
