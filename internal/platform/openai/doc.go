// Package openai implements the generation.Generator interface against an
// OpenAI-compatible chat-completions endpoint. It owns the wire format and
// the classification of HTTP and transport failures into the generation
// package's sentinel errors; retry and fallback policy live above this
// boundary in the menu service.
package openai
