// Package generation defines the boundary between the application core and
// the external LLM provider. It abstracts the details of the provider API,
// allowing the orchestration and retry policy to be exercised against a fake
// implementation without network access.
package generation
