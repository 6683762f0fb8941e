// Package generation defines the boundary between the application core and the
// hosted large-language-model (LLM) service used for AI content generation.
//
// The Generator interface takes a fully rendered prompt and returns the model's
// plain-text reply; turning that reply into typed results is the job of the
// extract and service packages. The Gemini implementation lives in
// internal/platform/gemini.
package generation
