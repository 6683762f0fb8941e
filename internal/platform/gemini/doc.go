// Package gemini provides an implementation of the generation.Generator interface
// backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it connects the task services to
// the external Gemini service without exposing the client library to the rest
// of the application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Sends one text prompt per call through google.golang.org/genai
//   - Concatenates the text parts of the first candidate into the reply
//
// 2. Error Handling:
//   - Bounds every attempt with the configured request timeout
//   - Retries transient failures with exponential backoff and jitter
//   - Maps safety blocks and empty replies to permanent errors
//
// Parsing the reply is left to the extract package.
package gemini
