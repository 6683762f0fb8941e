// Package service contains the application use cases: one service per study
// task (chat with notes, curriculum, multiple-choice questions, flashcards).
//
// Every service follows the same flow:
//
//  1. validate the request parameters (domain.ErrValidation on failure)
//  2. render the task prompt with the prompt.Builder
//  3. send it to the shared generation.Generator
//  4. decode the reply with the extract package and check its structure
//
// Failures after step 1 are wrapped in a GenerationError whose message reads
// "failed to generate <thing>: <cause>", while the cause stays reachable with
// errors.Is for the API layer's status mapping.
//
// Services hold no per-request state. A single instance of each is built at
// startup and shared by all handlers.
package service
