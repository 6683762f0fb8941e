// Package domain defines the study-content entities produced by the service:
// chat answers, curricula, multiple-choice question sets and flashcard decks,
// together with the parameter types that describe each generation request.
//
// Result types carry JSON tags that mirror the example schemas embedded in the
// prompts, so a model reply decodes directly into them.
package domain
