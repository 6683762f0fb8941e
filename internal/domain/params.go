package domain

import (
	"fmt"
	"unicode/utf8"
)

// Input limits shared by the HTTP layer and the services.
const (
	MinNotesLength    = 10
	MinQuestionLength = 3
	MinContentLength  = 50

	MinWeeks        = 1
	MaxWeeks        = 52
	MinMCQQuestions = 1
	MaxMCQQuestions = 20
	MinFlashcards   = 1
	MaxFlashcards   = 50
)

// Defaults applied when a caller omits an optional parameter.
const (
	DefaultCurriculumDifficulty = "intermediate"
	DefaultDurationWeeks        = 8
	DefaultSubject              = "General Studies"

	DefaultMCQDifficulty       = "medium"
	DefaultNumQuestions        = 5
	DefaultIncludeExplanations = true

	DefaultNumFlashcards = 10
	DefaultFocusAreas    = "general"
)

// ChatParams are the inputs of a chat-with-notes request.
type ChatParams struct {
	Notes    string
	Question string
	// Context is optional prior conversation text.
	Context string
}

// Validate checks the minimum lengths.
func (p ChatParams) Validate() error {
	if err := minLength("notes", p.Notes, MinNotesLength); err != nil {
		return err
	}
	return minLength("question", p.Question, MinQuestionLength)
}

// CurriculumParams are the inputs of a curriculum request.
type CurriculumParams struct {
	Document        string
	Subject         string
	DifficultyLevel string
	DurationWeeks   int
}

// Validate checks the document length and week range.
func (p CurriculumParams) Validate() error {
	if err := minLength("document", p.Document, MinContentLength); err != nil {
		return err
	}
	return inRange("duration_weeks", p.DurationWeeks, MinWeeks, MaxWeeks)
}

// SubjectOrDefault returns the subject, or DefaultSubject when none was given.
func (p CurriculumParams) SubjectOrDefault() string {
	if p.Subject == "" {
		return DefaultSubject
	}
	return p.Subject
}

// MCQParams are the inputs of a multiple-choice question request.
type MCQParams struct {
	Content             string
	NumQuestions        int
	DifficultyLevel     string
	IncludeExplanations bool
}

// Validate checks the content length and question count.
func (p MCQParams) Validate() error {
	if err := minLength("content", p.Content, MinContentLength); err != nil {
		return err
	}
	return inRange("num_questions", p.NumQuestions, MinMCQQuestions, MaxMCQQuestions)
}

// FlashcardParams are the inputs of a flashcard request.
type FlashcardParams struct {
	Content       string
	NumFlashcards int
	// FocusAreas optionally narrows the topics covered.
	FocusAreas string
}

// Validate checks the content length and card count.
func (p FlashcardParams) Validate() error {
	if err := minLength("content", p.Content, MinContentLength); err != nil {
		return err
	}
	return inRange("num_flashcards", p.NumFlashcards, MinFlashcards, MaxFlashcards)
}

// minLength counts characters, not bytes.
func minLength(field, value string, n int) error {
	if utf8.RuneCountInString(value) < n {
		return invalidParam(field, fmt.Sprintf("must be at least %d characters", n))
	}
	return nil
}

func inRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return invalidParam(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	return nil
}
