// Package prompt renders the instruction text sent to the language model for
// each task kind.
//
// Every structured template embeds a literal JSON example whose keys match the
// corresponding domain result type; the extract package relies on the model
// imitating that example. Keep the two in step when editing either side.
package prompt

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/template"

	"github.com/phrazzld/edusense-api/internal/domain"
)

// Kind selects one of the prompt templates.
type Kind string

// Supported task kinds.
const (
	KindChat       Kind = "chat"
	KindCurriculum Kind = "curriculum"
	KindMCQ        Kind = "mcq"
	KindFlashcards Kind = "flashcards"
)

// Kinds lists every task kind in a stable order.
var Kinds = []Kind{KindChat, KindCurriculum, KindMCQ, KindFlashcards}

// ErrMissingTemplate is returned when a template set lacks one of the task kinds.
var ErrMissingTemplate = errors.New("prompt template missing")

//go:embed templates/*.tmpl
var embedded embed.FS

func (k Kind) fileName() string {
	return string(k) + ".tmpl"
}

// Builder renders prompts. It is immutable after construction and safe for
// concurrent use.
type Builder struct {
	templates map[Kind]*template.Template
}

// NewBuilder parses the prompt templates. When dir is empty the embedded
// templates are used; otherwise dir must contain one <kind>.tmpl file per kind.
func NewBuilder(dir string) (*Builder, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded templates: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return NewBuilderFS(fsys)
}

// NewBuilderFS parses one <kind>.tmpl per kind from fsys.
func NewBuilderFS(fsys fs.FS) (*Builder, error) {
	b := &Builder{templates: make(map[Kind]*template.Template, len(Kinds))}

	for _, kind := range Kinds {
		content, err := fs.ReadFile(fsys, kind.fileName())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingTemplate, kind.fileName(), err)
		}

		tmpl, err := template.New(string(kind)).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s prompt template: %w", kind, err)
		}
		b.templates[kind] = tmpl
	}

	return b, nil
}

// Render executes the template for kind with data. data must be the params
// type matching kind (e.g. domain.MCQParams for KindMCQ).
func (b *Builder) Render(kind Kind, data any) (string, error) {
	tmpl, ok := b.templates[kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown kind %q", ErrMissingTemplate, kind)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", kind, err)
	}
	return buf.String(), nil
}

// Chat renders the chat-with-notes prompt.
func (b *Builder) Chat(p domain.ChatParams) (string, error) {
	return b.Render(KindChat, p)
}

// Curriculum renders the curriculum prompt.
func (b *Builder) Curriculum(p domain.CurriculumParams) (string, error) {
	return b.Render(KindCurriculum, p)
}

// MCQ renders the multiple-choice question prompt.
func (b *Builder) MCQ(p domain.MCQParams) (string, error) {
	return b.Render(KindMCQ, p)
}

// Flashcards renders the flashcard prompt.
func (b *Builder) Flashcards(p domain.FlashcardParams) (string, error) {
	return b.Render(KindFlashcards, p)
}
