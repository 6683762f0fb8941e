package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/edusense-api/internal/domain"
	"github.com/phrazzld/edusense-api/internal/extract"
	"github.com/phrazzld/edusense-api/internal/generation"
	"github.com/phrazzld/edusense-api/internal/mocks"
	"github.com/phrazzld/edusense-api/internal/prompt"
	"github.com/phrazzld/edusense-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studyContent = "Photosynthesis converts light energy into chemical energy. " +
	"It takes place in the chloroplasts of plant cells."

func builder(t *testing.T) *prompt.Builder {
	t.Helper()
	b, err := prompt.NewBuilder("")
	require.NoError(t, err)
	return b
}

// mcqReply builds a fenced model reply declaring total questions with n
// four-option questions.
func mcqReply(total, n int) string {
	var qs []string
	for i := 1; i <= n; i++ {
		qs = append(qs, fmt.Sprintf(`{
      "question_number": %d,
      "question": "Question %d?",
      "options": [
        {"option": "A", "text": "first"},
        {"option": "B", "text": "second"},
        {"option": "C", "text": "third"},
        {"option": "D", "text": "fourth"}
      ],
      "correct_answer": "B",
      "explanation": "B is right",
      "difficulty": "medium"
    }`, i, i))
	}
	return fmt.Sprintf("Here is your quiz:\n```json\n{\"total_questions\": %d, \"difficulty_level\": \"medium\", \"questions\": [%s]}\n```\nGood luck!",
		total, strings.Join(qs, ","))
}

func TestChatService(t *testing.T) {
	t.Parallel()

	params := domain.ChatParams{
		Notes:    "Python was released in 1991. It was created by Guido. It emphasises readability. It is popular.",
		Question: "When was Python released?",
	}

	t.Run("answer_with_sources", func(t *testing.T) {
		t.Parallel()

		gen := mocks.NewMockGeneratorWithReply("Python was released in 1991.")
		svc, err := service.NewChatService(gen, builder(t), nil)
		require.NoError(t, err)

		result, err := svc.ChatWithNotes(context.Background(), params)
		require.NoError(t, err)

		assert.Equal(t, "Python was released in 1991.", result.Answer)
		assert.Equal(t, 0.85, result.Confidence)
		assert.Equal(t, []string{"Python was released in 1991", "It was created by Guido", "It emphasises readability"}, result.Sources)
		assert.Contains(t, gen.LastPrompt(), "Question: When was Python released?")
	})

	t.Run("answer_is_trimmed", func(t *testing.T) {
		t.Parallel()

		gen := mocks.NewMockGeneratorWithReply("\n  Python was released in 1991.  \n")
		svc, err := service.NewChatService(gen, builder(t), nil)
		require.NoError(t, err)

		result, err := svc.ChatWithNotes(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, "Python was released in 1991.", result.Answer)
	})

	t.Run("invalid_params_skip_model", func(t *testing.T) {
		t.Parallel()

		gen := mocks.NewMockGeneratorWithReply("unused")
		svc, err := service.NewChatService(gen, builder(t), nil)
		require.NoError(t, err)

		_, err = svc.ChatWithNotes(context.Background(), domain.ChatParams{Notes: "short", Question: "Why?"})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Zero(t, gen.CallCount())
	})

	t.Run("model_error_is_wrapped", func(t *testing.T) {
		t.Parallel()

		svc, err := service.NewChatService(mocks.MockGeneratorWithTransientFailure(), builder(t), nil)
		require.NoError(t, err)

		_, err = svc.ChatWithNotes(context.Background(), params)
		require.Error(t, err)
		assert.ErrorIs(t, err, generation.ErrTransientFailure)
		assert.True(t, strings.HasPrefix(err.Error(), "failed to generate response: "))
	})
}

func TestMCQService(t *testing.T) {
	t.Parallel()

	params := domain.MCQParams{
		Content:             studyContent,
		NumQuestions:        3,
		DifficultyLevel:     "medium",
		IncludeExplanations: true,
	}

	t.Run("fenced_reply", func(t *testing.T) {
		t.Parallel()

		gen := mocks.NewMockGeneratorWithReply(mcqReply(3, 3))
		svc, err := service.NewMCQService(gen, builder(t), nil)
		require.NoError(t, err)

		set, err := svc.GenerateMCQs(context.Background(), params)
		require.NoError(t, err)

		assert.Equal(t, 3, set.TotalQuestions)
		require.Len(t, set.Questions, 3)
		for i, q := range set.Questions {
			assert.Equal(t, i+1, q.QuestionNumber)
			assert.Len(t, q.Options, 4)
			assert.Equal(t, "B", q.CorrectAnswer)
		}
		assert.Contains(t, gen.LastPrompt(), "Generate 3 multiple choice questions")
	})

	t.Run("count_mismatch_passes_through", func(t *testing.T) {
		t.Parallel()

		svc, err := service.NewMCQService(mocks.NewMockGeneratorWithReply(mcqReply(5, 2)), builder(t), nil)
		require.NoError(t, err)

		set, err := svc.GenerateMCQs(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, 5, set.TotalQuestions)
		assert.Len(t, set.Questions, 2)
	})

	t.Run("malformed_reply", func(t *testing.T) {
		t.Parallel()

		svc, err := service.NewMCQService(mocks.NewMockGeneratorWithReply("```json\n{\"questions\": [\n```"), builder(t), nil)
		require.NoError(t, err)

		set, err := svc.GenerateMCQs(context.Background(), params)
		assert.Nil(t, set)
		assert.ErrorIs(t, err, extract.ErrStructuredOutput)
		assert.True(t, strings.HasPrefix(err.Error(), "failed to generate MCQs: "))
	})

	t.Run("answer_not_among_options", func(t *testing.T) {
		t.Parallel()

		reply := strings.ReplaceAll(mcqReply(1, 1), `"correct_answer": "B"`, `"correct_answer": "E"`)
		svc, err := service.NewMCQService(mocks.NewMockGeneratorWithReply(reply), builder(t), nil)
		require.NoError(t, err)

		_, err = svc.GenerateMCQs(context.Background(), params)
		assert.ErrorIs(t, err, extract.ErrStructuredOutput)
		assert.ErrorIs(t, err, domain.ErrInvalidResult)
		assert.NotErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("content_blocked", func(t *testing.T) {
		t.Parallel()

		svc, err := service.NewMCQService(mocks.MockGeneratorWithContentBlocked(), builder(t), nil)
		require.NoError(t, err)

		_, err = svc.GenerateMCQs(context.Background(), params)
		assert.ErrorIs(t, err, generation.ErrContentBlocked)
	})
}

// logEntries decodes every JSON log line written to buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestGenerationFailureLogging(t *testing.T) {
	t.Parallel()

	params := domain.MCQParams{Content: studyContent, NumQuestions: 1, DifficultyLevel: "medium"}

	t.Run("unparseable_reply_is_logged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		reply := "Sorry, I cannot write a quiz about this topic."
		svc, err := service.NewMCQService(mocks.NewMockGeneratorWithReply(reply), builder(t), log)
		require.NoError(t, err)

		_, err = svc.GenerateMCQs(context.Background(), params)
		require.ErrorIs(t, err, extract.ErrStructuredOutput)

		entries := logEntries(t, &buf)
		require.NotEmpty(t, entries)
		last := entries[len(entries)-1]
		assert.Equal(t, "ERROR", last["level"])
		assert.Equal(t, "MCQ generation failed", last["msg"])
		assert.Equal(t, reply, last["response"])
		assert.Contains(t, last["error"], "invalid structured output")
	})

	t.Run("long_reply_is_truncated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		reply := "```json\n{\"subject\": " + strings.Repeat("x", 5000) + "\n```"
		svc, err := service.NewCurriculumService(mocks.NewMockGeneratorWithReply(reply), builder(t), log)
		require.NoError(t, err)

		_, err = svc.GenerateCurriculum(context.Background(), domain.CurriculumParams{
			Document:      studyContent,
			DurationWeeks: 4,
		})
		require.ErrorIs(t, err, extract.ErrStructuredOutput)

		entries := logEntries(t, &buf)
		require.NotEmpty(t, entries)
		logged, ok := entries[len(entries)-1]["response"].(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(logged, `{"subject": xxx`))
		assert.True(t, strings.HasSuffix(logged, "...[truncated]"))
		assert.Less(t, len(logged), len(reply))
	})

	t.Run("model_error_has_no_reply", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		svc, err := service.NewMCQService(mocks.MockGeneratorWithTransientFailure(), builder(t), log)
		require.NoError(t, err)

		_, err = svc.GenerateMCQs(context.Background(), params)
		require.Error(t, err)

		entries := logEntries(t, &buf)
		require.NotEmpty(t, entries)
		assert.NotContains(t, entries[len(entries)-1], "response")
	})
}

func TestCurriculumService(t *testing.T) {
	t.Parallel()

	reply := `{
  "subject": "Biology",
  "difficulty_level": "beginner",
  "total_weeks": 2,
  "overview": "Plants and energy",
  "prerequisites": ["none"],
  "weeks": [
    {"week_number": 1, "title": "Light", "topics": ["photons"], "learning_objectives": ["explain light"]},
    {"week_number": 2, "title": "Sugar", "topics": ["glucose"], "learning_objectives": ["explain glucose"], "suggested_activities": ["lab"]}
  ]
}`

	gen := mocks.NewMockGeneratorWithReply(reply)
	svc, err := service.NewCurriculumService(gen, builder(t), nil)
	require.NoError(t, err)

	curriculum, err := svc.GenerateCurriculum(context.Background(), domain.CurriculumParams{
		Document:        studyContent,
		DifficultyLevel: "beginner",
		DurationWeeks:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Biology", curriculum.Subject)
	assert.Equal(t, 2, curriculum.TotalWeeks)
	require.Len(t, curriculum.Weeks, 2)
	assert.Equal(t, []string{"lab"}, curriculum.Weeks[1].SuggestedActivities)
	assert.Contains(t, gen.LastPrompt(), "Subject: General Studies")

	t.Run("out_of_range_weeks", func(t *testing.T) {
		_, err := svc.GenerateCurriculum(context.Background(), domain.CurriculumParams{
			Document:      studyContent,
			DurationWeeks: 53,
		})
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "duration_weeks", verr.Field)
	})
}

func TestFlashcardService(t *testing.T) {
	t.Parallel()

	t.Run("bare_fence", func(t *testing.T) {
		t.Parallel()

		reply := "```\n{\"total_cards\": 1, \"focus_areas\": \"general\", \"flashcards\": [" +
			"{\"card_number\": 1, \"front\": \"ATP\", \"back\": \"Energy currency\", \"category\": \"terms\"}]}\n```"
		svc, err := service.NewFlashcardService(mocks.NewMockGeneratorWithReply(reply), builder(t), nil)
		require.NoError(t, err)

		deck, err := svc.GenerateFlashcards(context.Background(), domain.FlashcardParams{Content: studyContent, NumFlashcards: 1})
		require.NoError(t, err)
		require.NotNil(t, deck.FocusAreas)
		assert.Equal(t, "general", *deck.FocusAreas)
		require.Len(t, deck.Flashcards, 1)
		assert.Equal(t, "ATP", deck.Flashcards[0].Front)
	})

	t.Run("card_missing_back", func(t *testing.T) {
		t.Parallel()

		reply := `{"total_cards": 1, "flashcards": [{"card_number": 1, "front": "ATP", "back": ""}]}`
		svc, err := service.NewFlashcardService(mocks.NewMockGeneratorWithReply(reply), builder(t), nil)
		require.NoError(t, err)

		_, err = svc.GenerateFlashcards(context.Background(), domain.FlashcardParams{Content: studyContent, NumFlashcards: 1})
		assert.ErrorIs(t, err, extract.ErrStructuredOutput)
	})
}

func TestConstructorsRejectMissingDependencies(t *testing.T) {
	t.Parallel()

	b := builder(t)
	gen := &mocks.MockGenerator{}

	_, err := service.NewChatService(nil, b, nil)
	assert.ErrorIs(t, err, service.ErrMissingDependency)
	_, err = service.NewCurriculumService(gen, nil, nil)
	assert.ErrorIs(t, err, service.ErrMissingDependency)
	_, err = service.NewMCQService(nil, b, nil)
	assert.ErrorIs(t, err, service.ErrMissingDependency)
	_, err = service.NewFlashcardService(gen, nil, nil)
	assert.ErrorIs(t, err, service.ErrMissingDependency)
}
