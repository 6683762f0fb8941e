package domain

import "fmt"

// MCQOption is one labeled answer choice, e.g. {"option": "A", "text": "..."}.
type MCQOption struct {
	Option string `json:"option"`
	Text   string `json:"text"`
}

// MCQQuestion is a single multiple-choice question.
type MCQQuestion struct {
	QuestionNumber int         `json:"question_number"`
	Question       string      `json:"question"`
	Options        []MCQOption `json:"options"`
	CorrectAnswer  string      `json:"correct_answer"`
	Explanation    *string     `json:"explanation"`
	Difficulty     *string     `json:"difficulty"`
}

// MCQSet is a generated multiple-choice quiz.
type MCQSet struct {
	TotalQuestions  int           `json:"total_questions"`
	DifficultyLevel string        `json:"difficulty_level"`
	Questions       []MCQQuestion `json:"questions"`
}

// Validate checks every question has text, at least two uniquely labeled
// options, and a correct answer naming exactly one of them.
func (s *MCQSet) Validate() error {
	if s.Questions == nil {
		return invalidResult("questions", "is required")
	}
	for i, q := range s.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		if q.Question == "" {
			return invalidResult(field+".question", "is required")
		}
		if len(q.Options) < 2 {
			return invalidResult(field+".options", "must contain at least two options")
		}

		labels := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if opt.Option == "" {
				return invalidResult(field+".options", "contains an unlabeled option")
			}
			if _, dup := labels[opt.Option]; dup {
				return invalidResult(field+".options", fmt.Sprintf("repeats label %q", opt.Option))
			}
			labels[opt.Option] = struct{}{}
		}

		if _, ok := labels[q.CorrectAnswer]; !ok {
			return invalidResult(field+".correct_answer", fmt.Sprintf("%q does not match any option", q.CorrectAnswer))
		}
	}
	return nil
}

// CountMatches reports whether the declared question count equals the number of questions.
func (s *MCQSet) CountMatches() bool {
	return s.TotalQuestions == len(s.Questions)
}
