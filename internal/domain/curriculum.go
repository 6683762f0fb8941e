package domain

import "fmt"

// CurriculumWeek is one entry of a curriculum's weekly plan.
type CurriculumWeek struct {
	WeekNumber          int      `json:"week_number"`
	Title               string   `json:"title"`
	Topics              []string `json:"topics"`
	LearningObjectives  []string `json:"learning_objectives"`
	SuggestedActivities []string `json:"suggested_activities"`
}

// Curriculum is a week-by-week study plan derived from a document.
type Curriculum struct {
	Subject         string           `json:"subject"`
	DifficultyLevel string           `json:"difficulty_level"`
	TotalWeeks      int              `json:"total_weeks"`
	Overview        string           `json:"overview"`
	Prerequisites   []string         `json:"prerequisites"`
	Weeks           []CurriculumWeek `json:"weeks"`
}

// Validate checks that the fields a response needs are present.
// TotalWeeks is not compared with len(Weeks); see CountMatches.
func (c *Curriculum) Validate() error {
	if c.Subject == "" {
		return invalidResult("subject", "is required")
	}
	if c.Overview == "" {
		return invalidResult("overview", "is required")
	}
	if c.Weeks == nil {
		return invalidResult("weeks", "is required")
	}
	for i, w := range c.Weeks {
		field := fmt.Sprintf("weeks[%d]", i)
		if w.Title == "" {
			return invalidResult(field+".title", "is required")
		}
		if w.Topics == nil {
			return invalidResult(field+".topics", "is required")
		}
		if w.LearningObjectives == nil {
			return invalidResult(field+".learning_objectives", "is required")
		}
	}
	return nil
}

// CountMatches reports whether the declared week count equals the number of weeks.
func (c *Curriculum) CountMatches() bool {
	return c.TotalWeeks == len(c.Weeks)
}
