package domain

import "fmt"

// Flashcard is a single study card.
type Flashcard struct {
	CardNumber int    `json:"card_number"`
	Front      string `json:"front"`
	Back       string `json:"back"`
	Category   *string `json:"category"`
	Difficulty *string `json:"difficulty"`
}

// FlashcardDeck is a generated set of flashcards.
type FlashcardDeck struct {
	TotalCards int         `json:"total_cards"`
	FocusAreas *string     `json:"focus_areas"`
	Flashcards []Flashcard `json:"flashcards"`
}

// Validate checks that every card has both sides.
func (d *FlashcardDeck) Validate() error {
	if d.Flashcards == nil {
		return invalidResult("flashcards", "is required")
	}
	for i, c := range d.Flashcards {
		if c.Front == "" {
			return invalidResult(fmt.Sprintf("flashcards[%d].front", i), "is required")
		}
		if c.Back == "" {
			return invalidResult(fmt.Sprintf("flashcards[%d].back", i), "is required")
		}
	}
	return nil
}

// CountMatches reports whether the declared card count equals the number of cards.
func (d *FlashcardDeck) CountMatches() bool {
	return d.TotalCards == len(d.Flashcards)
}
