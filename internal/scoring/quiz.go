package scoring

import (
	"errors"
	"fmt"
)

// ErrUnknownQuestion is returned for a quiz ID not in the bank.
var ErrUnknownQuestion = errors.New("unknown quiz question")

// Question is a static knowledge check, evaluated independently of the
// simulation. Wrong answers may be retried; the bonus is paid once.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	answer  int
}

var questionBank = []Question{
	{
		ID:     "hardest-replenishment",
		Prompt: "Which SKU is the hardest to replenish in time?",
		Choices: []string{
			"Mineral Water (3 day lead time)",
			"Bread (5 day lead time)",
			"Milk (2 day lead time)",
		},
		answer: 1, // longest lead time needs the earliest planning
	},
	{
		ID:     "variability-buffer",
		Prompt: "Demand for a SKU becomes more volatile. What happens to the safety stock it needs?",
		Choices: []string{
			"It shrinks",
			"It stays the same",
			"It grows",
		},
		answer: 2,
	},
	{
		ID:     "order-timing",
		Prompt: "When should a replenishment order be placed?",
		Choices: []string{
			"Whenever stock falls below yesterday's sales",
			"When stock is at or below the reorder point",
			"Only when stock reaches zero",
		},
		answer: 1,
	},
}

// Questions returns the quiz bank without the answers.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}

// CheckAnswer reports whether choice answers the question correctly.
func CheckAnswer(id string, choice int) (bool, error) {
	for _, q := range questionBank {
		if q.ID == id {
			return choice == q.answer, nil
		}
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
}
