package taskstore

import (
	"strconv"
	"strings"
)

const (
	FieldDescription = "description"
	FieldDue         = "due"
	FieldDifficulty  = "difficulty"
)

type addInput struct {
	description  string
	daysUntilDue int
	difficulty   Difficulty
}

// parseAddInput checks the three raw form values in field order and
// reports the first one that fails. The description is kept as typed; only
// the numeric fields are trimmed before parsing.
func parseAddInput(description, dueText, difficultyText string) (addInput, error) {
	dueText = strings.TrimSpace(dueText)
	difficultyText = strings.TrimSpace(difficultyText)

	switch {
	case description == "":
		return addInput{}, &ValidationError{Field: FieldDescription, Reason: "required"}
	case dueText == "":
		return addInput{}, &ValidationError{Field: FieldDue, Reason: "required"}
	case difficultyText == "":
		return addInput{}, &ValidationError{Field: FieldDifficulty, Reason: "required"}
	}

	due, err := strconv.Atoi(dueText)
	if err != nil {
		return addInput{}, &ValidationError{Field: FieldDue, Reason: "must be a whole number of days"}
	}
	diff, err := strconv.Atoi(difficultyText)
	if err != nil {
		return addInput{}, &ValidationError{Field: FieldDifficulty, Reason: "must be a whole number"}
	}
	if due < 0 {
		return addInput{}, &ValidationError{Field: FieldDue, Reason: "must not be negative"}
	}
	if !Difficulty(diff).IsValid() {
		return addInput{}, &ValidationError{Field: FieldDifficulty, Reason: "must be between 1 and 5"}
	}

	return addInput{description: description, daysUntilDue: due, difficulty: Difficulty(diff)}, nil
}
