package domain

import "strings"

// Difficulty selects the question template tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty normalizes a difficulty string. Unknown values fall
// back to the intermediate tier, matching the template selection rule.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyBeginner:
		return DifficultyBeginner
	case DifficultyAdvanced:
		return DifficultyAdvanced
	default:
		return DifficultyIntermediate
	}
}

// IsValid reports whether d is one of the three accepted difficulty strings.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// QuizRequest is the immutable input to quiz generation.
type QuizRequest struct {
	Subject    string
	Topic      string
	Difficulty Difficulty
	Count      int
}

// Validate validates the quiz request.
func (r *QuizRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return NewInvalidInputError("subject is required")
	}
	if strings.TrimSpace(r.Topic) == "" {
		return NewInvalidInputError("topic is required")
	}
	if r.Count < 1 {
		return NewInvalidInputError("count must be at least 1")
	}
	return nil
}

// OptionKey identifies one of the four answer options.
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
	OptionD OptionKey = "D"
)

// OptionKeys lists the four keys in presentation order.
var OptionKeys = [4]OptionKey{OptionA, OptionB, OptionC, OptionD}

// IsValid reports whether k is one of A, B, C or D.
func (k OptionKey) IsValid() bool {
	switch k {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// Options holds the four answer texts. The fixed field set makes the
// "exactly four options" invariant structural.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Get returns the text stored under the given key.
func (o Options) Get(k OptionKey) string {
	switch k {
	case OptionA:
		return o.A
	case OptionB:
		return o.B
	case OptionC:
		return o.C
	case OptionD:
		return o.D
	}
	return ""
}

// Set stores text under the given key.
func (o *Options) Set(k OptionKey, text string) {
	switch k {
	case OptionA:
		o.A = text
	case OptionB:
		o.B = text
	case OptionC:
		o.C = text
	case OptionD:
		o.D = text
	}
}

// Question is one validated multiple-choice question. Instances are
// immutable once accepted into a result set.
type Question struct {
	ID          string    `json:"id"`
	Text        string    `json:"question"`
	Options     Options   `json:"options"`
	AnswerKey   OptionKey `json:"answer"`
	Explanation string    `json:"explanation"`
}

// minQuestionLength is the shortest acceptable question text.
const minQuestionLength = 10

// Validate enforces the structural invariants on a candidate question:
// non-empty text and options, a valid answer key, and a minimum
// question length.
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewMalformedCandidateError("question text is empty")
	}
	if len(q.Text) < minQuestionLength {
		return NewMalformedCandidateError("question text is too short")
	}
	if !q.AnswerKey.IsValid() {
		return NewMalformedCandidateError("answer key must be one of A, B, C, D")
	}
	for _, k := range OptionKeys {
		if q.Options.Get(k) == "" {
			return NewMalformedCandidateError("option " + string(k) + " is empty")
		}
	}
	return nil
}

// AnswerMap is a user submission keyed by 1-based question position.
// It may be sparse and may contain unrecognized letters.
type AnswerMap map[int]string

// ScoreResult is the outcome of evaluating a submission. It is derived
// and never persisted by this core.
type ScoreResult struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}
