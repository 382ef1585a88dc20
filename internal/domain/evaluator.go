package domain

import "strings"

// EvaluateAnswers scores a submission against a question set. Each
// question is matched by its 1-based position; a missing entry or an
// unrecognized letter contributes zero. Comparison is case-insensitive
// and whitespace-trimmed.
func EvaluateAnswers(questions []*Question, answers AnswerMap) ScoreResult {
	result := ScoreResult{Total: len(questions)}
	if len(questions) == 0 || len(answers) == 0 {
		return result
	}

	for i, q := range questions {
		given, ok := answers[i+1]
		if !ok {
			continue
		}
		key := OptionKey(strings.ToUpper(strings.TrimSpace(given)))
		if key == q.AnswerKey {
			result.Correct++
		}
	}
	return result
}
