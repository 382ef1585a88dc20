package cache

import "strings"

const (
	GlobalKeyPrefix = "quizforge"
)

// normalize lowercases a term and replaces its spaces with underscores.
func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// QuizSetKey builds the cache key for a generated question set. The
// identifier is the normalized subject_topic_difficulty triple, placed
// under the global namespace.
func QuizSetKey(subject, topic, difficulty string) string {
	identifier := strings.Join([]string{
		normalize(subject),
		normalize(topic),
		normalize(difficulty),
	}, "_")
	return strings.Join([]string{GlobalKeyPrefix, "quizset", identifier}, ":")
}
