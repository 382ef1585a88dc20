package content

import "fmt"

// FillerVariant names the failure path that produced a synthetic
// paragraph. The three variants are functionally interchangeable.
type FillerVariant int

const (
	// FillerNoResults substitutes for a search that returned no hits.
	FillerNoResults FillerVariant = iota
	// FillerTooShort substitutes for an extract that cleaned to under
	// MinUsefulLength characters.
	FillerTooShort
	// FillerFetchError substitutes for a network or decoding failure.
	FillerFetchError
)

// Filler returns a deterministic synthetic paragraph about the topic.
// It is always long enough to hand to the extractor, though short
// enough that extraction may legitimately yield no questions from it.
func Filler(subject, topic string, variant FillerVariant) string {
	switch variant {
	case FillerTooShort:
		return fmt.Sprintf(
			"%s is a fundamental concept in %s. It encompasses various important principles and methodologies. Studying %s helps in understanding key aspects of %s and its practical applications.",
			topic, subject, topic, subject)
	case FillerFetchError:
		return fmt.Sprintf(
			"%s is a crucial element in %s. It plays a vital role in understanding and applying key concepts. Mastering %s is essential for success in %s and related fields.",
			topic, subject, topic, subject)
	default:
		return fmt.Sprintf(
			"%s is an important concept in %s. It involves various principles and methods that are widely used in the field. Understanding %s is essential for mastering %s and its applications in real-world scenarios.",
			topic, subject, topic, subject)
	}
}
