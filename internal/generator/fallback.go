package generator

import (
	"fmt"
	"math/rand"

	"quizforge/internal/domain"
	"quizforge/internal/util"
)

// GenericQuestions returns up to count difficulty-agnostic questions
// parameterized only by subject and topic. The pool order is
// randomized before truncation. Every entry pre-satisfies the question
// validator, so fallback output is always structurally valid.
func GenericQuestions(rng *rand.Rand, subject, topic string, count int) []*domain.Question {
	if count <= 0 {
		return nil
	}

	pool := []*domain.Question{
		{
			Text: fmt.Sprintf("Which of the following best describes %s in %s?", topic, subject),
			Options: domain.Options{
				A: fmt.Sprintf("A fundamental concept in %s", subject),
				B: fmt.Sprintf("An advanced topic in %s", subject),
				C: fmt.Sprintf("A specialized area of %s", subject),
				D: fmt.Sprintf("A theoretical framework in %s", subject),
			},
			AnswerKey: domain.OptionA,
		},
		{
			Text: fmt.Sprintf("What is the primary purpose of studying %s in %s?", topic, subject),
			Options: domain.Options{
				A: "To understand theoretical concepts",
				B: "To solve practical problems",
				C: "To develop new methodologies",
				D: "To advance research in the field",
			},
			AnswerKey: domain.OptionB,
		},
		{
			Text: fmt.Sprintf("How is %s typically applied in %s?", topic, subject),
			Options: domain.Options{
				A: "Through practical experiments",
				B: "Through theoretical analysis",
				C: "Through computational methods",
				D: "Through systematic study",
			},
			AnswerKey: domain.OptionA,
		},
		{
			Text: fmt.Sprintf("Which field is most closely related to %s in %s?", topic, subject),
			Options: domain.Options{
				A: "Theoretical research",
				B: "Applied sciences",
				C: "Practical applications",
				D: "Experimental studies",
			},
			AnswerKey: domain.OptionB,
		},
		{
			Text: fmt.Sprintf("What is a key characteristic of %s in %s?", topic, subject),
			Options: domain.Options{
				A: "Its practical applications",
				B: "Its theoretical foundation",
				C: "Its systematic approach",
				D: "Its research methodology",
			},
			AnswerKey: domain.OptionC,
		},
	}

	for _, q := range pool {
		q.ID = util.NewULID()
		q.Explanation = fmt.Sprintf("The correct answer is %s. %s",
			q.AnswerKey, q.Options.Get(q.AnswerKey))
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count < len(pool) {
		pool = pool[:count]
	}
	return pool
}
