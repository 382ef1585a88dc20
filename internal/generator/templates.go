// Package generator synthesizes multiple-choice questions from
// extracted sentences and key phrases, and supplies the generic
// fallback pool used to fill any shortfall.
package generator

import (
	"fmt"

	"quizforge/internal/domain"
)

// TemplateCategory classifies what a question pattern asks about.
type TemplateCategory string

const (
	CategoryDefinition   TemplateCategory = "definition"
	CategoryDescription  TemplateCategory = "description"
	CategoryRelationship TemplateCategory = "relationship"
	CategoryPurpose      TemplateCategory = "purpose"
	CategoryAnalysis     TemplateCategory = "analysis"
	CategoryImpact       TemplateCategory = "impact"
)

// QuestionTemplate is one static question pattern. Definition and
// description patterns take only the key term; relationship, analysis
// and impact patterns also take the topic; purpose takes the subject.
type QuestionTemplate struct {
	Pattern  string
	Category TemplateCategory
}

var templatesByTier = map[domain.Difficulty][]QuestionTemplate{
	domain.DifficultyBeginner: {
		{Pattern: "What is %s?", Category: CategoryDefinition},
		{Pattern: "Which of the following best describes %s?", Category: CategoryDescription},
	},
	domain.DifficultyIntermediate: {
		{Pattern: "How does %s relate to %s?", Category: CategoryRelationship},
		{Pattern: "What is the main purpose of %s in %s?", Category: CategoryPurpose},
	},
	domain.DifficultyAdvanced: {
		{Pattern: "What is the significance of %s in the context of %s?", Category: CategoryAnalysis},
		{Pattern: "How does %s impact %s?", Category: CategoryImpact},
	},
}

// TemplatesFor returns the template tier for a difficulty. Unknown
// difficulties use the intermediate tier.
func TemplatesFor(d domain.Difficulty) []QuestionTemplate {
	if tier, ok := templatesByTier[d]; ok {
		return tier
	}
	return templatesByTier[domain.DifficultyIntermediate]
}

// Render formats the pattern with the key term and, depending on the
// category, the request's topic or subject.
func (t QuestionTemplate) Render(keyTerm, subject, topic string) (string, error) {
	switch t.Category {
	case CategoryDefinition, CategoryDescription:
		return fmt.Sprintf(t.Pattern, keyTerm), nil
	case CategoryRelationship, CategoryAnalysis, CategoryImpact:
		return fmt.Sprintf(t.Pattern, keyTerm, topic), nil
	case CategoryPurpose:
		return fmt.Sprintf(t.Pattern, keyTerm, subject), nil
	}
	return "", domain.NewMalformedCandidateError(
		fmt.Sprintf("unknown template category: %s", t.Category))
}
