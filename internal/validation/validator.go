package validation

import (
	"fmt"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
)

// maxQuestionCount caps a single generation request at the HTTP
// boundary. The core itself accepts any positive count.
const maxQuestionCount = 20

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the quiz generation request.
// It returns nil when the request is acceptable.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) error {
	if strings.TrimSpace(req.Subject) == "" {
		return domain.NewInvalidInputError("subject is required")
	}
	if strings.TrimSpace(req.Topic) == "" {
		return domain.NewInvalidInputError("topic is required")
	}
	if !domain.Difficulty(strings.ToLower(strings.TrimSpace(req.Difficulty))).IsValid() {
		return domain.NewInvalidInputError(
			fmt.Sprintf("difficulty must be one of beginner, intermediate, advanced; got %q", req.Difficulty))
	}
	if req.Count < 1 || req.Count > maxQuestionCount {
		return domain.NewInvalidInputError(
			fmt.Sprintf("count must be between 1 and %d", maxQuestionCount))
	}
	return nil
}

// ValidateEvaluateQuizRequest validates the evaluation request.
func (v *Validator) ValidateEvaluateQuizRequest(req *dto.EvaluateQuizRequest) error {
	if len(req.Questions) == 0 {
		return domain.NewInvalidInputError("questions are required")
	}
	return nil
}
