package handler

import (
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/service"
	"quizforge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateQuiz handles POST /api/quiz/generate. The response always
// carries the requested number of questions unless both real
// generation and the fallback pool were exhausted.
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	if err := h.validator.ValidateGenerateQuizRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.GenerateQuiz(c.UserContext(), &req)
	if err != nil {
		logger.Get().Error("Failed to generate quiz",
			zap.Error(err),
			zap.String("subject", req.Subject),
			zap.String("topic", req.Topic),
		)
		return err
	}

	return c.JSON(resp)
}

// EvaluateQuiz handles POST /api/quiz/evaluate.
func (h *QuizHandler) EvaluateQuiz(c *fiber.Ctx) error {
	var req dto.EvaluateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	if err := h.validator.ValidateEvaluateQuizRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.EvaluateQuiz(&req)
	if err != nil {
		logger.Get().Error("Failed to evaluate quiz", zap.Error(err))
		return err
	}

	return c.JSON(resp)
}
