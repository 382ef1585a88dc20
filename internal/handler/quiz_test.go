package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizforge/internal/dto"
	"quizforge/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockQuizService implements service.QuizService with function fields.
type mockQuizService struct {
	generateFunc func(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	evaluateFunc func(req *dto.EvaluateQuizRequest) (*dto.EvaluateQuizResponse, error)
}

func (m *mockQuizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	return m.generateFunc(ctx, req)
}

func (m *mockQuizService) EvaluateQuiz(req *dto.EvaluateQuizRequest) (*dto.EvaluateQuizResponse, error) {
	return m.evaluateFunc(req)
}

func newTestApp(svc *mockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewQuizHandler(svc)
	api := app.Group("/api")
	api.Post("/quiz/generate", h.GenerateQuiz)
	api.Post("/quiz/evaluate", h.EvaluateQuiz)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func sampleQuestions() []dto.QuestionResponse {
	return []dto.QuestionResponse{
		{
			ID:          "01HZX",
			Question:    "What is Gravity?",
			Options:     dto.OptionsResponse{A: "a", B: "b", C: "c", D: "d"},
			Answer:      "A",
			Explanation: "The correct answer is A. a",
		},
		{
			ID:          "01HZY",
			Question:    "What is Mass?",
			Options:     dto.OptionsResponse{A: "a", B: "b", C: "c", D: "d"},
			Answer:      "B",
			Explanation: "The correct answer is B. b",
		},
	}
}

func TestGenerateQuizHandler(t *testing.T) {
	t.Run("returns generated questions", func(t *testing.T) {
		svc := &mockQuizService{
			generateFunc: func(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
				assert.Equal(t, "Physics", req.Subject)
				assert.Equal(t, "Gravity", req.Topic)
				return &dto.GenerateQuizResponse{Questions: sampleQuestions()}, nil
			},
		}
		app := newTestApp(svc)

		resp := postJSON(t, app, "/api/quiz/generate", dto.GenerateQuizRequest{
			Subject: "Physics", Topic: "Gravity", Difficulty: "beginner", Count: 2,
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.GenerateQuizResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Questions, 2)
		assert.Equal(t, "What is Gravity?", body.Questions[0].Question)
		assert.Equal(t, "A", body.Questions[0].Answer)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		app := newTestApp(&mockQuizService{})

		req := httptest.NewRequest(http.MethodPost, "/api/quiz/generate", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects invalid requests before the service runs", func(t *testing.T) {
		tests := []struct {
			name string
			req  dto.GenerateQuizRequest
		}{
			{"missing subject", dto.GenerateQuizRequest{Topic: "Gravity", Difficulty: "beginner", Count: 3}},
			{"missing topic", dto.GenerateQuizRequest{Subject: "Physics", Difficulty: "beginner", Count: 3}},
			{"unknown difficulty", dto.GenerateQuizRequest{Subject: "Physics", Topic: "Gravity", Difficulty: "expert", Count: 3}},
			{"zero count", dto.GenerateQuizRequest{Subject: "Physics", Topic: "Gravity", Difficulty: "beginner", Count: 0}},
			{"count above cap", dto.GenerateQuizRequest{Subject: "Physics", Topic: "Gravity", Difficulty: "beginner", Count: 21}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				called := false
				svc := &mockQuizService{
					generateFunc: func(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
						called = true
						return nil, nil
					},
				}
				app := newTestApp(svc)

				resp := postJSON(t, app, "/api/quiz/generate", tt.req)
				defer resp.Body.Close()
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.False(t, called)

				var body middleware.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "INVALID_INPUT", body.Code)
			})
		}
	})
}

func TestEvaluateQuizHandler(t *testing.T) {
	t.Run("returns the score", func(t *testing.T) {
		svc := &mockQuizService{
			evaluateFunc: func(req *dto.EvaluateQuizRequest) (*dto.EvaluateQuizResponse, error) {
				assert.Len(t, req.Questions, 2)
				return &dto.EvaluateQuizResponse{Correct: 1, Total: 2}, nil
			},
		}
		app := newTestApp(svc)

		resp := postJSON(t, app, "/api/quiz/evaluate", dto.EvaluateQuizRequest{
			Questions: sampleQuestions(),
			Answers:   map[string]string{"1": "A", "2": "C"},
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.EvaluateQuizResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body.Correct)
		assert.Equal(t, 2, body.Total)
	})

	t.Run("rejects an empty question set", func(t *testing.T) {
		app := newTestApp(&mockQuizService{})

		resp := postJSON(t, app, "/api/quiz/evaluate", dto.EvaluateQuizRequest{
			Answers: map[string]string{"1": "A"},
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "INVALID_INPUT")
	})
}
