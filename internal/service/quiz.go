package service

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"
	"strings"

	"quizforge/internal/cache"
	"quizforge/internal/content"
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/generator"
	"quizforge/internal/logger"
	"quizforge/internal/nlp"

	"go.uber.org/zap"
)

// maxAttempts bounds the fetch/extract/synthesize retry loop.
const maxAttempts = 3

// QuizService defines the interface for quiz generation and scoring.
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	EvaluateQuiz(req *dto.EvaluateQuizRequest) (*dto.EvaluateQuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	source domain.ContentSource
	cache  domain.Cache
	synth  *generator.Synthesizer
	rng    *rand.Rand
}

// NewQuizService creates a new instance of quizService. All randomness
// in synthesis flows through rng, so a fixed seed gives deterministic
// quizzes.
func NewQuizService(source domain.ContentSource, quizCache domain.Cache, rng *rand.Rand) QuizService {
	return &quizService{
		source: source,
		cache:  quizCache,
		synth:  generator.NewSynthesizer(rng),
		rng:    rng,
	}
}

// GenerateQuiz implements QuizService. It consults the cache, runs the
// fetch/extract/synthesize loop with escalating query breadth, fills
// any shortfall from the generic pool, and writes the result back to
// the cache best-effort. It returns an error only for invalid input;
// source and cache trouble are recovered internally.
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	quizReq := &domain.QuizRequest{
		Subject:    strings.TrimSpace(req.Subject),
		Topic:      strings.TrimSpace(req.Topic),
		Difficulty: domain.ParseDifficulty(req.Difficulty),
		Count:      req.Count,
	}
	if err := quizReq.Validate(); err != nil {
		return nil, err
	}

	key := cache.QuizSetKey(quizReq.Subject, quizReq.Topic, string(quizReq.Difficulty))

	if cached := s.readCache(ctx, key, quizReq.Count); cached != nil {
		logger.Get().Info("serving quiz from cache",
			zap.String("key", key),
			zap.Int("count", quizReq.Count))
		return toResponse(cached), nil
	}

	questions := s.generate(ctx, quizReq)

	if len(questions) > 0 {
		s.writeCache(ctx, key, questions)
	}

	return toResponse(questions), nil
}

// generate runs the retry/escalation loop and the fallback fill.
func (s *quizService) generate(ctx context.Context, req *domain.QuizRequest) []*domain.Question {
	var questions []*domain.Question
	seenTexts := make(map[string]bool)

	merge := func(cands []generator.Candidate) {
		rejects := make(map[generator.RejectReason]int)
		duplicates := 0
		for _, cand := range cands {
			if !cand.Accepted() {
				rejects[cand.Reject]++
				continue
			}
			if seenTexts[cand.Question.Text] {
				duplicates++
				continue
			}
			seenTexts[cand.Question.Text] = true
			questions = append(questions, cand.Question)
		}
		if len(rejects) > 0 || duplicates > 0 {
			logger.Get().Debug("discarded candidates",
				zap.Int("template_format", rejects[generator.RejectTemplate]),
				zap.Int("validation", rejects[generator.RejectInvalid]),
				zap.Int("duplicate_text", duplicates))
		}
	}

	runAttempt := func(attempt int, broader bool) {
		corpus, err := s.source.Fetch(ctx, req.Subject, req.Topic, attempt, broader)
		if err != nil {
			// The wikipedia source never errors; a substituted source
			// might. Route the failure through the same filler path.
			logger.Get().Warn("content source failed, using filler text",
				zap.Int("attempt", attempt), zap.Error(err))
			corpus = content.Filler(req.Subject, req.Topic, content.FillerFetchError)
		}
		extracted := nlp.ExtractCorpus(corpus)
		if len(extracted) == 0 {
			logger.Get().Debug("no usable sentences in attempt",
				zap.Int("attempt", attempt),
				zap.Bool("broader", broader),
				zap.Int("corpus_chars", len(corpus)))
			return
		}
		merge(s.synth.Synthesize(req, extracted, req.Count))
	}

	for attempt := 0; attempt < maxAttempts && len(questions) < req.Count; attempt++ {
		runAttempt(attempt, false)

		// One broadened fetch on the penultimate attempt, layered on
		// top of the normal loop.
		if len(questions) < req.Count && attempt == maxAttempts-2 {
			runAttempt(attempt, true)
		}
	}

	if shortfall := req.Count - len(questions); shortfall > 0 {
		logger.Get().Info("filling shortfall with generic questions",
			zap.Int("generated", len(questions)),
			zap.Int("shortfall", shortfall))
		questions = append(questions,
			generator.GenericQuestions(s.rng, req.Subject, req.Topic, shortfall)...)
	}

	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}
	return questions
}

// readCache returns a cached question set when the stored entry covers
// the requested count, and nil otherwise. Read failures count as
// misses.
func (s *quizService) readCache(ctx context.Context, key string, count int) []*domain.Question {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("cache read failed, regenerating",
				zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var questions []*domain.Question
	if err := json.Unmarshal([]byte(value), &questions); err != nil {
		logger.Get().Warn("cache entry is not a question list, regenerating",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	if len(questions) < count {
		return nil
	}
	return questions[:count]
}

// writeCache stores the question set best-effort: a failure is logged
// and otherwise ignored.
func (s *quizService) writeCache(ctx context.Context, key string, questions []*domain.Question) {
	value, err := json.Marshal(questions)
	if err != nil {
		logger.Get().Warn("failed to encode quiz for cache",
			zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(value), 0); err != nil {
		logger.Get().Warn("cache write failed",
			zap.String("key", key), zap.Error(err))
	}
}

// EvaluateQuiz implements QuizService. Missing answers and unknown
// letters score zero; malformed position keys are skipped.
func (s *quizService) EvaluateQuiz(req *dto.EvaluateQuizRequest) (*dto.EvaluateQuizResponse, error) {
	questions := make([]*domain.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, fromQuestionDTO(q))
	}

	answers := make(domain.AnswerMap, len(req.Answers))
	for pos, letter := range req.Answers {
		index, err := strconv.Atoi(strings.TrimSpace(pos))
		if err != nil {
			continue
		}
		answers[index] = letter
	}

	result := domain.EvaluateAnswers(questions, answers)
	return &dto.EvaluateQuizResponse{
		Correct: result.Correct,
		Total:   result.Total,
	}, nil
}

func toResponse(questions []*domain.Question) *dto.GenerateQuizResponse {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionResponse{
			ID:       q.ID,
			Question: q.Text,
			Options: dto.OptionsResponse{
				A: q.Options.A,
				B: q.Options.B,
				C: q.Options.C,
				D: q.Options.D,
			},
			Answer:      string(q.AnswerKey),
			Explanation: q.Explanation,
		})
	}
	return &dto.GenerateQuizResponse{Questions: out}
}

func fromQuestionDTO(q dto.QuestionResponse) *domain.Question {
	return &domain.Question{
		ID:   q.ID,
		Text: q.Question,
		Options: domain.Options{
			A: q.Options.A,
			B: q.Options.B,
			C: q.Options.C,
			D: q.Options.D,
		},
		AnswerKey:   domain.OptionKey(strings.ToUpper(strings.TrimSpace(q.Answer))),
		Explanation: q.Explanation,
	}
}
