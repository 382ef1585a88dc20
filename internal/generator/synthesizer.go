package generator

import (
	"fmt"
	"math/rand"

	"quizforge/internal/domain"
	"quizforge/internal/nlp"
	"quizforge/internal/util"
)

const distractorCount = 3

// RejectReason explains why a candidate was discarded instead of
// accepted. Rejections stay inspectable so the orchestrator can
// aggregate and log them.
type RejectReason string

const (
	RejectNone     RejectReason = ""
	RejectTemplate RejectReason = "template_format"
	RejectInvalid  RejectReason = "validation"
)

// Candidate is the per-sentence synthesis result: either an accepted
// question or a typed rejection.
type Candidate struct {
	Question *domain.Question
	Reject   RejectReason
	Detail   string
}

// Accepted reports whether the candidate carries a valid question.
func (c Candidate) Accepted() bool {
	return c.Reject == RejectNone && c.Question != nil
}

// Synthesizer builds questions from extracted sentences. All random
// choices (template, key term, correct option slot) flow through the
// single injected rand source so a fixed seed gives fixed output.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a Synthesizer around the given random source.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Synthesize walks the corpus in order, producing one candidate per
// sentence, and stops once limit questions have been accepted or
// sentences are exhausted.
func (s *Synthesizer) Synthesize(req *domain.QuizRequest, corpus []nlp.SentencePhrases, limit int) []Candidate {
	var out []Candidate
	accepted := 0
	for i := range corpus {
		if accepted >= limit {
			break
		}
		cand := s.synthesizeOne(req, corpus, i)
		if cand.Accepted() {
			accepted++
		}
		out = append(out, cand)
	}
	return out
}

func (s *Synthesizer) synthesizeOne(req *domain.QuizRequest, corpus []nlp.SentencePhrases, idx int) Candidate {
	sp := corpus[idx]

	tier := TemplatesFor(req.Difficulty)
	tmpl := tier[s.rng.Intn(len(tier))]
	keyTerm := sp.Phrases[s.rng.Intn(len(sp.Phrases))]

	text, err := tmpl.Render(keyTerm, req.Subject, req.Topic)
	if err != nil {
		return Candidate{Reject: RejectTemplate, Detail: err.Error()}
	}

	// The correct answer is the source sentence verbatim.
	correct := sp.Sentence
	distractors := s.pickDistractors(corpus, idx, correct, keyTerm)

	answerKey := domain.OptionKeys[s.rng.Intn(len(domain.OptionKeys))]
	var opts domain.Options
	next := 0
	for _, k := range domain.OptionKeys {
		if k == answerKey {
			opts.Set(k, correct)
			continue
		}
		if next < len(distractors) {
			opts.Set(k, distractors[next])
			next++
		} else {
			opts.Set(k, fmt.Sprintf("Alternative explanation of %s", keyTerm))
		}
	}

	q := &domain.Question{
		ID:          util.NewULID(),
		Text:        text,
		Options:     opts,
		AnswerKey:   answerKey,
		Explanation: fmt.Sprintf("The correct answer is %s. %s", answerKey, correct),
	}
	if err := q.Validate(); err != nil {
		return Candidate{Reject: RejectInvalid, Detail: err.Error()}
	}
	return Candidate{Question: q}
}

// pickDistractors gathers key phrases from every other sentence and
// takes up to three distinct ones, padding with filler referencing the
// key term when the pool runs dry. Phrases that happen to be correct
// answers of other questions are not excluded.
func (s *Synthesizer) pickDistractors(corpus []nlp.SentencePhrases, idx int, correct, keyTerm string) []string {
	distractors := make([]string, 0, distractorCount)
	seen := make(map[string]bool, distractorCount)
	for j, other := range corpus {
		if j == idx {
			continue
		}
		for _, phrase := range other.Phrases {
			if len(distractors) == distractorCount {
				break
			}
			if phrase == correct || seen[phrase] {
				continue
			}
			seen[phrase] = true
			distractors = append(distractors, phrase)
		}
	}
	for len(distractors) < distractorCount {
		distractors = append(distractors,
			fmt.Sprintf("None of the above statements about %s are correct", keyTerm))
	}
	return distractors
}
