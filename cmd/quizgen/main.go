// Command quizgen generates a single quiz from the command line and
// prints it as JSON. It uses the same pipeline as the API server, with
// a file-backed cache.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"quizforge/internal/adapter"
	"quizforge/internal/adapter/wikipedia"
	"quizforge/internal/config"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/service"
)

func main() {
	subject := flag.String("subject", "", "quiz subject, e.g. \"Physics\"")
	topic := flag.String("topic", "", "quiz topic, e.g. \"Quantum mechanics\"")
	difficulty := flag.String("difficulty", "intermediate", "beginner, intermediate or advanced")
	count := flag.Int("count", 5, "number of questions")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	cacheDir := flag.String("cache-dir", "quiz_cache", "quiz cache directory")
	flag.Parse()

	if *subject == "" || *topic == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := logger.Initialize(config.LoggerConfig{Level: "info", Env: "development"}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	quizCache, err := adapter.NewFileCacheAdapter(*cacheDir)
	if err != nil {
		log.Fatalf("Failed to create cache directory: %v", err)
	}

	source := wikipedia.NewSource(wikipedia.DefaultBaseURL, 10*time.Second, logger.Get())

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	quizService := service.NewQuizService(source, quizCache, rng)

	resp, err := quizService.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{
		Subject:    *subject,
		Topic:      *topic,
		Difficulty: *difficulty,
		Count:      *count,
	})
	if err != nil {
		log.Fatalf("Failed to generate quiz: %v", err)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode quiz: %v", err)
	}
	fmt.Println(string(out))
}
