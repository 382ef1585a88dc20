package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Cache     CacheConfig
	Source    SourceConfig
	Generator GeneratorConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

// CacheConfig selects and configures the quiz set cache backend.
// Backend is "file" or "redis".
type CacheConfig struct {
	Backend string
	Dir     string
	Redis   RedisConfig
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SourceConfig configures the reference content source.
type SourceConfig struct {
	BaseURL      string
	FetchTimeout time.Duration
}

// GeneratorConfig configures synthesis. Seed 0 means time-seeded.
type GeneratorConfig struct {
	Seed int64
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("cache.backend", "file")
	viper.SetDefault("cache.dir", "quiz_cache")
	viper.SetDefault("source.base_url", "https://en.wikipedia.org")
	viper.SetDefault("source.fetch_timeout", 10)
	viper.SetDefault("generator.seed", 0)

	if err := viper.ReadInConfig(); err != nil {
		// The defaults cover every setting, so a missing file is fine.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Cache: CacheConfig{
			Backend: viper.GetString("cache.backend"),
			Dir:     viper.GetString("cache.dir"),
			Redis: RedisConfig{
				Address:  viper.GetString("cache.redis.address"),
				Password: viper.GetString("cache.redis.password"),
				DB:       viper.GetInt("cache.redis.db"),
			},
		},
		Source: SourceConfig{
			BaseURL:      viper.GetString("source.base_url"),
			FetchTimeout: viper.GetDuration("source.fetch_timeout") * time.Second,
		},
		Generator: GeneratorConfig{
			Seed: viper.GetInt64("generator.seed"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if backend := os.Getenv("CACHE_BACKEND"); backend != "" {
		config.Cache.Backend = backend
	}
	if dir := os.Getenv("CACHE_DIR"); dir != "" {
		config.Cache.Dir = dir
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Cache.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Cache.Redis.Password = redisPassword
	}
	if baseURL := os.Getenv("SOURCE_BASE_URL"); baseURL != "" {
		config.Source.BaseURL = baseURL
	}

	return config, nil
}
