package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server      ServerConfig
	Ollama      OllamaConfig
	LandMOS     LandMOSConfig
	Upload      UploadConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8000"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"10m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
}

type OllamaConfig struct {
	BaseURL       string        `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	VisionModel   string        `env:"VISION_MODEL" envDefault:"moondream"`
	TextModel     string        `env:"TEXT_MODEL" envDefault:"llama3.2:1b"`
	TagsTimeout   time.Duration `env:"OLLAMA_TAGS_TIMEOUT" envDefault:"10s"`
	PullTimeout   time.Duration `env:"OLLAMA_PULL_TIMEOUT" envDefault:"600s"`
	VisionTimeout time.Duration `env:"OLLAMA_VISION_TIMEOUT" envDefault:"300s"`
	TextTimeout   time.Duration `env:"OLLAMA_TEXT_TIMEOUT" envDefault:"180s"`
}

type LandMOSConfig struct {
	BaseURL string        `env:"LANDMOS_API_BASE" envDefault:"https://hpc.landmos.com/apiv3"`
	Timeout time.Duration `env:"LANDMOS_TIMEOUT" envDefault:"30s"`
}

type UploadConfig struct {
	Dir string `env:"UPLOAD_DIR" envDefault:"/app/uploads"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
