// Package service runs the two analysis pipelines: vision-then-summarize
// for uploaded charts, and fetch-then-analyze-then-summarize for station
// time-series data.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/dookda/cmu-landmos-ai/internal/config"
	"github.com/dookda/cmu-landmos-ai/internal/landmos"
)

// Failure categories surfaced to the endpoint layer. Handlers map
// ErrModelUnavailable and ErrInference to 503; station client errors
// pass through untouched for the 502/504 mapping.
var (
	ErrModelUnavailable = errors.New("model unavailable")
	ErrInference        = errors.New("inference failed")
)

// Context windows for text inference. Station digests are longer than
// chart descriptions and need the wider window.
const (
	defaultNumCtx = 2048
	stationNumCtx = 4096
)

type ModelGateway interface {
	Tags(ctx context.Context) ([]string, error)
	IsAvailable(ctx context.Context, model string) bool
	Ensure(ctx context.Context, model string) bool
	GenerateVision(ctx context.Context, image []byte, prompt, model string) (string, error)
	GenerateText(ctx context.Context, prompt, model string, numCtx int) (string, error)
}

type StationAPI interface {
	Fetch(ctx context.Context, q landmos.Query) (*landmos.Dataset, error)
}

type ChartStore interface {
	Save(filename string, content []byte) error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type AnalyzeService struct {
	logger   *log.Logger
	gateway  ModelGateway
	stations StationAPI
	charts   ChartStore
	cfg      config.OllamaConfig
	cache    Cache
}

func NewAnalyzeService(
	logger *log.Logger,
	gateway ModelGateway,
	stations StationAPI,
	charts ChartStore,
	cfg config.OllamaConfig,
) *AnalyzeService {
	return &AnalyzeService{
		logger:   logger,
		gateway:  gateway,
		stations: stations,
		charts:   charts,
		cfg:      cfg,
	}
}

func (s *AnalyzeService) SetCacheClient(cache Cache) {
	s.cache = cache
}

// truncateSummary is the fallback when the lay-summary call fails after
// a successful analysis step. The cut counts characters, not bytes, so
// Thai descriptions keep their full 300 characters and never split a rune.
func truncateSummary(description string) string {
	runes := []rune(description)
	if len(runes) > 300 {
		return string(runes[:300]) + "..."
	}
	return description
}
