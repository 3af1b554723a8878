package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dookda/cmu-landmos-ai/internal/landmos"
	"github.com/dookda/cmu-landmos-ai/internal/models"
	"github.com/google/uuid"
)

// StationRequest identifies the station dataset to analyze.
type StationRequest struct {
	StatCode  string
	StartDate string
	EndDate   string
	Language  string
	ModelMode string
}

// AnalyzeStation runs the station pipeline: ensure the text model,
// fetch records from the LandMOS API, digest them, then run the
// technical-analysis and lay-summary inference calls.
func (s *AnalyzeService) AnalyzeStation(ctx context.Context, req StationRequest) (*models.StationAnalysisResponse, error) {
	mode := models.ResolveMode(req.ModelMode)

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, stationCacheKey(req))
		if err != nil {
			s.logger.Printf("cache get error: %v\n", err)
		}
		if found {
			var resp models.StationAnalysisResponse
			if err := sonic.Unmarshal([]byte(cached), &resp); err == nil {
				s.logger.Println("station analysis served from cache")
				return &resp, nil
			}
		}
	}

	if !s.gateway.Ensure(ctx, mode.TextModel) {
		return nil, fmt.Errorf(
			"%w: text model '%s' is not available, check that Ollama is running",
			ErrModelUnavailable, mode.TextModel)
	}

	ds, err := s.stations.Fetch(ctx, landmos.Query{
		StatCode:  req.StatCode,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, err
	}

	digest := landmos.Summarize(ds.Records, req.StatCode)

	description, err := s.gateway.GenerateText(
		ctx, stationAnalysisPrompt(req.Language, req.StatCode, digest), mode.TextModel, stationNumCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}

	summary, err := s.gateway.GenerateText(
		ctx, stationSummaryPrompt(req.Language, req.StatCode, description), mode.TextModel, stationNumCtx)
	if err != nil {
		s.logger.Printf("station summary call failed, using truncated analysis: %v\n", err)
		summary = truncateSummary(description)
	}

	dataPoints := any("N/A")
	if ds.IsList() {
		dataPoints = len(ds.Records)
	}

	resp := &models.StationAnalysisResponse{
		ID:          uuid.NewString()[:8],
		StatCode:    req.StatCode,
		Description: description,
		Summary:     summary,
		Details: map[string]any{
			"text_model":  mode.TextModel,
			"model_mode":  req.ModelMode,
			"language":    req.Language,
			"start_date":  req.StartDate,
			"end_date":    req.EndDate,
			"data_points": dataPoints,
		},
		StationData: ds.Envelope(),
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if s.cache != nil {
		if payload, err := sonic.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, stationCacheKey(req), string(payload)); err != nil {
				s.logger.Printf("failed to set cache: %v\n", err)
			}
		}
	}
	return resp, nil
}

func stationCacheKey(req StationRequest) string {
	data := strings.Join([]string{
		req.StatCode,
		req.StartDate,
		req.EndDate,
		req.Language,
		req.ModelMode,
	}, "-")
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
