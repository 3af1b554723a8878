package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dookda/cmu-landmos-ai/internal/metrics"
	"github.com/dookda/cmu-landmos-ai/internal/models"
	"github.com/dookda/cmu-landmos-ai/internal/storage"
	"github.com/google/uuid"
)

// ChartUpload is a validated chart image ready for analysis.
type ChartUpload struct {
	Content          []byte
	OriginalFilename string
	Language         string
	ModelMode        string
}

// AnalyzeChart runs the chart pipeline: ensure models, persist the
// upload, describe it with the vision model, then condense the
// description with the text model.
func (s *AnalyzeService) AnalyzeChart(ctx context.Context, up ChartUpload) (*models.AnalysisResponse, error) {
	mode := models.ResolveMode(up.ModelMode)

	if !s.gateway.Ensure(ctx, mode.VisionModel) {
		return nil, fmt.Errorf(
			"%w: vision model '%s' is not available and could not be pulled, check that Ollama is running and has enough resources",
			ErrModelUnavailable, mode.VisionModel)
	}
	// The summary step has its own fallback, so a missing text model is
	// not fatal here.
	if !s.gateway.Ensure(ctx, mode.TextModel) {
		s.logger.Printf("text model '%s' not available, will attempt anyway\n", mode.TextModel)
	}

	chartID := uuid.NewString()[:8]
	filename := storage.ChartFilename(chartID, up.OriginalFilename)
	if err := s.charts.Save(filename, up.Content); err != nil {
		metrics.ChartUploadsTotal("error")
		return nil, fmt.Errorf("save chart: %w", err)
	}
	metrics.ChartUploadsTotal("ok")

	description, err := s.gateway.GenerateVision(ctx, up.Content, visionPrompt(up.Language), mode.VisionModel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}

	summary, err := s.gateway.GenerateText(ctx, chartSummaryPrompt(up.Language, description), mode.TextModel, defaultNumCtx)
	if err != nil {
		s.logger.Printf("summary call failed, using truncated description: %v\n", err)
		summary = truncateSummary(description)
	}

	return &models.AnalysisResponse{
		ID:          chartID,
		Filename:    filename,
		Description: description,
		Summary:     summary,
		Details: map[string]any{
			"vision_model":      mode.VisionModel,
			"text_model":        mode.TextModel,
			"model_mode":        up.ModelMode,
			"original_filename": up.OriginalFilename,
			"file_size_kb":      math.Round(float64(len(up.Content))/1024*10) / 10,
			"language":          up.Language,
		},
		Timestamp: time.Now().Format(time.RFC3339),
		ChartURL:  "/api/charts/" + filename,
	}, nil
}
