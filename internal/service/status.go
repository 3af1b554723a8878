package service

import (
	"context"

	"github.com/dookda/cmu-landmos-ai/internal/models"
	"github.com/dookda/cmu-landmos-ai/internal/ollama"
)

// ModelStatus reports Ollama connectivity, default model readiness, and
// per-mode readiness. A single tag listing answers every check.
func (s *AnalyzeService) ModelStatus(ctx context.Context) *models.ModelStatusResponse {
	names, err := s.gateway.Tags(ctx)
	ollamaOK := err == nil
	if err != nil {
		s.logger.Printf("ollama status check failed: %v\n", err)
	}

	ready := func(model string) bool {
		return ollamaOK && ollama.Match(names, model)
	}

	modes := make(map[string]models.ModeStatus)
	for key, mode := range models.Modes() {
		vReady := ready(mode.VisionModel)
		tReady := ready(mode.TextModel)
		modes[key] = models.ModeStatus{
			Name:          mode.Name,
			Description:   mode.Description,
			DescriptionTH: mode.DescriptionTH,
			Icon:          mode.Icon,
			VisionModel:   mode.VisionModel,
			TextModel:     mode.TextModel,
			VisionReady:   vReady,
			TextReady:     tReady,
			Ready:         vReady && tReady,
		}
	}

	status := "connected"
	if !ollamaOK {
		status = "disconnected"
	}

	return &models.ModelStatusResponse{
		OllamaStatus:     status,
		VisionModel:      s.cfg.VisionModel,
		TextModel:        s.cfg.TextModel,
		VisionModelReady: ready(s.cfg.VisionModel),
		TextModelReady:   ready(s.cfg.TextModel),
		AvailableModes:   modes,
	}
}
