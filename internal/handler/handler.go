package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dookda/cmu-landmos-ai/internal/landmos"
	"github.com/dookda/cmu-landmos-ai/internal/models"
	"github.com/dookda/cmu-landmos-ai/internal/service"
	"github.com/go-playground/validator/v10"
)

type analyzeService interface {
	AnalyzeChart(ctx context.Context, up service.ChartUpload) (*models.AnalysisResponse, error)
	AnalyzeStation(ctx context.Context, req service.StationRequest) (*models.StationAnalysisResponse, error)
	ModelStatus(ctx context.Context) *models.ModelStatusResponse
}

type stationAPI interface {
	Fetch(ctx context.Context, q landmos.Query) (*landmos.Dataset, error)
}

type chartStore interface {
	Path(filename string) (string, bool)
}

type Handler struct {
	service  analyzeService
	stations stationAPI
	charts   chartStore
	validate *validator.Validate
}

func NewHandler(service analyzeService, stations stationAPI, charts chartStore) *Handler {
	return &Handler{
		service:  service,
		stations: stations,
		charts:   charts,
		validate: validator.New(),
	}
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ModelStatus godoc
// @Summary Ollama connectivity and model readiness
// @Tags models
// @Produce json
// @Success 200 {object} models.ModelStatusResponse
// @Router /api/models/status [get]
func (h *Handler) ModelStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ModelStatus(r.Context()))
}

// statusFor maps pipeline failures onto response codes: unavailable
// models and failed inference are 503, station API timeouts 504, every
// other station API failure 502.
func statusFor(err error) int {
	var upstream *landmos.UpstreamError
	switch {
	case errors.Is(err, service.ErrModelUnavailable), errors.Is(err, service.ErrInference):
		return http.StatusServiceUnavailable
	case errors.Is(err, landmos.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, landmos.ErrUnreachable), errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, models.ErrorResponse{Detail: detail})
}
