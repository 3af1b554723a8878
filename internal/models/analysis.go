package models

import "encoding/json"

// AnalysisResponse is the result of the chart analysis pipeline.
type AnalysisResponse struct {
	ID          string         `json:"id"`
	Filename    string         `json:"filename"`
	Description string         `json:"description"`
	Summary     string         `json:"summary"`
	Details     map[string]any `json:"details"`
	Timestamp   string         `json:"timestamp"`
	ChartURL    string         `json:"chart_url"`
}

// StationAnalysisResponse is the result of the station-data pipeline.
// StationData carries the upstream payload unmodified.
type StationAnalysisResponse struct {
	ID          string          `json:"id"`
	StatCode    string          `json:"stat_code"`
	Description string          `json:"description"`
	Summary     string          `json:"summary"`
	Details     map[string]any  `json:"details"`
	StationData json.RawMessage `json:"station_data"`
	Timestamp   string          `json:"timestamp"`
}

// ModeStatus reports readiness of one model mode.
type ModeStatus struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	DescriptionTH string `json:"description_th"`
	Icon          string `json:"icon"`
	VisionModel   string `json:"vision_model"`
	TextModel     string `json:"text_model"`
	VisionReady   bool   `json:"vision_ready"`
	TextReady     bool   `json:"text_ready"`
	Ready         bool   `json:"ready"`
}

// ModelStatusResponse reports Ollama connectivity and model readiness.
type ModelStatusResponse struct {
	OllamaStatus     string                `json:"ollama_status"`
	VisionModel      string                `json:"vision_model"`
	TextModel        string                `json:"text_model"`
	VisionModelReady bool                  `json:"vision_model_ready"`
	TextModelReady   bool                  `json:"text_model_ready"`
	AvailableModes   map[string]ModeStatus `json:"available_modes"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse carries the detail message for failed requests.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
