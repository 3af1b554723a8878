package handler

import (
	"fmt"
	"net/http"

	"github.com/dookda/cmu-landmos-ai/internal/landmos"
	"github.com/dookda/cmu-landmos-ai/internal/service"
)

// StationData godoc
// @Summary Raw station time-series passthrough
// @Description Proxies the LandMOS station API response unmodified.
// @Tags station
// @Produce json
// @Param stat_code query string true "Station code"
// @Param start_date query string false "Start date"
// @Param end_date query string false "End date"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Router /api/station/data [get]
func (h *Handler) StationData(w http.ResponseWriter, r *http.Request) {
	statCode := r.URL.Query().Get("stat_code")
	if statCode == "" {
		writeError(w, http.StatusBadRequest, "stat_code query parameter is required")
		return
	}

	ds, err := h.stations.Fetch(r.Context(), landmos.Query{
		StatCode:  statCode,
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	})
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(ds.Raw)
}

type stationAnalyzeForm struct {
	StatCode  string `validate:"required"`
	StartDate string
	EndDate   string
	Language  string
	ModelMode string
}

// AnalyzeStation godoc
// @Summary Analyze station time-series data
// @Description Fetches station records, digests them, and runs the two-step text-model pipeline.
// @Tags station
// @Accept x-www-form-urlencoded
// @Produce json
// @Param stat_code formData string true "Station code"
// @Param start_date formData string false "Start date"
// @Param end_date formData string false "End date"
// @Param language formData string false "Response language (en or th)" default(en)
// @Param model_mode formData string false "Model mode key" default(moondream)
// @Success 200 {object} models.StationAnalysisResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Failure 504 {object} models.ErrorResponse
// @Router /api/station/analyze [post]
func (h *Handler) AnalyzeStation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid form: %s", err))
		return
	}

	form := stationAnalyzeForm{
		StatCode:  r.FormValue("stat_code"),
		StartDate: r.FormValue("start_date"),
		EndDate:   r.FormValue("end_date"),
		Language:  formValueDefault(r, "language", "en"),
		ModelMode: formValueDefault(r, "model_mode", "moondream"),
	}
	if err := h.validate.Struct(form); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("request validation failed: %s", err))
		return
	}

	resp, err := h.service.AnalyzeStation(r.Context(), service.StationRequest{
		StatCode:  form.StatCode,
		StartDate: form.StartDate,
		EndDate:   form.EndDate,
		Language:  form.Language,
		ModelMode: form.ModelMode,
	})
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
