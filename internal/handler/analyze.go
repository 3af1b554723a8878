package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dookda/cmu-landmos-ai/internal/service"
	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 32 << 20

// AnalyzeChart godoc
// @Summary Analyze an uploaded GNSS displacement chart
// @Description Runs vision inference over the chart, then condenses the result into a lay summary.
// @Tags analyze
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Chart image"
// @Param language formData string false "Response language (en or th)" default(en)
// @Param model_mode formData string false "Model mode key" default(llava)
// @Success 200 {object} models.AnalysisResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/analyze [post]
func (h *Handler) AnalyzeChart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %s", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	// Content-type gate comes before any outbound call.
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "Only image files are accepted.")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read upload: %s", err))
		return
	}

	up := service.ChartUpload{
		Content:          content,
		OriginalFilename: header.Filename,
		Language:         formValueDefault(r, "language", "en"),
		ModelMode:        formValueDefault(r, "model_mode", "llava"),
	}

	resp, err := h.service.AnalyzeChart(r.Context(), up)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetChart godoc
// @Summary Serve a stored chart image
// @Tags analyze
// @Produce png
// @Param filename path string true "Stored chart filename"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /api/charts/{filename} [get]
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	path, ok := h.charts.Path(filename)
	if !ok {
		writeError(w, http.StatusNotFound, "Chart not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

func formValueDefault(r *http.Request, key, def string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return def
}
