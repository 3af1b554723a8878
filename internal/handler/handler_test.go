package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/dookda/cmu-landmos-ai/internal/landmos"
	"github.com/dookda/cmu-landmos-ai/internal/models"
	"github.com/dookda/cmu-landmos-ai/internal/service"
	"github.com/dookda/cmu-landmos-ai/internal/storage"
	"github.com/go-chi/chi/v5"
)

type fakeService struct {
	chartResp    *models.AnalysisResponse
	chartErr     error
	chartCalls   int
	lastUpload   service.ChartUpload
	stationResp  *models.StationAnalysisResponse
	stationErr   error
	stationCalls int
	status       *models.ModelStatusResponse
}

func (f *fakeService) AnalyzeChart(ctx context.Context, up service.ChartUpload) (*models.AnalysisResponse, error) {
	f.chartCalls++
	f.lastUpload = up
	return f.chartResp, f.chartErr
}

func (f *fakeService) AnalyzeStation(ctx context.Context, req service.StationRequest) (*models.StationAnalysisResponse, error) {
	f.stationCalls++
	return f.stationResp, f.stationErr
}

func (f *fakeService) ModelStatus(ctx context.Context) *models.ModelStatusResponse {
	if f.status != nil {
		return f.status
	}
	return &models.ModelStatusResponse{OllamaStatus: "disconnected"}
}

type fakeStationAPI struct {
	ds    *landmos.Dataset
	err   error
	calls int
}

func (f *fakeStationAPI) Fetch(ctx context.Context, q landmos.Query) (*landmos.Dataset, error) {
	f.calls++
	return f.ds, f.err
}

func newTestRouter(t *testing.T, svc *fakeService, stations *fakeStationAPI) (*chi.Mux, *storage.Store) {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	h := NewHandler(svc, stations, store)

	r := chi.NewRouter()
	r.Get("/api/health", h.Health)
	r.Get("/api/models/status", h.ModelStatus)
	r.Post("/api/analyze", h.AnalyzeChart)
	r.Get("/api/charts/{filename}", h.GetChart)
	r.Get("/api/station/data", h.StationData)
	r.Post("/api/station/analyze", h.AnalyzeStation)
	return r, store
}

func multipartUpload(t *testing.T, filename, contentType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write(content)

	for k, v := range fields {
		mw.WriteField(k, v)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, &fakeService{}, &fakeStationAPI{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp models.HealthResponse
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" || resp.Timestamp == "" {
		t.Errorf("unexpected health payload: %+v", resp)
	}
}

func TestAnalyzeChartRejectsNonImage(t *testing.T) {
	svc := &fakeService{}
	r, _ := newTestRouter(t, svc, &fakeStationAPI{})

	body, contentType := multipartUpload(t, "report.pdf", "application/pdf", []byte("%PDF"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.chartCalls != 0 {
		t.Errorf("service must not be reached for non-image uploads")
	}
}

func TestAnalyzeChartDefaultsAndPassthrough(t *testing.T) {
	svc := &fakeService{chartResp: &models.AnalysisResponse{ID: "abc12345", Summary: "s"}}
	r, _ := newTestRouter(t, svc, &fakeStationAPI{})

	body, contentType := multipartUpload(t, "chart.png", "image/png", []byte("png-bytes"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastUpload.Language != "en" || svc.lastUpload.ModelMode != "llava" {
		t.Errorf("expected form defaults, got %+v", svc.lastUpload)
	}
	if string(svc.lastUpload.Content) != "png-bytes" {
		t.Errorf("upload bytes must reach the service unmodified")
	}
}

func TestAnalyzeChartServiceErrorsMapTo503(t *testing.T) {
	for _, svcErr := range []error{
		fmt.Errorf("%w: vision model missing", service.ErrModelUnavailable),
		fmt.Errorf("%w: ollama down", service.ErrInference),
	} {
		svc := &fakeService{chartErr: svcErr}
		r, _ := newTestRouter(t, svc, &fakeStationAPI{})

		body, contentType := multipartUpload(t, "chart.png", "image/png", []byte("x"), nil)
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 for %v, got %d", svcErr, rec.Code)
		}
	}
}

func TestGetChartRoundTrip(t *testing.T) {
	r, store := newTestRouter(t, &fakeService{}, &fakeStationAPI{})

	content := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	if err := store.Save("chart_abc12345.png", content); err != nil {
		t.Fatalf("save: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/charts/chart_abc12345.png", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got, _ := io.ReadAll(rec.Body)
	if !bytes.Equal(got, content) {
		t.Errorf("served bytes differ from stored bytes")
	}
}

func TestGetChartNotFound(t *testing.T) {
	r, _ := newTestRouter(t, &fakeService{}, &fakeStationAPI{})

	req := httptest.NewRequest(http.MethodGet, "/api/charts/missing.png", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestStationDataPassthrough(t *testing.T) {
	raw := `[{"timestamp":"t1","de":0.1}]`
	stations := &fakeStationAPI{ds: landmos.NewDataset([]byte(raw))}
	r, _ := newTestRouter(t, &fakeService{}, stations)

	req := httptest.NewRequest(http.MethodGet, "/api/station/data?stat_code=CMUA", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != raw {
		t.Errorf("body must be the upstream payload verbatim, got %s", rec.Body.String())
	}
}

func TestStationDataErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{landmos.ErrTimeout, http.StatusGatewayTimeout},
		{fmt.Errorf("%w: dial tcp refused", landmos.ErrUnreachable), http.StatusBadGateway},
		{&landmos.UpstreamError{Status: 500, Detail: "boom"}, http.StatusBadGateway},
	}
	for _, tc := range cases {
		stations := &fakeStationAPI{err: tc.err}
		r, _ := newTestRouter(t, &fakeService{}, stations)

		req := httptest.NewRequest(http.MethodGet, "/api/station/data?stat_code=CMUA", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != tc.code {
			t.Errorf("expected %d for %v, got %d", tc.code, tc.err, rec.Code)
		}
	}
}

func TestStationDataRequiresStatCode(t *testing.T) {
	stations := &fakeStationAPI{}
	r, _ := newTestRouter(t, &fakeService{}, stations)

	req := httptest.NewRequest(http.MethodGet, "/api/station/data", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if stations.calls != 0 {
		t.Errorf("upstream must not be called without stat_code")
	}
}

func TestAnalyzeStationFormValidation(t *testing.T) {
	svc := &fakeService{}
	r, _ := newTestRouter(t, svc, &fakeStationAPI{})

	req := httptest.NewRequest(http.MethodPost, "/api/station/analyze", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without stat_code, got %d", rec.Code)
	}
	if svc.stationCalls != 0 {
		t.Errorf("service must not be reached without a station code")
	}
}

func TestAnalyzeStationErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: text model missing", service.ErrModelUnavailable), http.StatusServiceUnavailable},
		{landmos.ErrTimeout, http.StatusGatewayTimeout},
		{fmt.Errorf("%w: dial failed", landmos.ErrUnreachable), http.StatusBadGateway},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		svc := &fakeService{stationErr: tc.err}
		r, _ := newTestRouter(t, svc, &fakeStationAPI{})

		form := url.Values{"stat_code": {"CMUA"}}
		req := httptest.NewRequest(http.MethodPost, "/api/station/analyze", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != tc.code {
			t.Errorf("expected %d for %v, got %d", tc.code, tc.err, rec.Code)
		}
	}
}

func TestAnalyzeStationSuccess(t *testing.T) {
	svc := &fakeService{stationResp: &models.StationAnalysisResponse{
		StatCode:    "CMUA",
		Description: "d",
		Summary:     "s",
		StationData: []byte(`{"records":[]}`),
	}}
	r, _ := newTestRouter(t, svc, &fakeStationAPI{})

	form := url.Values{"stat_code": {"CMUA"}, "language": {"th"}}
	req := httptest.NewRequest(http.MethodPost, "/api/station/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp models.StationAnalysisResponse
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatCode != "CMUA" || resp.Summary != "s" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestModelStatus(t *testing.T) {
	svc := &fakeService{status: &models.ModelStatusResponse{
		OllamaStatus: "connected",
		VisionModel:  "moondream",
		AvailableModes: map[string]models.ModeStatus{
			"moondream": {Name: "Moondream", Ready: true},
		},
	}}
	r, _ := newTestRouter(t, svc, &fakeStationAPI{})

	req := httptest.NewRequest(http.MethodGet, "/api/models/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp models.ModelStatusResponse
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OllamaStatus != "connected" || !resp.AvailableModes["moondream"].Ready {
		t.Errorf("unexpected payload: %+v", resp)
	}
}
