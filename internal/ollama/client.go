// Package ollama is a thin client for a local Ollama server: tag listing,
// model pulls, and single-shot generate calls for vision and text models.
package ollama

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dookda/cmu-landmos-ai/internal/config"
	"github.com/dookda/cmu-landmos-ai/internal/metrics"
)

type Client struct {
	logger  *log.Logger
	baseURL string
	httpc   *http.Client
	cfg     config.OllamaConfig
}

func NewClient(logger *log.Logger, cfg config.OllamaConfig) *Client {
	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{},
		cfg:     cfg,
	}
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Images  []string        `json:"images,omitempty"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
	NumCtx      int     `json:"num_ctx,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Tags lists the model names known to the Ollama server.
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.TagsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama tags: %s", readErrorDetail(resp))
	}

	var tags tagsResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("ollama tags: decode: %w", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// IsAvailable reports whether the named model is present on the server.
// A name without a tag also matches any listed entry containing its
// pre-colon prefix, so "llava" is satisfied by "llava:7b". Transport
// failures are logged and reported as unavailable.
func (c *Client) IsAvailable(ctx context.Context, name string) bool {
	names, err := c.Tags(ctx)
	if err != nil {
		c.logger.Printf("error checking model %s: %v\n", name, err)
		return false
	}
	return Match(names, name)
}

// Match applies the availability rule to an already fetched listing:
// exact name match, or pre-colon prefix containment.
func Match(names []string, name string) bool {
	prefix, _, _ := strings.Cut(name, ":")
	for _, n := range names {
		if n == name {
			return true
		}
		if strings.Contains(n, prefix) {
			return true
		}
	}
	return false
}

// Ensure checks for the model and pulls it when missing. It only reports
// readiness, never an error.
func (c *Client) Ensure(ctx context.Context, name string) bool {
	if c.IsAvailable(ctx, name) {
		return true
	}
	c.logger.Printf("model %s not found, attempting to pull\n", name)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.PullTimeout)
	defer cancel()

	body, err := sonic.Marshal(map[string]string{"name": name})
	if err != nil {
		c.logger.Printf("error encoding pull request for %s: %v\n", name, err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/pull", bytes.NewReader(body))
	if err != nil {
		c.logger.Printf("error building pull request for %s: %v\n", name, err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Printf("error pulling model %s: %v\n", name, err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("failed to pull %s: status %d\n", name, resp.StatusCode)
		return false
	}
	c.logger.Printf("model %s pulled successfully\n", name)
	return true
}

// GenerateVision runs a single vision inference over the image.
func (c *Client) GenerateVision(ctx context.Context, image []byte, prompt, model string) (string, error) {
	payload := generateRequest{
		Model:   model,
		Prompt:  prompt,
		Images:  []string{base64.StdEncoding.EncodeToString(image)},
		Options: generateOptions{Temperature: 0.3, NumPredict: 2048},
	}
	return c.generate(ctx, "vision", payload, c.cfg.VisionTimeout)
}

// GenerateText runs a single text inference. numCtx sets the context
// window; station-data prompts need a wider one than the default.
func (c *Client) GenerateText(ctx context.Context, prompt, model string, numCtx int) (string, error) {
	payload := generateRequest{
		Model:   model,
		Prompt:  prompt,
		Options: generateOptions{Temperature: 0.3, NumPredict: 1024, NumCtx: numCtx},
	}
	return c.generate(ctx, "text", payload, c.cfg.TextTimeout)
}

func (c *Client) generate(ctx context.Context, kind string, payload generateRequest, timeout time.Duration) (string, error) {
	start := time.Now()
	out, err := c.doGenerate(ctx, payload, timeout)

	status := "ok"
	if err != nil {
		status = "error"
		c.logger.Printf("ollama %s error (%s): %v\n", kind, payload.Model, err)
	}
	metrics.ObserveInference(kind, payload.Model, status, time.Since(start))

	return out, err
}

func (c *Client) doGenerate(ctx context.Context, payload generateRequest, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := sonic.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(readErrorDetail(resp))
	}

	var gen generateResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if gen.Response == "" {
		return "No response generated.", nil
	}
	return gen.Response, nil
}

func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request to Ollama timed out, the model may still be loading")
	}
	return fmt.Errorf("cannot connect to Ollama, is the Ollama service running? (%v)", err)
}

// readErrorDetail extracts a useful message from an Ollama error response:
// the "error" field when the body is JSON, otherwise the body itself
// truncated to 300 characters.
func readErrorDetail(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body struct {
		Error string `json:"error"`
	}
	if err := sonic.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	if runes := []rune(text); len(runes) > 300 {
		text = string(runes[:300])
	}
	return text
}
