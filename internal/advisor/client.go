package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CallTimeout bounds a single advisor request. There are no retries: one
// attempt, then the caller falls back to local rules.
const CallTimeout = 10 * time.Second

// Client calls a Gemini-style text-generation endpoint for diagnosis text.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an advisor client. An empty apiKey still produces a
// working client; the request simply fails and callers fall back.
func NewClient(url, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: CallTimeout,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Consult asks the advisor for diagnosis and advice text for the given
// symptoms. Any transport error, non-200 status, or missing response field
// is returned as an error; the caller never retries.
func (c *Client) Consult(ctx context.Context, patientName, symptoms string) (string, error) {
	prompt := fmt.Sprintf(
		"Kamu adalah dokter AI profesional. Pasien bernama %s memiliki keluhan: '%s'. "+
			"Berikan diagnosa medis kemungkinan (nama penyakit) dan saran pengobatan praktis. Jawab singkat padat.",
		patientName, symptoms,
	)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.url
	if c.apiKey != "" {
		url += "?key=" + c.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor returned status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("advisor response missing candidates")
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("advisor returned empty text")
	}
	return text, nil
}
