package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SpaceClient calls a hosted inference Space exposing a Gradio predict
// endpoint. The same client type serves both the captioner and the
// paraphraser Spaces; only the base URL differs.
type SpaceClient struct {
	httpClient *http.Client
	baseURL    string
}

type spacePredictRequest struct {
	Data []interface{} `json:"data"`
}

type spacePredictResponse struct {
	Data []json.RawMessage `json:"data"`
}

// NewSpaceClient creates a client for a Space root URL. An empty URL leaves
// the client unconfigured.
func NewSpaceClient(baseURL string) *SpaceClient {
	return &SpaceClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Predict sends the inputs to the Space's predict endpoint and returns the
// first output as a trimmed string.
func (c *SpaceClient) Predict(ctx context.Context, inputs ...interface{}) (string, error) {
	reqBody := spacePredictRequest{Data: inputs}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run/predict", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("space error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var predictResp spacePredictResponse
	if err := json.Unmarshal(respBody, &predictResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(predictResp.Data) == 0 {
		return "", fmt.Errorf("no outputs in response")
	}

	var out string
	if err := json.Unmarshal(predictResp.Data[0], &out); err != nil {
		return "", fmt.Errorf("non-string output in response")
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("empty output in response")
	}
	return out, nil
}

// IsConfigured returns true if a Space URL was provided
func (c *SpaceClient) IsConfigured() bool {
	return c.baseURL != ""
}
