// Package graph is the client for the hosted AI run service. Each workflow is
// addressed by a graph name and invoked with a JSON input payload; the
// response is decoded at this boundary into one strict shape per graph, so
// nothing downstream ever touches loosely typed data.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Known graph names.
const (
	ResumeParser      = "resume_parser"
	QuizAgent         = "quiz_agent"
	ResumeImprover    = "resume_improver"
	ExpImprover       = "exp_improver"
	SummaryBuilder    = "summary_builder"
	ExperienceBuilder = "experience_builder"
	ProjectGen        = "project_gen"
	SkillsGen         = "skills_gen"
)

// ErrUnrecognizedShape reports a graph response that does not match the
// expected shape for that graph.
var ErrUnrecognizedShape = errors.New("unrecognized graph response shape")

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(baseURL, apiKey string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 90 * time.Second},
		logger:     logger,
	}
}

type runRequest struct {
	AssistantID string `json:"assistant_id"`
	Input       any    `json:"input"`
}

// run invokes one graph and returns its raw output document.
func (c *Client) run(ctx context.Context, graphName string, input any) (json.RawMessage, error) {
	body, err := json.Marshal(runRequest{AssistantID: graphName, Input: input})
	if err != nil {
		return nil, fmt.Errorf("graph %s: encode input: %w", graphName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/runs/wait", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("graph %s: build request: %w", graphName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", graphName, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("graph %s: read response: %w", graphName, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Printf("graph | name=%s status=%d", graphName, resp.StatusCode)
		return nil, fmt.Errorf("graph %s: status %d: %s", graphName, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

func shapeError(graphName string) error {
	return fmt.Errorf("graph %s: %w", graphName, ErrUnrecognizedShape)
}
