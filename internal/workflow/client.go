// Package workflow is the client for the external n8n workflow engine. The
// engine owns the async generation path: a trigger starts an execution and
// the finished workflow calls back into the HTTP layer with its result.
//
// The engine is advisory infrastructure, so every read-side query degrades
// to an empty value on failure instead of returning an error. Only Trigger
// surfaces failures, because a lost trigger means a lost generation request.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/healthygutai/content-engine/internal/types"
)

// Execution statuses reported by ExecutionStatus.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusError    = "error"
)

// Defaults for a local n8n instance.
const (
	DefaultWebhookURL = "http://localhost:5678/webhook/trigger"
	DefaultAPIURL     = "http://localhost:5678/api/v1"

	defaultTimeout = 60 * time.Second
)

const apiKeyHeader = "X-N8N-API-KEY"

// Config carries the engine endpoints and credentials.
type Config struct {
	WebhookURL string
	APIURL     string
	APIKey     string
	Timeout    time.Duration
}

// Client talks to one n8n instance.
type Client struct {
	webhookURL string
	apiURL     string
	apiKey     string
	http       *http.Client
}

// TriggerPayload is the document posted to the workflow's webhook trigger
// node. WebhookID is the generation request id; the workflow echoes it back
// in its result callback so the request can be correlated.
type TriggerPayload struct {
	Topic             string            `json:"topic"`
	ArticleType       types.ArticleType `json:"articleType"`
	PrimaryKeyword    string            `json:"primaryKeyword"`
	SecondaryKeywords []string          `json:"secondaryKeywords"`
	WebhookID         string            `json:"webhookId"`
}

// ExecutionStatus is a point-in-time snapshot of one workflow execution.
type ExecutionStatus struct {
	Status      string          `json:"status"`
	ExecutionID string          `json:"executionId,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// WorkflowSummary is one entry of the engine's workflow listing.
type WorkflowSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// New creates a Client, filling unset Config fields with local-instance
// defaults.
func New(cfg Config) *Client {
	if cfg.WebhookURL == "" {
		cfg.WebhookURL = DefaultWebhookURL
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		webhookURL: cfg.WebhookURL,
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		http:       &http.Client{Timeout: cfg.Timeout},
	}
}

// Trigger starts a workflow execution and returns its execution id. Engines
// differ in the trigger response shape, so both executionId and id are
// accepted.
func (c *Client) Trigger(ctx context.Context, payload TriggerPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", &TriggerError{Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return "", &TriggerError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &TriggerError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", &TriggerError{Cause: fmt.Errorf("webhook returned status %d", resp.StatusCode)}
	}

	var result struct {
		ExecutionID string `json:"executionId"`
		ID          string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &TriggerError{Cause: err}
	}

	executionID := result.ExecutionID
	if executionID == "" {
		executionID = result.ID
	}

	log.Printf("[n8n] workflow triggered, execution id: %s", executionID)
	return executionID, nil
}

// ExecutionStatus reports the state of one execution. Any failure collapses
// to a status of "error".
func (c *Client) ExecutionStatus(ctx context.Context, executionID string) ExecutionStatus {
	var execution struct {
		ID       string `json:"id"`
		Finished bool   `json:"finished"`
		Data     struct {
			ResultData struct {
				RunData json.RawMessage `json:"runData"`
			} `json:"resultData"`
		} `json:"data"`
	}

	if err := c.getJSON(ctx, c.apiURL+"/executions/"+executionID, &execution); err != nil {
		log.Printf("[n8n] failed to get execution status: %v", err)
		return ExecutionStatus{Status: StatusError}
	}

	status := StatusInactive
	if execution.Finished {
		status = StatusActive
	}

	return ExecutionStatus{
		Status:      status,
		ExecutionID: execution.ID,
		Result:      execution.Data.ResultData.RunData,
	}
}

// ListWorkflows returns the workflows known to the engine, or an empty slice
// when the engine cannot be reached.
func (c *Client) ListWorkflows(ctx context.Context) []WorkflowSummary {
	var listing struct {
		Data []WorkflowSummary `json:"data"`
	}

	if err := c.getJSON(ctx, c.apiURL+"/workflows", &listing); err != nil {
		log.Printf("[n8n] failed to list workflows: %v", err)
		return []WorkflowSummary{}
	}

	if listing.Data == nil {
		return []WorkflowSummary{}
	}
	return listing.Data
}

// Workflow returns one workflow's full definition, or nil when the engine
// cannot be reached or the workflow does not exist.
func (c *Client) Workflow(ctx context.Context, workflowID string) map[string]any {
	var workflow map[string]any
	if err := c.getJSON(ctx, c.apiURL+"/workflows/"+workflowID, &workflow); err != nil {
		log.Printf("[n8n] failed to get workflow details: %v", err)
		return nil
	}
	return workflow
}

// getJSON performs an authenticated GET against the engine's REST API and
// decodes the response into v.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("engine returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
