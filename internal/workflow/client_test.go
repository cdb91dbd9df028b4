package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthygutai/content-engine/internal/types"
)

func testPayload() TriggerPayload {
	return TriggerPayload{
		Topic:          "Gut Health Basics",
		ArticleType:    types.ArticlePillar,
		PrimaryKeyword: "gut health",
		WebhookID:      "req-123",
	}
}

func TestTrigger_Success(t *testing.T) {
	var received TriggerPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]string{"executionId": "exec-1"})
	}))
	defer srv.Close()

	client := New(Config{WebhookURL: srv.URL})
	id, err := client.Trigger(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, "exec-1", id)
	assert.Equal(t, "req-123", received.WebhookID)
	assert.Equal(t, "Gut Health Basics", received.Topic)
}

func TestTrigger_IDFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "exec-2"})
	}))
	defer srv.Close()

	client := New(Config{WebhookURL: srv.URL})
	id, err := client.Trigger(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, "exec-2", id)
}

func TestTrigger_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(Config{WebhookURL: srv.URL})
	_, err := client.Trigger(context.Background(), testPayload())
	require.Error(t, err)

	var triggerErr *TriggerError
	assert.ErrorAs(t, err, &triggerErr)
}

func TestTrigger_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := New(Config{WebhookURL: srv.URL})
	_, err := client.Trigger(context.Background(), testPayload())

	var triggerErr *TriggerError
	assert.ErrorAs(t, err, &triggerErr)
}

func TestExecutionStatus_Finished(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/executions/exec-1", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-N8N-API-KEY"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       "exec-1",
			"finished": true,
			"data": map[string]any{
				"resultData": map[string]any{
					"runData": map[string]any{"node": "output"},
				},
			},
		})
	}))
	defer srv.Close()

	client := New(Config{APIURL: srv.URL, APIKey: "secret"})
	status := client.ExecutionStatus(context.Background(), "exec-1")

	assert.Equal(t, StatusActive, status.Status)
	assert.Equal(t, "exec-1", status.ExecutionID)
	assert.JSONEq(t, `{"node": "output"}`, string(status.Result))
}

func TestExecutionStatus_Unfinished(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "exec-1", "finished": false})
	}))
	defer srv.Close()

	client := New(Config{APIURL: srv.URL})
	status := client.ExecutionStatus(context.Background(), "exec-1")

	assert.Equal(t, StatusInactive, status.Status)
}

func TestExecutionStatus_Degrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(Config{APIURL: srv.URL})
	status := client.ExecutionStatus(context.Background(), "missing")

	assert.Equal(t, ExecutionStatus{Status: StatusError}, status)
}

func TestListWorkflows_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workflows", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": "wf-1", "name": "Content Pipeline", "active": true}},
		})
	}))
	defer srv.Close()

	client := New(Config{APIURL: srv.URL})
	workflows := client.ListWorkflows(context.Background())

	require.Len(t, workflows, 1)
	assert.Equal(t, WorkflowSummary{ID: "wf-1", Name: "Content Pipeline", Active: true}, workflows[0])
}

func TestListWorkflows_DegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(Config{APIURL: srv.URL})
	workflows := client.ListWorkflows(context.Background())

	assert.NotNil(t, workflows)
	assert.Empty(t, workflows)
}

func TestWorkflow_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workflows/wf-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "wf-1", "name": "Content Pipeline"})
	}))
	defer srv.Close()

	client := New(Config{APIURL: srv.URL})
	wf := client.Workflow(context.Background(), "wf-1")

	require.NotNil(t, wf)
	assert.Equal(t, "Content Pipeline", wf["name"])
}

func TestWorkflow_DegradesToNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(Config{APIURL: srv.URL})
	assert.Nil(t, client.Workflow(context.Background(), "missing"))
}

func TestNew_Defaults(t *testing.T) {
	client := New(Config{})
	assert.Equal(t, DefaultWebhookURL, client.webhookURL)
	assert.Equal(t, DefaultAPIURL, client.apiURL)
}
