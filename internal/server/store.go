package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthygutai/content-engine/internal/db"
	"github.com/healthygutai/content-engine/internal/types"
	"github.com/healthygutai/content-engine/internal/workflow"
)

// Store is the persistence surface the HTTP layer depends on. *db.DB
// satisfies it; tests substitute an in-memory implementation.
type Store interface {
	CreateGenerationRequest(ctx context.Context, input types.GenerationInput, status types.Status) (*db.GenerationRequest, error)
	GetGenerationRequest(ctx context.Context, id uuid.UUID) (*db.GenerationRequest, error)
	ListGenerationRequests(ctx context.Context, limit int) ([]db.GenerationRequest, error)
	CompleteGenerationRequest(ctx context.Context, id uuid.UUID, promptResponse string) error
	FailGenerationRequest(ctx context.Context, id uuid.UUID, message string) error
	CountRequestsByStatus(ctx context.Context) (map[types.Status]int, error)

	SaveArticle(ctx context.Context, topic string, content types.GeneratedContent, status string) (*db.Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*db.Article, error)
	ListArticles(ctx context.Context, limit int) ([]db.Article, error)
	UpdateArticle(ctx context.Context, id uuid.UUID, update db.ArticleUpdate) (*db.Article, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	CountArticles(ctx context.Context) (int, error)
}

// ContentGenerator runs the synchronous generation pipeline.
type ContentGenerator interface {
	Generate(ctx context.Context, req types.GenerationInput) (*types.GeneratedContent, error)
}

// WorkflowEngine is the async path: triggering executions and querying the
// engine's state.
type WorkflowEngine interface {
	Trigger(ctx context.Context, payload workflow.TriggerPayload) (string, error)
	ExecutionStatus(ctx context.Context, executionID string) workflow.ExecutionStatus
	ListWorkflows(ctx context.Context) []workflow.WorkflowSummary
	Workflow(ctx context.Context, workflowID string) map[string]any
}
