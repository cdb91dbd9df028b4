package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/healthygutai/content-engine/internal/types"
)

const requestColumns = `id, topic, article_type, primary_keyword, secondary_keywords,
	 status, prompt1_response, error, created_at, updated_at`

// CreateGenerationRequest inserts a new request in the given starting status
// and returns the stored record.
func (db *DB) CreateGenerationRequest(ctx context.Context, input types.GenerationInput, status types.Status) (*GenerationRequest, error) {
	req := GenerationRequest{
		Topic:             input.Topic,
		ArticleType:       input.ArticleType,
		PrimaryKeyword:    input.PrimaryKeyword,
		SecondaryKeywords: input.SecondaryKeywords,
		Status:            status,
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO generation_requests (topic, article_type, primary_keyword, secondary_keywords, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		input.Topic, input.ArticleType, input.PrimaryKeyword, input.SecondaryKeywords, status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation request: %w", err)
	}

	return &req, nil
}

// GetGenerationRequest retrieves a request by id, returning ErrNotFound when
// no row matches.
func (db *DB) GetGenerationRequest(ctx context.Context, id uuid.UUID) (*GenerationRequest, error) {
	var req GenerationRequest
	err := db.pool.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM generation_requests WHERE id = $1`,
		id,
	).Scan(&req.ID, &req.Topic, &req.ArticleType, &req.PrimaryKeyword, &req.SecondaryKeywords,
		&req.Status, &req.PromptResponse, &req.Error, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get generation request: %w", err)
	}
	return &req, nil
}

// ListGenerationRequests retrieves recent requests, newest first.
func (db *DB) ListGenerationRequests(ctx context.Context, limit int) ([]GenerationRequest, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+requestColumns+` FROM generation_requests ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation requests: %w", err)
	}
	defer rows.Close()

	var requests []GenerationRequest
	for rows.Next() {
		var req GenerationRequest
		if err := rows.Scan(&req.ID, &req.Topic, &req.ArticleType, &req.PrimaryKeyword, &req.SecondaryKeywords,
			&req.Status, &req.PromptResponse, &req.Error, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// CompleteGenerationRequest moves a request to completed and records the
// generated content. The update is a single conditional statement, so a
// redelivered completion is absorbed while a completion racing a failure
// loses. Returns ErrNotFound for an unknown id and InvalidTransitionError
// when the request already failed.
func (db *DB) CompleteGenerationRequest(ctx context.Context, id uuid.UUID, promptResponse string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE generation_requests
		 SET status = 'completed', prompt1_response = $2, error = NULL, updated_at = NOW()
		 WHERE id = $1 AND status <> 'failed'`,
		id, promptResponse,
	)
	if err != nil {
		return fmt.Errorf("failed to complete generation request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.transitionFailure(ctx, id, types.StatusCompleted)
	}
	return nil
}

// FailGenerationRequest moves a request to failed and records the error
// message. Requests already in a terminal state are left untouched and the
// rejected transition is reported.
func (db *DB) FailGenerationRequest(ctx context.Context, id uuid.UUID, message string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE generation_requests
		 SET status = 'failed', error = $2, updated_at = NOW()
		 WHERE id = $1 AND status IN ('pending', 'processing')`,
		id, message,
	)
	if err != nil {
		return fmt.Errorf("failed to fail generation request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.transitionFailure(ctx, id, types.StatusFailed)
	}
	return nil
}

// transitionFailure classifies a conditional update that matched no row:
// either the request does not exist or its current status forbids the
// transition.
func (db *DB) transitionFailure(ctx context.Context, id uuid.UUID, to types.Status) error {
	var current types.Status
	err := db.pool.QueryRow(ctx,
		`SELECT status FROM generation_requests WHERE id = $1`, id,
	).Scan(&current)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check generation request status: %w", err)
	}
	return &InvalidTransitionError{From: current, To: to}
}

// CountRequestsByStatus returns per-status request totals.
func (db *DB) CountRequestsByStatus(ctx context.Context) (map[types.Status]int, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM generation_requests GROUP BY status`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count generation requests: %w", err)
	}
	defer rows.Close()

	counts := make(map[types.Status]int)
	for rows.Next() {
		var status types.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan request count: %w", err)
		}
		counts[status] = count
	}
	return counts, nil
}
