package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/healthygutai/content-engine/internal/db"
	"github.com/healthygutai/content-engine/internal/schemas"
	"github.com/healthygutai/content-engine/internal/seo"
	"github.com/healthygutai/content-engine/internal/types"
	"github.com/healthygutai/content-engine/internal/workflow"
)

// handleTrigger starts the async generation path: persist the request in
// processing and hand it to the workflow engine, with the request id as the
// correlation id the workflow echoes back.
func (s *Server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	var input types.GenerationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := input.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()

	request, err := s.store.CreateGenerationRequest(ctx, input, types.StatusProcessing)
	if err != nil {
		log.Printf("[server] failed to create generation request: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create generation request")
		return
	}

	executionID, err := s.engine.Trigger(ctx, workflow.TriggerPayload{
		Topic:             input.Topic,
		ArticleType:       input.ArticleType,
		PrimaryKeyword:    input.PrimaryKeyword,
		SecondaryKeywords: input.SecondaryKeywords,
		WebhookID:         request.ID.String(),
	})
	if err != nil {
		log.Printf("[server] failed to trigger workflow for request %s: %v", request.ID, err)
		if failErr := s.store.FailGenerationRequest(ctx, request.ID, err.Error()); failErr != nil {
			log.Printf("[server] failed to mark request %s failed: %v", request.ID, failErr)
		}
		s.errorResponse(w, HTTPStatus(err), "Failed to trigger workflow")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":             "Workflow triggered successfully",
		"generationRequestId": request.ID,
		"executionId":         executionID,
	})
}

// webhookResult is the document the workflow engine posts back when an
// execution finishes.
type webhookResult struct {
	WebhookID string          `json:"webhookId"`
	Content   string          `json:"content"`
	Metadata  webhookMetadata `json:"metadata"`
}

type webhookMetadata struct {
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	MetaDescription  string         `json:"metaDescription"`
	Keywords         []string       `json:"keywords"`
	WordCount        int            `json:"wordCount"`
	ReadabilityScore int            `json:"readabilityScore"`
	SEOScore         int            `json:"seoScore"`
	Schema           map[string]any `json:"jsonLdSchema"`
	FAQs             []types.FAQ    `json:"faqs"`
	CTAs             []types.CTA    `json:"ctas"`
}

// handleWebhookResult ingests a workflow result: complete the request
// (idempotently, the engine may redeliver) and store the article assembled
// from the payload, computing any metrics the workflow left out.
func (s *Server) handleWebhookResult(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateWebhookResult(body); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			// A broken schema must not drop workflow results.
			log.Printf("[server] webhook schema unavailable: %v", err)
		} else {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	var result webhookResult
	if err := json.Unmarshal(body, &result); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := uuid.Parse(result.WebhookID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid webhook id")
		return
	}

	ctx := r.Context()

	if err := s.store.CompleteGenerationRequest(ctx, id, result.Content); err != nil {
		status := HTTPStatus(err)
		switch status {
		case http.StatusNotFound:
			s.errorResponse(w, status, "Generation request not found")
		case http.StatusConflict:
			s.errorResponse(w, status, err.Error())
		default:
			log.Printf("[server] failed to complete request %s: %v", id, err)
			s.errorResponse(w, status, "Failed to process result")
		}
		return
	}

	request, err := s.store.GetGenerationRequest(ctx, id)
	if err != nil {
		log.Printf("[server] failed to reload request %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to process result")
		return
	}

	article, err := s.store.SaveArticle(ctx, request.Topic, assembleArticle(result, request), db.ArticleDraft)
	if err != nil {
		log.Printf("[server] failed to save article for request %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to process result")
		return
	}

	log.Printf("[n8n] article created from workflow result: %s", article.ID)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":   "Result processed successfully",
		"articleId": article.ID,
	})
}

// assembleArticle builds the article content from a workflow result,
// filling in whatever metadata the workflow did not compute.
func assembleArticle(result webhookResult, request *db.GenerationRequest) types.GeneratedContent {
	meta := result.Metadata

	content := types.GeneratedContent{
		Title:            meta.Title,
		Slug:             meta.Slug,
		Content:          result.Content,
		MetaDescription:  meta.MetaDescription,
		Keywords:         meta.Keywords,
		WordCount:        meta.WordCount,
		ReadabilityScore: meta.ReadabilityScore,
		SEOScore:         meta.SEOScore,
		Schema:           meta.Schema,
		FAQs:             meta.FAQs,
		CTAs:             meta.CTAs,
	}

	if content.Title == "" {
		content.Title = request.Topic
	}
	if content.Slug == "" {
		content.Slug = seo.Slugify(content.Title)
	}
	if content.Keywords == nil {
		content.Keywords = append([]string{request.PrimaryKeyword}, request.SecondaryKeywords...)
	}
	if content.WordCount == 0 {
		content.WordCount = seo.WordCount(result.Content)
	}
	if content.ReadabilityScore == 0 {
		content.ReadabilityScore = seo.ReadabilityScore(result.Content)
	}
	if content.SEOScore == 0 {
		content.SEOScore = seo.Score(content.ReadabilityScore)
	}
	if content.MetaDescription == "" {
		content.MetaDescription = seo.MetaDescription(result.Content, request.PrimaryKeyword)
	}
	if content.Schema == nil {
		content.Schema = seo.ArticleSchema(content.Title, content.MetaDescription, content.Content, content.Keywords)
	}
	if content.FAQs == nil {
		content.FAQs = []types.FAQ{}
	}
	if content.CTAs == nil {
		content.CTAs = []types.CTA{}
	}

	return content
}

// handleExecutionStatus reports the engine's view of one execution.
func (s *Server) handleExecutionStatus(w http.ResponseWriter, r *http.Request) {
	status := s.engine.ExecutionStatus(r.Context(), r.PathValue("executionId"))
	s.jsonResponse(w, http.StatusOK, status)
}

// handleListWorkflows lists the workflows known to the engine.
func (s *Server) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.engine.ListWorkflows(r.Context()))
}

// handleGetWorkflow returns one workflow's definition.
func (s *Server) handleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	wf := s.engine.Workflow(r.Context(), r.PathValue("id"))
	if wf == nil {
		s.errorResponse(w, http.StatusNotFound, "Workflow not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, wf)
}
