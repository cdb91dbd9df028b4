package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/healthygutai/content-engine/internal/db"
	"github.com/healthygutai/content-engine/internal/types"
)

// handleGenerate runs the direct generation path: persist the request, run
// the pipeline, store the article and complete the request. A pipeline
// failure marks the request failed; no article is left behind.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
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

	content, err := s.generator.Generate(ctx, input)
	if err != nil {
		log.Printf("[server] generation failed for request %s: %v", request.ID, err)
		if failErr := s.store.FailGenerationRequest(ctx, request.ID, err.Error()); failErr != nil {
			log.Printf("[server] failed to mark request %s failed: %v", request.ID, failErr)
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate article")
		return
	}

	article, err := s.store.SaveArticle(ctx, input.Topic, *content, db.ArticleDraft)
	if err != nil {
		log.Printf("[server] failed to save article for request %s: %v", request.ID, err)
		if failErr := s.store.FailGenerationRequest(ctx, request.ID, err.Error()); failErr != nil {
			log.Printf("[server] failed to mark request %s failed: %v", request.ID, failErr)
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save article")
		return
	}

	if err := s.store.CompleteGenerationRequest(ctx, request.ID, content.Content); err != nil {
		log.Printf("[server] failed to complete request %s: %v", request.ID, err)
		s.errorResponse(w, HTTPStatus(err), "Failed to complete generation request")
		return
	}

	request, err = s.store.GetGenerationRequest(ctx, request.ID)
	if err != nil {
		log.Printf("[server] failed to reload request: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch generation request")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"article":           article,
		"generationRequest": request,
	})
}

// handleGenerationStatus fetches one generation request by id.
func (s *Server) handleGenerationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid generation request id")
		return
	}

	request, err := s.store.GetGenerationRequest(r.Context(), id)
	if err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			s.errorResponse(w, http.StatusNotFound, "Generation request not found")
			return
		}
		log.Printf("[server] failed to fetch request %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch status")
		return
	}

	s.jsonResponse(w, http.StatusOK, request)
}

// handleGenerationHistory lists the most recent generation requests.
func (s *Server) handleGenerationHistory(w http.ResponseWriter, r *http.Request) {
	requests, err := s.store.ListGenerationRequests(r.Context(), 50)
	if err != nil {
		log.Printf("[server] failed to list requests: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}
	if requests == nil {
		requests = []db.GenerationRequest{}
	}

	s.jsonResponse(w, http.StatusOK, requests)
}
