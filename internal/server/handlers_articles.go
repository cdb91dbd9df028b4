package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/healthygutai/content-engine/internal/db"
	"github.com/healthygutai/content-engine/internal/types"
)

// handleListArticles lists stored articles, newest first.
func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	articles, err := s.store.ListArticles(r.Context(), limit)
	if err != nil {
		log.Printf("[server] failed to list articles: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	if articles == nil {
		articles = []db.Article{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"articles": articles})
}

// handleGetArticle fetches one article by id.
func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	article, err := s.store.GetArticle(r.Context(), id)
	if err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			s.errorResponse(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Printf("[server] failed to fetch article %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch article")
		return
	}

	s.jsonResponse(w, http.StatusOK, article)
}

// handleUpdateArticle applies a partial update to an article.
func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	var update struct {
		Title           *string `json:"title"`
		Content         *string `json:"content"`
		MetaDescription *string `json:"metaDescription"`
		Status          *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if update.Status != nil {
		switch *update.Status {
		case db.ArticleDraft, db.ArticlePublished, db.ArticleArchived:
		default:
			s.errorResponse(w, http.StatusBadRequest, "Invalid article status")
			return
		}
	}

	article, err := s.store.UpdateArticle(r.Context(), id, db.ArticleUpdate{
		Title:           update.Title,
		Content:         update.Content,
		MetaDescription: update.MetaDescription,
		Status:          update.Status,
	})
	if err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			s.errorResponse(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Printf("[server] failed to update article %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update article")
		return
	}

	s.jsonResponse(w, http.StatusOK, article)
}

// handleDeleteArticle removes an article.
func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	if err := s.store.DeleteArticle(r.Context(), id); err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			s.errorResponse(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Printf("[server] failed to delete article %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Article deleted successfully"})
}

// handleStats reports dashboard totals: per-status request counts plus the
// article count, gathered concurrently.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var (
		requestCounts map[types.Status]int
		articleCount  int
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		requestCounts, err = s.store.CountRequestsByStatus(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		articleCount, err = s.store.CountArticles(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("[server] failed to gather stats: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	requests := map[string]int{}
	for _, status := range []types.Status{types.StatusPending, types.StatusProcessing, types.StatusCompleted, types.StatusFailed} {
		requests[string(status)] = requestCounts[status]
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"requests": requests,
		"articles": map[string]int{"total": articleCount},
	})
}
