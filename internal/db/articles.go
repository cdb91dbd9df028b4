package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/healthygutai/content-engine/internal/types"
)

const articleColumns = `id, topic, title, slug, content, meta_description, keywords,
	 word_count, readability_score, seo_score, json_ld_schema, faqs, ctas, status, created_at, updated_at`

// SaveArticle stores a generated article under the given topic and
// publication status and returns the stored record.
func (db *DB) SaveArticle(ctx context.Context, topic string, content types.GeneratedContent, status string) (*Article, error) {
	if status == "" {
		status = ArticleDraft
	}

	schemaJSON, err := json.Marshal(content.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal article schema: %w", err)
	}
	faqsJSON, err := json.Marshal(content.FAQs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal article faqs: %w", err)
	}
	ctasJSON, err := json.Marshal(content.CTAs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal article ctas: %w", err)
	}

	article := Article{
		Topic:            topic,
		Title:            content.Title,
		Slug:             content.Slug,
		Content:          content.Content,
		MetaDescription:  content.MetaDescription,
		Keywords:         content.Keywords,
		WordCount:        content.WordCount,
		ReadabilityScore: content.ReadabilityScore,
		SEOScore:         content.SEOScore,
		Schema:           content.Schema,
		FAQs:             content.FAQs,
		CTAs:             content.CTAs,
		Status:           status,
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO articles (topic, title, slug, content, meta_description, keywords,
		  word_count, readability_score, seo_score, json_ld_schema, faqs, ctas, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		topic, content.Title, content.Slug, content.Content, content.MetaDescription, content.Keywords,
		content.WordCount, content.ReadabilityScore, content.SEOScore, schemaJSON, faqsJSON, ctasJSON, status,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	return &article, nil
}

// GetArticle retrieves an article by id, returning ErrNotFound when no row
// matches.
func (db *DB) GetArticle(ctx context.Context, id uuid.UUID) (*Article, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`,
		id,
	)
	article, err := scanArticle(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

// ListArticles retrieves recent articles, newest first.
func (db *DB) ListArticles(ctx context.Context, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+articleColumns+` FROM articles ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, *article)
	}
	return articles, nil
}

// ArticleUpdate holds the updatable fields of an article. Nil fields are
// left unchanged.
type ArticleUpdate struct {
	Title           *string
	Content         *string
	MetaDescription *string
	Status          *string
}

// UpdateArticle applies the non-nil fields of update and returns the stored
// record.
func (db *DB) UpdateArticle(ctx context.Context, id uuid.UUID, update ArticleUpdate) (*Article, error) {
	query := `UPDATE articles SET updated_at = NOW()`
	args := []any{id}
	argNum := 2

	if update.Title != nil {
		query += fmt.Sprintf(", title = $%d", argNum)
		args = append(args, *update.Title)
		argNum++
	}
	if update.Content != nil {
		query += fmt.Sprintf(", content = $%d", argNum)
		args = append(args, *update.Content)
		argNum++
	}
	if update.MetaDescription != nil {
		query += fmt.Sprintf(", meta_description = $%d", argNum)
		args = append(args, *update.MetaDescription)
		argNum++
	}
	if update.Status != nil {
		query += fmt.Sprintf(", status = $%d", argNum)
		args = append(args, *update.Status)
	}

	query += ` WHERE id = $1 RETURNING ` + articleColumns

	article, err := scanArticle(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	return article, nil
}

// DeleteArticle removes an article, returning ErrNotFound when no row
// matches.
func (db *DB) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountArticles returns the total number of stored articles.
func (db *DB) CountArticles(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

// scanArticle reads one article row, decoding the JSON document columns.
func scanArticle(row pgx.Row) (*Article, error) {
	var article Article
	var schemaJSON, faqsJSON, ctasJSON []byte

	err := row.Scan(&article.ID, &article.Topic, &article.Title, &article.Slug, &article.Content,
		&article.MetaDescription, &article.Keywords, &article.WordCount, &article.ReadabilityScore,
		&article.SEOScore, &schemaJSON, &faqsJSON, &ctasJSON, &article.Status,
		&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(schemaJSON) > 0 {
		if err := json.Unmarshal(schemaJSON, &article.Schema); err != nil {
			return nil, fmt.Errorf("failed to decode article schema: %w", err)
		}
	}
	if len(faqsJSON) > 0 {
		if err := json.Unmarshal(faqsJSON, &article.FAQs); err != nil {
			return nil, fmt.Errorf("failed to decode article faqs: %w", err)
		}
	}
	if len(ctasJSON) > 0 {
		if err := json.Unmarshal(ctasJSON, &article.CTAs); err != nil {
			return nil, fmt.Errorf("failed to decode article ctas: %w", err)
		}
	}

	return &article, nil
}
