package repository

import (
	"blogcms/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Save(ctx context.Context, title string) (*models.Tag, error) {
	var tag models.Tag

	query := `INSERT INTO tags (title) VALUES ($1) RETURNING tag_id, title`

	err := r.db.QueryRowContext(ctx, query, title).Scan(&tag.TagID, &tag.Title)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTagExists
		}
		return nil, fmt.Errorf("failed to save tag: %w", err)
	}

	return &tag, nil
}

func (r *tagRepository) Delete(ctx context.Context, tagID int64) (*models.Tag, error) {
	var tag models.Tag

	query := `DELETE FROM tags WHERE tag_id = $1 RETURNING tag_id, title`

	err := r.db.QueryRowContext(ctx, query, tagID).Scan(&tag.TagID, &tag.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete tag: %w", err)
	}

	return &tag, nil
}

func (r *tagRepository) SearchByTitle(ctx context.Context, keyword string) ([]models.Tag, error) {
	tags := []models.Tag{}

	query := `SELECT tag_id, title FROM tags WHERE title ILIKE '%' || $1 || '%' ORDER BY tag_id`

	err := r.db.SelectContext(ctx, &tags, query, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search tags: %w", err)
	}

	return tags, nil
}

func (r *tagRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Tag, error) {
	tags := []models.Tag{}

	query := `
		SELECT t.tag_id, t.title FROM tags t
		INNER JOIN post_tags pt ON t.tag_id = pt.tag_id
		WHERE pt.post_id = $1
		ORDER BY t.tag_id
	`

	err := r.db.SelectContext(ctx, &tags, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post tags: %w", err)
	}

	return tags, nil
}
