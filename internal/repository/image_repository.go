package repository

import (
	"blogcms/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type imageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (post_id, object_name, image_url)
		VALUES ($1, $2, $3)
		RETURNING image_id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, image.PostID, image.ObjectName, image.ImageURL).
		Scan(&image.ImageID, &image.CreatedAt)
	if err != nil {
		// FK violation means the post does not exist.
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to create image: %w", err)
	}

	return nil
}

func (r *imageRepository) GetByID(ctx context.Context, imageID int64) (*models.Image, error) {
	var image models.Image

	query := `SELECT * FROM images WHERE image_id = $1`

	err := r.db.GetContext(ctx, &image, query, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}

	return &image, nil
}

func (r *imageRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Image, error) {
	images := []models.Image{}

	query := `SELECT * FROM images WHERE post_id = $1 ORDER BY image_id`

	err := r.db.SelectContext(ctx, &images, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post images: %w", err)
	}

	return images, nil
}

func (r *imageRepository) Delete(ctx context.Context, imageID int64) error {
	query := `DELETE FROM images WHERE image_id = $1`

	result, err := r.db.ExecContext(ctx, query, imageID)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
