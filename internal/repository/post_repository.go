package repository

import (
	"blogcms/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// upsertTags resolves tag titles to tags with connect-or-create semantics:
// an unknown title is inserted, a known one is reused. The no-op DO UPDATE
// makes RETURNING yield the row in both cases.
func upsertTags(ctx context.Context, tx *sqlx.Tx, titles []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(titles))

	query := `
		INSERT INTO tags (title) VALUES ($1)
		ON CONFLICT (title) DO UPDATE SET title = EXCLUDED.title
		RETURNING tag_id, title
	`

	for _, title := range titles {
		var tag models.Tag
		err := tx.QueryRowContext(ctx, query, title).Scan(&tag.TagID, &tag.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert tag %q: %w", title, err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func linkPostTags(ctx context.Context, tx *sqlx.Tx, postID int64, tags []models.Tag) error {
	query := `INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx, query, postID, tag.TagID); err != nil {
			return fmt.Errorf("failed to link tag %d to post %d: %w", tag.TagID, postID, err)
		}
	}

	return nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post, tagTitles []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (title, content, published)
		VALUES ($1, $2, $3)
		RETURNING post_id, created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, query, post.Title, post.Content, post.Published).
		Scan(&post.PostID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	tags, err := upsertTags(ctx, tx, tagTitles)
	if err != nil {
		return err
	}

	if err := linkPostTags(ctx, tx, post.PostID, tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	post.Tags = tags
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64, withContent bool) (*models.Post, error) {
	var post models.Post

	// Only published posts are reachable through this read path.
	query := `
		SELECT post_id, title, content, published, created_at, updated_at
		FROM posts
		WHERE post_id = $1 AND published = TRUE
	`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	if !withContent {
		post.Content = ""
	}

	tags, err := NewTagRepository(r.db).GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	images, err := NewImageRepository(r.db).GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Images = images

	return &post, nil
}

func (r *postRepository) FindPublished(ctx context.Context, keyword string, tagID int64) ([]models.Post, error) {
	query := `
		SELECT post_id, title, content, published, created_at, updated_at
		FROM posts
		WHERE published = TRUE
	`
	args := []interface{}{}

	if keyword != "" {
		args = append(args, keyword)
		query += fmt.Sprintf(" AND title ILIKE '%%' || $%d || '%%'", len(args))
	}

	if tagID != 0 {
		args = append(args, tagID)
		query += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM post_tags pt WHERE pt.post_id = posts.post_id AND pt.tag_id = $%d)", len(args))
	}

	query += " ORDER BY post_id"

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	if err := r.loadTags(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// loadTags attaches tags to a batch of posts with a single query.
func (r *postRepository) loadTags(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]int64, len(posts))
	for i, post := range posts {
		postIDs[i] = post.PostID
	}

	query := `
		SELECT pt.post_id, t.tag_id, t.title FROM post_tags pt
		INNER JOIN tags t ON t.tag_id = pt.tag_id
		WHERE pt.post_id = ANY($1)
		ORDER BY pt.post_id, t.tag_id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		return fmt.Errorf("failed to fetch post tags: %w", err)
	}
	defer rows.Close()

	postTags := make(map[int64][]models.Tag)
	for rows.Next() {
		var postID int64
		var tag models.Tag
		if err := rows.Scan(&postID, &tag.TagID, &tag.Title); err != nil {
			return fmt.Errorf("failed to scan post tag: %w", err)
		}
		postTags[postID] = append(postTags[postID], tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate post tags: %w", err)
	}

	for i := range posts {
		tags := postTags[posts[i].PostID]
		if tags == nil {
			tags = []models.Tag{}
		}
		posts[i].Tags = tags
	}

	return nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post, tagTitles []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE posts
		SET title = $1, content = $2, published = $3, updated_at = $4
		WHERE post_id = $5
		RETURNING created_at
	`

	post.UpdatedAt = time.Now()

	err = tx.QueryRowContext(ctx, query, post.Title, post.Content, post.Published, post.UpdatedAt, post.PostID).
		Scan(&post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, post.PostID); err != nil {
		return fmt.Errorf("failed to clear post tags: %w", err)
	}

	tags, err := upsertTags(ctx, tx, tagTitles)
	if err != nil {
		return err
	}

	if err := linkPostTags(ctx, tx, post.PostID, tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	post.Tags = tags
	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post

	query := `
		DELETE FROM posts WHERE post_id = $1
		RETURNING post_id, title, content, published, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, postID).StructScan(&post)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	return &post, nil
}
