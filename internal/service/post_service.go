package service

import (
	"blogcms/internal/models"
	"blogcms/internal/repository"
	"blogcms/internal/storage"
	"context"
	"errors"
	"fmt"
	"log"
)

type SavePostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

type PostService interface {
	CreatePost(ctx context.Context, req SavePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID int64, withContent bool) (*models.Post, error)
	EditPost(ctx context.Context, postID int64, req SavePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID int64) (*models.Post, error)
	ListPublished(ctx context.Context) ([]models.Post, error)
}

type postService struct {
	postRepo  repository.PostRepository
	imageRepo repository.ImageRepository
	storage   storage.Storage
}

func NewPostService(postRepo repository.PostRepository, imageRepo repository.ImageRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo:  postRepo,
		imageRepo: imageRepo,
		storage:   storage,
	}
}

func (s *postService) CreatePost(ctx context.Context, req SavePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	}

	err := s.postRepo.Create(ctx, post, req.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s *postService) GetPost(ctx context.Context, postID int64, withContent bool) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, withContent)
}

func (s *postService) EditPost(ctx context.Context, postID int64, req SavePostRequest) (*models.Post, error) {
	post := &models.Post{
		PostID:    postID,
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	}

	err := s.postRepo.Update(ctx, post, req.Tags)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to edit post: %w", err)
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, postID int64) (*models.Post, error) {
	images, err := s.imageRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post images: %w", err)
	}

	post, err := s.postRepo.Delete(ctx, postID)
	if err != nil {
		return nil, err
	}

	// Image rows go with the post via ON DELETE CASCADE; stored objects are
	// removed best-effort, an orphaned object is not worth failing the delete.
	for _, image := range images {
		if err := s.storage.DeleteImage(ctx, image.ObjectName); err != nil {
			log.Printf("Failed to remove image object %s: %v", image.ObjectName, err)
		}
	}

	return post, nil
}

// ListPublished returns published posts in the summary view, without content.
func (s *postService) ListPublished(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepo.FindPublished(ctx, "", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	for i := range posts {
		posts[i].Content = ""
	}

	return posts, nil
}
