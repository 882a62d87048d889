package repository

import (
	"blogcms/internal/models"
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")
	// ErrTagExists is returned on a unique violation of the tag title.
	ErrTagExists = errors.New("tag already exists")
	// ErrUsernameTaken is returned on a unique violation of the user login.
	ErrUsernameTaken = errors.New("username already taken")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	VerifyPassword(ctx context.Context, login, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tagTitles []string) error
	GetByID(ctx context.Context, postID int64, withContent bool) (*models.Post, error)
	FindPublished(ctx context.Context, keyword string, tagID int64) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post, tagTitles []string) error
	Delete(ctx context.Context, postID int64) (*models.Post, error)
}

type TagRepository interface {
	Save(ctx context.Context, title string) (*models.Tag, error)
	Delete(ctx context.Context, tagID int64) (*models.Tag, error)
	SearchByTitle(ctx context.Context, keyword string) ([]models.Tag, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Tag, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, imageID int64) (*models.Image, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Image, error)
	Delete(ctx context.Context, imageID int64) error
}

type Repository struct {
	User  UserRepository
	Post  PostRepository
	Tag   TagRepository
	Image ImageRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Post:  NewPostRepository(db),
		Tag:   NewTagRepository(db),
		Image: NewImageRepository(db),
	}
}
