package service

import (
	"blogcms/internal/models"
	"blogcms/internal/repository"
	"blogcms/internal/storage"
	"context"
	"fmt"
	"io"
	"log"
)

type ImageService interface {
	AddImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error)
	DeleteImage(ctx context.Context, postID, imageID int64) (*models.Image, error)
}

type imageService struct {
	imageRepo repository.ImageRepository
	storage   storage.Storage
}

func NewImageService(imageRepo repository.ImageRepository, storage storage.Storage) ImageService {
	return &imageService{
		imageRepo: imageRepo,
		storage:   storage,
	}
}

func (s *imageService) AddImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error) {
	objectName, imageURL, err := s.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	image := &models.Image{
		PostID:     postID,
		ObjectName: objectName,
		ImageURL:   imageURL,
	}

	err = s.imageRepo.Create(ctx, image)
	if err != nil {
		// The object is already in the bucket, clean it up before failing.
		if removeErr := s.storage.DeleteImage(ctx, objectName); removeErr != nil {
			log.Printf("Failed to remove orphaned object %s: %v", objectName, removeErr)
		}
		return nil, err
	}

	return image, nil
}

func (s *imageService) DeleteImage(ctx context.Context, postID, imageID int64) (*models.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	if image.PostID != postID {
		return nil, repository.ErrNotFound
	}

	if err := s.storage.DeleteImage(ctx, image.ObjectName); err != nil {
		return nil, fmt.Errorf("failed to remove image object: %w", err)
	}

	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return nil, err
	}

	return image, nil
}
