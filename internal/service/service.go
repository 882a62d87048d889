package service

import (
	"blogcms/internal/config"
	"blogcms/internal/repository"
	"blogcms/internal/storage"
)

type Service struct {
	Token  TokenService
	Auth   AuthService
	Post   PostService
	Search SearchService
	Image  ImageService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	tokens := NewTokenService(cfg)

	return &Service{
		Token:  tokens,
		Auth:   NewAuthService(rep.User, tokens),
		Post:   NewPostService(rep.Post, rep.Image, storage),
		Search: NewSearchService(rep.Post, rep.Tag),
		Image:  NewImageService(rep.Image, storage),
	}
}
