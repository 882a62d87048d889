package handlers

import (
	"blogcms/internal/config"
	"blogcms/internal/database"
	"blogcms/internal/repository"
	"blogcms/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthService   service.AuthService
	PostService   service.PostService
	SearchService service.SearchService
	ImageService  service.ImageService
	TagRepo       repository.TagRepository
	DB            *database.DB
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   services.Auth,
		PostService:   services.Post,
		SearchService: services.Search,
		ImageService:  services.Image,
		TagRepo:       repo.Tag,
		DB:            db,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
