package test

import (
	"context"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"

	"blogcms/internal/config"
	handlers "blogcms/internal/handler"
	"blogcms/internal/models"
	"blogcms/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, login, password string) (*models.User, string, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, login, password string) (*models.User, string, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.SavePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID int64, withContent bool) (*models.Post, error) {
	args := m.Called(ctx, postID, withContent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) EditPost(ctx context.Context, postID int64, req service.SavePostRequest) (*models.Post, error) {
	args := m.Called(ctx, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPublished(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) MultiSearch(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResult), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) AddImage(ctx context.Context, postID int64, fileName string, file io.Reader, size int64) (*models.Image, error) {
	args := m.Called(ctx, postID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockImageService) DeleteImage(ctx context.Context, postID, imageID int64) (*models.Image, error) {
	args := m.Called(ctx, postID, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Save(ctx context.Context, title string) (*models.Tag, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Delete(ctx context.Context, tagID int64) (*models.Tag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) SearchByTitle(ctx context.Context, keyword string) ([]models.Tag, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Tag, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

type testMocks struct {
	auth   *MockAuthService
	posts  *MockPostService
	search *MockSearchService
	images *MockImageService
	tags   *MockTagRepository
}

func createTestHandlers() (*handlers.Handlers, *testMocks) {
	mocks := &testMocks{
		auth:   new(MockAuthService),
		posts:  new(MockPostService),
		search: new(MockSearchService),
		images: new(MockImageService),
		tags:   new(MockTagRepository),
	}

	h := &handlers.Handlers{
		AuthService:   mocks.auth,
		PostService:   mocks.posts,
		SearchService: mocks.search,
		ImageService:  mocks.images,
		TagRepo:       mocks.tags,
		Cfg: &config.Config{
			JWTSecretKey:  "test-secret-key",
			ServerPort:    8080,
			MaxUploadSize: 10 * 1024 * 1024,
		},
		Validate: validator.New(),
	}

	return h, mocks
}
