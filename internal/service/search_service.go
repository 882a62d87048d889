package service

import (
	"blogcms/internal/models"
	"blogcms/internal/repository"
	"context"
	"fmt"
)

type SearchService interface {
	MultiSearch(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error)
}

type searchService struct {
	postRepo repository.PostRepository
	tagRepo  repository.TagRepository
}

func NewSearchService(postRepo repository.PostRepository, tagRepo repository.TagRepository) SearchService {
	return &searchService{
		postRepo: postRepo,
		tagRepo:  tagRepo,
	}
}

// MultiSearch resolves a search query against posts and tags. The post
// filter always restricts to published posts; keyword and tag filters are
// ANDed on top when present. Tags are matched by keyword only: without a
// keyword the tag list stays empty even when a tag filter is set, and the
// tag filter never narrows the tag result.
func (s *searchService) MultiSearch(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error) {
	posts, err := s.postRepo.FindPublished(ctx, query.Keyword, query.TagID)
	if err != nil {
		return nil, fmt.Errorf("post search failed: %w", err)
	}

	tags := []models.Tag{}
	if query.Keyword != "" {
		tags, err = s.tagRepo.SearchByTitle(ctx, query.Keyword)
		if err != nil {
			return nil, fmt.Errorf("tag search failed: %w", err)
		}
	}

	return &models.SearchResult{
		Posts: posts,
		Tags:  tags,
	}, nil
}
