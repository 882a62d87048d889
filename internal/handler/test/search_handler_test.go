package test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogcms/internal/models"
)

func TestMultiSearchHandler_KeywordAndTag(t *testing.T) {
	h, mocks := createTestHandlers()

	mocks.search.On("MultiSearch", mock.Anything, models.SearchQuery{Keyword: "typescript", TagID: 1}).
		Return(&models.SearchResult{
			Posts: []models.Post{{PostID: 1, Title: "Post about Typescript", Published: true}},
			Tags:  []models.Tag{{TagID: 1, Title: "TypeScript"}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/search?keyword=typescript&tagId=1", nil)
	rr := httptest.NewRecorder()

	h.MultiSearch(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response models.SearchResult
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	require.NoError(t, err)

	require.Len(t, response.Posts, 1)
	assert.Equal(t, "Post about Typescript", response.Posts[0].Title)
	require.Len(t, response.Tags, 1)
	assert.Equal(t, "TypeScript", response.Tags[0].Title)

	mocks.search.AssertExpectations(t)
}

func TestMultiSearchHandler_EmptyQuery(t *testing.T) {
	h, mocks := createTestHandlers()

	mocks.search.On("MultiSearch", mock.Anything, models.SearchQuery{}).
		Return(&models.SearchResult{
			Posts: []models.Post{{PostID: 1, Title: "first", Published: true}},
			Tags:  []models.Tag{},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/search", nil)
	rr := httptest.NewRecorder()

	h.MultiSearch(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"tags":[]`)
}

func TestMultiSearchHandler_InvalidTagID(t *testing.T) {
	h, mocks := createTestHandlers()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/search?tagId=abc", nil)
	rr := httptest.NewRecorder()

	h.MultiSearch(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Invalid tag id")
	mocks.search.AssertNotCalled(t, "MultiSearch", mock.Anything, mock.Anything)
}

func TestMultiSearchHandler_CriticalError(t *testing.T) {
	h, mocks := createTestHandlers()

	mocks.search.On("MultiSearch", mock.Anything, models.SearchQuery{Keyword: "typescript"}).
		Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/search?keyword=typescript", nil)
	rr := httptest.NewRecorder()

	h.MultiSearch(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	// Store internals stay out of the response body.
	assert.NotContains(t, rr.Body.String(), "connection refused")
}
