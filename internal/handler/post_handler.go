package handlers

import (
	"blogcms/internal/repository"
	"blogcms/internal/service"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type SavePostRequest struct {
	Title     string   `json:"title" validate:"required,min=2,max=128"`
	Content   string   `json:"content" validate:"required,min=16"`
	Tags      []string `json:"tags" validate:"omitempty,dive,required"`
	Published bool     `json:"published"`
}

func parseIDVar(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid post data", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), service.SavePostRequest{
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		log.Printf("Failed to create post: %v", err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDVar(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	// summary=true requests the summary view, which omits the content
	withContent := r.URL.Query().Get("summary") != "true"

	post, err := h.PostService.GetPost(r.Context(), postID, withContent)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch post %d: %v", postID, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDVar(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var req SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid post data", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.EditPost(r.Context(), postID, service.SavePostRequest{
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to edit post %d: %v", postID, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDVar(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.DeletePost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to delete post %d: %v", postID, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) ListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPublished(r.Context())
	if err != nil {
		log.Printf("Failed to list posts: %v", err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}
