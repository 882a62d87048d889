package handlers

import (
	"blogcms/internal/repository"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type CreateTagRequest struct {
	Title string `json:"title" validate:"required,min=1,max=64"`
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Tag title is required", http.StatusBadRequest)
		return
	}

	tag, err := h.TagRepo.Save(r.Context(), req.Title)
	if err != nil {
		if errors.Is(err, repository.ErrTagExists) {
			WriteError(w, "Tag already exists", http.StatusConflict)
			return
		}
		log.Printf("Failed to create tag %q: %v", req.Title, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, tag, http.StatusCreated)
}

func (h *Handlers) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := parseIDVar(r, "id")
	if err != nil {
		WriteError(w, "Invalid tag id", http.StatusBadRequest)
		return
	}

	tag, err := h.TagRepo.Delete(r.Context(), tagID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Tag not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to delete tag %d: %v", tagID, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, tag, http.StatusOK)
}
