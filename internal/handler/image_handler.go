package handlers

import (
	"blogcms/internal/repository"
	"errors"
	"log"
	"net/http"
)

func (h *Handlers) AddImage(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDVar(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "File is missing or too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := h.ImageService.AddImage(r.Context(), postID, header.Filename, file, header.Size)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to add image to post %d: %v", postID, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, image, http.StatusCreated)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDVar(r, "id")
	if err != nil {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	imageID, err := parseIDVar(r, "imageId")
	if err != nil {
		WriteError(w, "Invalid image id", http.StatusBadRequest)
		return
	}

	image, err := h.ImageService.DeleteImage(r.Context(), postID, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Image not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to delete image %d from post %d: %v", imageID, postID, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, image, http.StatusOK)
}
