package handlers

import (
	"blogcms/internal/models"
	"log"
	"net/http"
	"strconv"
)

func (h *Handlers) MultiSearch(w http.ResponseWriter, r *http.Request) {
	query := models.SearchQuery{
		Keyword: r.URL.Query().Get("keyword"),
	}

	if rawTagID := r.URL.Query().Get("tagId"); rawTagID != "" {
		tagID, err := strconv.ParseInt(rawTagID, 10, 64)
		if err != nil || tagID <= 0 {
			WriteError(w, "Invalid tag id", http.StatusBadRequest)
			return
		}
		query.TagID = tagID
	}

	result, err := h.SearchService.MultiSearch(r.Context(), query)
	if err != nil {
		log.Printf("Search failed (keyword=%q, tagId=%d): %v", query.Keyword, query.TagID, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}
