package handlers

import (
	"log"
	"net/http"
)

func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"message": "pong"}, http.StatusOK)
}

func (h *Handlers) PublicIndex(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"message": "Public routes accessible without authentication"}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		log.Printf("Healthcheck failed: %v", err)
		WriteError(w, "Database unavailable", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
