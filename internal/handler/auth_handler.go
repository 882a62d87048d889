package handlers

import (
	"blogcms/internal/models"
	"blogcms/internal/repository"
	"blogcms/internal/service"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type RegisterRequest struct {
	Login    string `json:"login" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Login and a password of at least 6 characters are required", http.StatusBadRequest)
		return
	}

	user, _, err := h.AuthService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			WriteError(w, "Username already taken", http.StatusConflict)
			return
		}
		log.Printf("Failed to register user %s: %v", req.Login, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Login and password are required", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Invalid login or password", http.StatusUnauthorized)
			return
		}
		log.Printf("Failed to log in user %s: %v", req.Login, err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, AuthResponse{Token: token, User: user}, http.StatusOK)
}
