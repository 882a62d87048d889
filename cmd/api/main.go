package main

import (
	"blogcms/cmd/app"
	"blogcms/internal/config"
	handlers "blogcms/internal/handler"
	"blogcms/internal/middleware"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/ping", handler.Ping).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)

	public := router.PathPrefix("/public").Subrouter()
	public.HandleFunc("", handler.PublicIndex).Methods(http.MethodGet)
	public.HandleFunc("/posts", handler.ListPublishedPosts).Methods(http.MethodGet)

	// Everything under /dashboard is behind the auth guard.
	dashboard := router.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(mux.MiddlewareFunc(middleware.AuthGuard(services.Token, middleware.Enforced)))

	dashboard.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	dashboard.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	dashboard.HandleFunc("/posts/{id}", handler.EditPost).Methods(http.MethodPut)
	dashboard.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	dashboard.HandleFunc("/posts/{id}/images", handler.AddImage).Methods(http.MethodPost)
	dashboard.HandleFunc("/posts/{id}/images/{imageId}", handler.DeleteImage).Methods(http.MethodDelete)

	dashboard.HandleFunc("/tags", handler.CreateTag).Methods(http.MethodPost)
	dashboard.HandleFunc("/tags/{id}", handler.DeleteTag).Methods(http.MethodDelete)

	dashboard.HandleFunc("/user", handler.Register).Methods(http.MethodPost)
	dashboard.HandleFunc("/search", handler.MultiSearch).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
