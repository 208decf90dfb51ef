package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	appHandler *AppHandler,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	fileHandler *FileHandler,
	authMiddleware *AuthMiddleware,
) http.Handler {
	router := mux.NewRouter()

	// Unauthenticated routes
	router.HandleFunc("/status", appHandler.Status).Methods("GET")
	router.HandleFunc("/stats", appHandler.Stats).Methods("GET")
	router.HandleFunc("/users", userHandler.Register).Methods("POST")

	// Credential authentication opens a session
	router.Handle("/connect", authMiddleware.Basic(http.HandlerFunc(authHandler.Connect))).Methods("GET")

	// Token-protected routes
	router.Handle("/disconnect", authMiddleware.Token(http.HandlerFunc(authHandler.Disconnect))).Methods("GET")
	router.Handle("/users/me", authMiddleware.Token(http.HandlerFunc(userHandler.Me))).Methods("GET")
	router.Handle("/files", authMiddleware.Token(http.HandlerFunc(fileHandler.Upload))).Methods("POST")
	router.Handle("/files", authMiddleware.Token(http.HandlerFunc(fileHandler.Index))).Methods("GET")
	router.Handle("/files/{id}", authMiddleware.Token(http.HandlerFunc(fileHandler.Show))).Methods("GET")
	router.Handle("/files/{id}/publish", authMiddleware.Token(http.HandlerFunc(fileHandler.Publish))).Methods("PUT")
	router.Handle("/files/{id}/unpublish", authMiddleware.Token(http.HandlerFunc(fileHandler.Unpublish))).Methods("PUT")

	// Content is readable without a session when the file is public
	router.Handle("/files/{id}/data", authMiddleware.OptionalToken(http.HandlerFunc(fileHandler.Data))).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Token",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
