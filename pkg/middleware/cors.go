package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type", RequestIDHeader},
		ExposedHeaders:       []string{RequestIDHeader},
		MaxAge:               300,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
