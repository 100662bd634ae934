package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS возвращает middleware, разрешающий cross-origin запросы
// от фронтенда (SPA живет на другом origin)
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
	return c.Handler
}
