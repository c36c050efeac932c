package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS admits the UI shell's origin (a Tauri/Electron webview reports a
// custom scheme, not the server's own origin).
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	handler := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		MaxAge:           3600,
		AllowCredentials: false,
	})

	return handler.Handler
}
