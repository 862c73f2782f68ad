package api

import (
	"net/http"

	"github.com/rs/cors"
)

var corsPolicy = cors.New(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
})

// CORSMiddleware allows the browser dashboard, served from another origin, to call the gateway
func CORSMiddleware(next http.Handler) http.Handler {
	return corsPolicy.Handler(next)
}
