// internal/middleware/cors.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// CORS lets the listed frontends call the API with credentials, any method
// and any header. Preflights are answered here and echo the requested
// headers back. Requests from other origins are still served, only without
// CORS headers, so the browser is the one that blocks them.
func CORS(origins []string) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders:       []string{"*"},
		AllowCredentials:     true,
		MaxAge:               12 * 60 * 60,
		OptionsSuccessStatus: http.StatusNoContent,
	})

	return func(ctx *gin.Context) {
		passed := false
		c.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			ctx.Request = r
			ctx.Next()
		})).ServeHTTP(ctx.Writer, ctx.Request)

		if !passed {
			ctx.Abort()
		}
	}
}
