package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS applies rs/cors to gin. Preflight requests are answered here and never
// reach a handler.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins:     allowedOrigins,
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", "Accept"},
		ExposedHeaders:     []string{"Content-Disposition"},
		OptionsPassthrough: true,
	})
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions &&
			ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
