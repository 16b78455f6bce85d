package middleware

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the admin console origin. Accept-Language picks the response language.
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     withPatch(cfg.CORS.AllowedMethods),
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}

	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
		// 와일드카드 origin에는 credentials를 허용할 수 없다
		corsConfig.AllowCredentials = false
	}

	return cors.New(corsConfig)
}

// 예약 상태 변경은 PATCH를 쓴다
func withPatch(methods []string) []string {
	for _, m := range methods {
		if m == "PATCH" {
			return methods
		}
	}
	return append(append([]string{}, methods...), "PATCH")
}
