package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "jobtrack-api/internal/transport/http/response"
)

// Recovery panic 只进日志，客户端拿到通用 500
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
				)
				resp.Err(c, http.StatusInternalServerError, "something went wrong, try again later")
			}
		}()
		c.Next()
	}
}
