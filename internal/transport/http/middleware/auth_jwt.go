package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrack-api/internal/core/auth"
	resp "jobtrack-api/internal/transport/http/response"
)

// 下游 handler 从 context 读取的身份键
const (
	KeyUserID   = "userId"
	KeyUserName = "userName"
)

// AuthJWT 受保护路由的统一闸门：缺头、scheme 不对、token 坏、
// 过期 —— 对客户端全部表现为同一个 401
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer") {
			resp.Err(c, http.StatusUnauthorized, resp.MsgAuthInvalid)
			return
		}
		// "Bearer" 后没有 token 部分时交给 Parse 判失败，出口一致
		var token string
		if parts := strings.SplitN(ah, " ", 2); len(parts) == 2 {
			token = parts[1]
		}
		claims, err := j.Parse(token)
		if err != nil {
			resp.Err(c, http.StatusUnauthorized, resp.MsgAuthInvalid)
			return
		}
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUserName, claims.Name)
		c.Next()
	}
}
