package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/food-share-server/internal/auth"
	"github.com/d60-Lab/food-share-server/pkg/response"
)

// tokenFrom 读取令牌，兼容 "Bearer xxx" 与裸 token 两种写法
func tokenFrom(c *gin.Context, header string) string {
	raw := strings.TrimSpace(c.GetHeader(header))
	if raw == "" {
		return ""
	}
	if parts := strings.SplitN(raw, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return raw
}

// RequireAuth 校验指定请求头中的令牌，并把操作人写入请求 context
func RequireAuth(signer *auth.Signer, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFrom(c, header)
		if token == "" {
			response.Unauthorized(c, "未登录")
			return
		}
		id, err := signer.Parse(token)
		if err != nil {
			response.Unauthorized(c, "登录已失效，请重新登录")
			return
		}
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

// OptionalAuth 有合法令牌时写入操作人，否则按匿名放行
func OptionalAuth(signer *auth.Signer, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFrom(c, header); token != "" {
			if id, err := signer.Parse(token); err == nil {
				c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
			}
		}
		c.Next()
	}
}
