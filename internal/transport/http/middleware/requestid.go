package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const KeyRequestID = "X-Request-ID"

// 调用方传入的 id 过长时重新生成，避免日志被撑爆
const maxRequestIDLen = 128

// RequestID 回写到响应头、gin.Context，并覆盖请求头，
// 这样 ez.Router 里的处理函数从 Call.Header 也能拿到同一个 id
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" || len(rid) > maxRequestIDLen {
			rid = uuid.NewString()
			c.Request.Header.Set(KeyRequestID, rid)
		}
		c.Header(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
