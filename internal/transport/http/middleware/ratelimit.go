package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	resp "go-gin-mock-backend/internal/transport/http/response"
)

func tooMany(c *gin.Context) {
	c.AbortWithStatusJSON(resp.CodeTooManyRequests, resp.ErrorCode(resp.CodeTooManyRequests, ""))
}

// RateLimit 全局令牌桶限速；rps <= 0 不限速
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		tooMany(c)
	}
}

// perIPIdle 超过这个时间没有请求的 IP 会被清理，桶重新从满额开始
const perIPIdle = 3 * time.Minute

// RateLimitPerIP 每 IP 限速；空闲的 IP 定期清理，map 不会无限增长
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	return rateLimitPerIP(rps, burst, perIPIdle, time.Now)
}

type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

func rateLimitPerIP(rps rate.Limit, burst int, idle time.Duration, now func() time.Time) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	var (
		mu        sync.Mutex
		visitors  = make(map[string]*visitor)
		lastSweep = now()
	)
	return func(c *gin.Context) {
		ip, t := c.ClientIP(), now()
		mu.Lock()
		if t.Sub(lastSweep) >= idle {
			for k, v := range visitors {
				if t.Sub(v.seen) >= idle {
					delete(visitors, k)
				}
			}
			lastSweep = t
		}
		v, ok := visitors[ip]
		if !ok {
			v = &visitor{lim: rate.NewLimiter(rps, burst)}
			visitors[ip] = v
		}
		v.seen = t
		allowed := v.lim.AllowN(t, 1)
		mu.Unlock()
		if allowed {
			c.Next()
			return
		}
		tooMany(c)
	}
}
