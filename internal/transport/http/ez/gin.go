package ez

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-mock-backend/internal/core/metrics"
	resp "go-gin-mock-backend/internal/transport/http/response"
)

// KeyRoute gin.Context 中记录命中的路由模式，供 metrics / accesslog 使用
const KeyRoute = "ez.route"

// 与 middleware.RequestID 写入的请求头一致
const headerRequestID = "X-Request-ID"

// GinHandler 把 Router 挂成 gin 的兜底处理（engine.NoRoute），prefix 之外的路径一律视为未命中
func (r *Router) GinHandler(l *zap.Logger, prefix string) gin.HandlerFunc {
	prefix = strings.TrimRight(prefix, "/")
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(resp.CodeTooLarge, resp.ErrorCode(resp.CodeTooLarge, ""))
				return
			}
			c.AbortWithStatusJSON(resp.CodeBadRequest, resp.Error("read body: "+err.Error()))
			return
		}

		path, ok := strings.CutPrefix(c.Request.URL.Path, prefix)
		// 前缀必须在段边界结束：/api 不能吃掉 /apiusers
		ok = ok && (path == "" || strings.HasPrefix(path, "/"))
		call := &Call{
			Method: c.Request.Method,
			Path:   path,
			Query:  c.Request.URL.Query(),
			Header: c.Request.Header,
			Body:   body,
		}

		var res Result
		if ok {
			res, err = r.Dispatch(c.Request.Context(), call)
		} else {
			res, err = Unmatched(call.Method, c.Request.URL.Path)
		}
		switch {
		case errors.Is(err, ErrUnmatchedRoute):
			// 多半是路由注册问题，打 warn 便于排查
			metrics.UnmatchedRoutes.WithLabelValues(call.Method).Inc()
			l.Warn("unmatched route",
				zap.String("method", call.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("rid", call.Header.Get(headerRequestID)),
			)
		case err != nil:
			l.Warn("dispatch aborted", zap.String("route", res.Route), zap.Error(err))
		}
		if res.Route != "" {
			c.Set(KeyRoute, prefix+res.Route)
		}
		c.JSON(res.Status, res.Body)
	}
}
