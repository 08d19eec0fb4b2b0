package ez

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin/binding"

	"go-gin-mock-backend/internal/core/metrics"
	resp "go-gin-mock-backend/internal/transport/http/response"
)

/* ================== Action（一行注册一个带类型的接口） ================== */

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 body 绑定（空 body 视为 {}）
	BindQuery Binder = "query" // 从 URL ?a=b 绑定，支持 form:"x,default=1"
	BindNone  Binder = "none"  // 不绑定，自己从 call.Params / call.Query 取
)

// 统一错误对象
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func NotFound(msg string) error   { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string // "GET" | "POST" | "PUT" | "PATCH" | "DELETE"
	Path    string // 例："/orders"、"/orders/:id"
	Binder  Binder
	Status  int // 成功时的状态码，默认 200
	Handler func(ctx context.Context, call *Call, in *I) (O, error)
}

// RegisterAction 在 Router 上注册动作接口
func RegisterAction[I any, O any](r *Router, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	resource := resourceOf(a.Path)
	r.Handle(a.Method, a.Path, func(ctx context.Context, call *Call) Result {
		// 1) 绑定入参
		var in I
		if err := bind(a.Binder, call, &in); err != nil {
			return countRejected(resource, errResult(BadRequest(err.Error())))
		}

		// 2) 执行
		out, err := a.Handler(ctx, call, &in)

		// 3) 统一错误映射
		if err != nil {
			return countRejected(resource, errResult(err))
		}
		return Result{Status: status, Body: out}
	})
}

// countRejected 400 计入 ValidationFailures，绑定失败和业务校验失败都算
func countRejected(resource string, res Result) Result {
	if res.Status == http.StatusBadRequest {
		metrics.ValidationFailures.WithLabelValues(resource).Inc()
	}
	return res
}

// resourceOf 取路由模式的第一段作为指标标签：/orders/:id -> orders
func resourceOf(pattern string) string {
	if segs := splitPath(pattern); len(segs) > 0 {
		return segs[0]
	}
	return "root"
}

func bind(b Binder, call *Call, obj any) error {
	switch b {
	case BindJSON:
		body := call.Body
		if len(body) == 0 {
			body = []byte("{}")
		}
		return binding.JSON.BindBody(body, obj)
	case BindQuery:
		req := &http.Request{Method: call.Method, URL: &url.URL{Path: call.Path, RawQuery: call.Query.Encode()}}
		return binding.Query.Bind(req, obj)
	default: // BindNone: 不绑定
		return nil
	}
}

func errResult(err error) Result {
	var ae *AErr
	if errors.As(err, &ae) {
		if ae.Code >= http.StatusInternalServerError {
			// 5xx 不外泄底层错误
			return Result{Status: ae.Code, Body: resp.ErrorCode(ae.Code, ae.Msg)}
		}
		return Result{Status: ae.Code, Body: resp.Error(ae.Error())}
	}
	return Result{Status: resp.CodeServerError, Body: resp.ErrorCode(resp.CodeServerError, "")}
}
