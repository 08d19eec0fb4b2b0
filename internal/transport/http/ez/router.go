// Package ez 是 mock 后端的请求路由：按 (method, path) 选出唯一的处理函数。
//
// 路由在注册时按特异性排序：逐段比较，字面量段优先于参数段（:id），
// 与注册顺序无关，所以 /products/search 永远不会被 /products/:id 吞掉。
package ez

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	resp "go-gin-mock-backend/internal/transport/http/response"
)

// ErrUnmatchedRoute 没有任何路由匹配；与资源不存在（404 NotFound）是两回事
var ErrUnmatchedRoute = errors.New("unmatched route")

// Params 路径参数，例如 /orders/:id 中的 id
type Params map[string]string

func (p Params) Int(name string) (int, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("missing path param %q", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	return n, nil
}

// Call 一次调用的描述：method + path + query + body
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
	Params Params
}

// Result 状态码 + 可 JSON 序列化的响应体；Route 为命中的路由模式
type Result struct {
	Status int
	Body   any
	Route  string
}

type HandlerFunc func(ctx context.Context, call *Call) Result

// Latency 模拟网络延迟，在 [Min, Max] 内均匀取值；全零表示不延迟
type Latency struct {
	Min time.Duration
	Max time.Duration
}

func (l Latency) pick() time.Duration {
	if l.Max <= l.Min {
		return l.Min
	}
	return l.Min + time.Duration(rand.Int63n(int64(l.Max-l.Min+1)))
}

type segment struct {
	lit   string
	param string // 非空表示参数段
}

func (s segment) isParam() bool { return s.param != "" }

type route struct {
	method  string
	pattern string
	segs    []segment
	h       HandlerFunc
}

type Router struct {
	mu      sync.RWMutex
	routes  map[string][]*route
	latency Latency
}

type Option func(*Router)

func WithLatency(l Latency) Option { return func(r *Router) { r.latency = l } }

func NewRouter(opts ...Option) *Router {
	r := &Router{routes: map[string][]*route{}}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Handle 注册路由；同 method 下形状相同的模式重复注册直接 panic
func (r *Router) Handle(method, pattern string, h HandlerFunc) {
	method = strings.ToUpper(method)
	rt := &route{method: method, pattern: pattern, segs: parsePattern(pattern), h: h}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.routes[method] {
		if shape(ex.segs) == shape(rt.segs) {
			panic(fmt.Sprintf("ez: %s %s conflicts with %s", method, pattern, ex.pattern))
		}
	}
	rs := append(r.routes[method], rt)
	sort.SliceStable(rs, func(i, j int) bool { return moreSpecific(rs[i].segs, rs[j].segs) })
	r.routes[method] = rs
}

// Routes 按匹配顺序列出某个 method 的路由模式
func (r *Router) Routes(method string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.routes[strings.ToUpper(method)]))
	for _, rt := range r.routes[strings.ToUpper(method)] {
		out = append(out, rt.pattern)
	}
	return out
}

// Dispatch 每次调用最多执行一个处理函数。未命中时返回 ErrUnmatchedRoute，
// 同时给出一个可直接回写的 404 Result，由调用方决定是否当作致命错误。
func (r *Router) Dispatch(ctx context.Context, call *Call) (Result, error) {
	rt, params := r.match(call.Method, call.Path)
	if rt == nil {
		return Unmatched(call.Method, call.Path)
	}
	if d := r.latency.pick(); d > 0 {
		t := time.NewTimer(d)
		select {
		case <-ctx.Done():
			t.Stop()
			return Result{Status: resp.CodeTimeout, Body: resp.ErrorCode(resp.CodeTimeout, ""), Route: rt.pattern}, ctx.Err()
		case <-t.C:
		}
	}
	call.Params = params
	if call.Query == nil {
		call.Query = url.Values{}
	}
	res := rt.h(ctx, call)
	if res.Status == 0 {
		res.Status = resp.CodeOK
	}
	res.Route = rt.pattern
	return res, nil
}

// Unmatched 未命中路由时的标准结果
func Unmatched(method, path string) (Result, error) {
	msg := fmt.Sprintf("no route for %s %s", strings.ToUpper(method), path)
	return Result{Status: resp.CodeNotFound, Body: resp.Error(msg)},
		fmt.Errorf("%w: %s %s", ErrUnmatchedRoute, strings.ToUpper(method), path)
}

func (r *Router) match(method, path string) (*route, Params) {
	parts := splitPath(path)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rt := range r.routes[strings.ToUpper(method)] {
		if p, ok := matchSegs(rt.segs, parts); ok {
			return rt, p
		}
	}
	return nil, nil
}

func matchSegs(segs []segment, parts []string) (Params, bool) {
	if len(segs) != len(parts) {
		return nil, false
	}
	var p Params
	for i, s := range segs {
		if !s.isParam() {
			if s.lit != parts[i] {
				return nil, false
			}
			continue
		}
		if parts[i] == "" {
			return nil, false
		}
		if p == nil {
			p = Params{}
		}
		p[s.param] = parts[i]
	}
	return p, true
}

// moreSpecific 逐段比较：字面量 < 参数；前缀相同时短的在前。
// 只有段数相同的路由才可能同时命中，长度规则只为保证排序是全序。
func moreSpecific(a, b []segment) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].isParam() != b[i].isParam() {
			return !a[i].isParam()
		}
	}
	return len(a) < len(b)
}

func parsePattern(pattern string) []segment {
	parts := splitPath(pattern)
	segs := make([]segment, len(parts))
	for i, p := range parts {
		if strings.HasPrefix(p, ":") && len(p) > 1 {
			segs[i] = segment{param: p[1:]}
		} else {
			segs[i] = segment{lit: p}
		}
	}
	return segs
}

// shape 参数名不参与比较：/orders/:id 与 /orders/:orderId 视为同一路由
func shape(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		if s.isParam() {
			b.WriteByte(':')
		} else {
			b.WriteString(s.lit)
		}
	}
	return b.String()
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
