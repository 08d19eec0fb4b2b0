package ez

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Transport 进程内的 http.RoundTripper：*http.Client 直接调用 Router，不开端口。
//
//	client := &http.Client{Transport: &ez.Transport{Router: r}}
//	res, err := client.Get("http://mock/products/search?q=laptop")
type Transport struct {
	Router *Router
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		body = b
	}

	res, err := t.Router.Dispatch(req.Context(), &Call{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.Query(),
		Header: req.Header,
		Body:   body,
	})
	if err != nil && !errors.Is(err, ErrUnmatchedRoute) {
		return nil, err
	}

	b, err := json.Marshal(res.Body)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	h := http.Header{}
	h.Set("Content-Type", "application/json; charset=utf-8")
	if res.Route != "" {
		h.Set("X-Mock-Route", res.Route)
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", res.Status, http.StatusText(res.Status)),
		StatusCode:    res.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        h,
		Body:          io.NopCloser(bytes.NewReader(b)),
		ContentLength: int64(len(b)),
		Request:       req,
	}, nil
}
