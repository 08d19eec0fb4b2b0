package ez

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resp "go-gin-mock-backend/internal/transport/http/response"
)

func named(name string, hit *string) HandlerFunc {
	return func(_ context.Context, call *Call) Result {
		*hit = name
		if id, ok := call.Params["id"]; ok {
			*hit = name + ":" + id
		}
		return Result{Body: name}
	}
}

func TestRouter_LiteralOutranksParam(t *testing.T) {
	for _, literalFirst := range []bool{true, false} {
		name := "param registered first"
		if literalFirst {
			name = "literal registered first"
		}
		t.Run(name, func(t *testing.T) {
			var hit string
			r := NewRouter()
			if literalFirst {
				r.Handle(http.MethodGet, "/products/search", named("search", &hit))
				r.Handle(http.MethodGet, "/products/:id", named("get", &hit))
			} else {
				r.Handle(http.MethodGet, "/products/:id", named("get", &hit))
				r.Handle(http.MethodGet, "/products/search", named("search", &hit))
			}

			res, err := r.Dispatch(context.Background(), &Call{Method: http.MethodGet, Path: "/products/search"})
			require.NoError(t, err)
			assert.Equal(t, "search", hit)
			assert.Equal(t, "/products/search", res.Route)

			res, err = r.Dispatch(context.Background(), &Call{Method: http.MethodGet, Path: "/products/42"})
			require.NoError(t, err)
			assert.Equal(t, "get:42", hit)
			assert.Equal(t, "/products/:id", res.Route)

			assert.Equal(t, []string{"/products/search", "/products/:id"}, r.Routes(http.MethodGet))
		})
	}
}

func TestRouter_EarliestLiteralSegmentWins(t *testing.T) {
	var hit string
	r := NewRouter()
	r.Handle(http.MethodGet, "/a/:x/c", named("x", &hit))
	r.Handle(http.MethodGet, "/a/b/:id", named("b", &hit))

	_, err := r.Dispatch(context.Background(), &Call{Method: http.MethodGet, Path: "/a/b/c"})
	require.NoError(t, err)
	assert.Equal(t, "b:c", hit)

	_, err = r.Dispatch(context.Background(), &Call{Method: http.MethodGet, Path: "/a/z/c"})
	require.NoError(t, err)
	assert.Equal(t, "x", hit)
}

func TestRouter_Unmatched(t *testing.T) {
	var hit string
	r := NewRouter()
	r.Handle(http.MethodGet, "/products/search", named("search", &hit))

	cases := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/nope"},
		{"wrong method", http.MethodPost, "/products/search"},
		{"extra segment", http.MethodGet, "/products/search/1"},
		{"root", http.MethodGet, "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := r.Dispatch(context.Background(), &Call{Method: tc.method, Path: tc.path})
			require.ErrorIs(t, err, ErrUnmatchedRoute)
			assert.Equal(t, http.StatusNotFound, res.Status)
			assert.Equal(t, resp.Error("no route for "+tc.method+" "+tc.path), res.Body)
			assert.Empty(t, hit)
		})
	}
}

func TestRouter_DispatchInvokesOnce(t *testing.T) {
	calls := 0
	r := NewRouter()
	r.Handle(http.MethodGet, "/users/:id", func(_ context.Context, _ *Call) Result {
		calls++
		return Result{}
	})

	res, err := r.Dispatch(context.Background(), &Call{Method: "get", Path: "/users/1/"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusOK, res.Status, "zero status defaults to 200")
}

func TestRouter_DuplicateShapePanics(t *testing.T) {
	r := NewRouter()
	r.Handle(http.MethodGet, "/orders/:id", func(context.Context, *Call) Result { return Result{} })
	assert.Panics(t, func() {
		r.Handle(http.MethodGet, "/orders/:orderId", func(context.Context, *Call) Result { return Result{} })
	})
	assert.NotPanics(t, func() {
		r.Handle(http.MethodPut, "/orders/:id", func(context.Context, *Call) Result { return Result{} })
	})
}

func TestRouter_LatencyHonorsContext(t *testing.T) {
	called := false
	r := NewRouter(WithLatency(Latency{Min: time.Hour, Max: time.Hour}))
	r.Handle(http.MethodGet, "/slow", func(context.Context, *Call) Result {
		called = true
		return Result{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := r.Dispatch(ctx, &Call{Method: http.MethodGet, Path: "/slow"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, http.StatusGatewayTimeout, res.Status)
	assert.False(t, called)
}

func TestLatency_Pick(t *testing.T) {
	assert.Zero(t, Latency{}.pick())
	assert.Equal(t, 5*time.Millisecond, Latency{Min: 5 * time.Millisecond}.pick())
	for i := 0; i < 50; i++ {
		d := Latency{Min: time.Millisecond, Max: 3 * time.Millisecond}.pick()
		assert.GreaterOrEqual(t, d, time.Millisecond)
		assert.LessOrEqual(t, d, 3*time.Millisecond)
	}
}

func TestParams_Int(t *testing.T) {
	p := Params{"id": "12", "bad": "x"}

	n, err := p.Int("id")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = p.Int("bad")
	assert.EqualError(t, err, `invalid bad "x"`)

	_, err = p.Int("missing")
	assert.Error(t, err)
}
