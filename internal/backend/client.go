package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/wastesmart-storefront/pkg/logger"
)

const maxBodyBytes = 10 << 20

var tracer = otel.Tracer("backend-client")

// errServerStatus marks a 5xx so the breaker counts it as a failure; the
// response itself is still decoded into a StatusError
var errServerStatus = errors.New("backend server error")

// Config describes how to reach the backend API
type Config struct {
	BaseURLs []string
	Timeout  time.Duration
	// Consecutive failures before the breaker opens
	FailureThreshold uint32
	// How long the breaker stays open before letting a probe through
	OpenTimeout time.Duration
}

// Client calls the WasteSmart backend REST API. Calls are never retried and
// are cancelled with the caller's context.
type Client struct {
	http     *http.Client
	balancer *RoundRobin
	breaker  *gobreaker.CircuitBreaker[*http.Response]
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "backend",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Backend circuit breaker state changed")
		},
	})

	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		balancer: NewRoundRobin(cfg.BaseURLs),
		breaker:  breaker,
	}
}

// BaseURLs lists the configured backends
func (c *Client) BaseURLs() []string {
	return c.balancer.Servers()
}

type request struct {
	op          string
	method      string
	path        string
	body        []byte
	contentType string
}

type bearerKey struct{}

// WithBearer makes calls made with the returned context carry token as an
// Authorization bearer
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

func jsonRequest(op, method, path string, payload interface{}) (request, error) {
	req := request{op: op, method: method, path: path}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return req, fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		req.body = data
		req.contentType = "application/json"
	}
	return req, nil
}

func formRequest(op, path string, values url.Values) request {
	return request{
		op:          op,
		method:      http.MethodPost,
		path:        path,
		body:        []byte(values.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}
}

// call performs req and decodes a 2xx body into out. out may be nil when the
// response body is not needed.
func (c *Client) call(ctx context.Context, req request, out interface{}) error {
	ctx, span := tracer.Start(ctx, "backend."+req.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.method),
			attribute.String("backend.path", req.path),
		),
	)
	defer span.End()

	err := c.roundTrip(ctx, req, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx).
			Err(err).
			Str("op", req.op).
			Str("path", req.path).
			Msg("Backend call failed")
		return wrap(req.op, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, req request, out interface{}) error {
	base := c.balancer.Next()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		var body io.Reader
		if req.body != nil {
			body = bytes.NewReader(req.body)
		}
		httpReq, err := http.NewRequestWithContext(ctx, req.method, base+req.path, body)
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Accept", "application/json")
		if req.contentType != "" {
			httpReq.Header.Set("Content-Type", req.contentType)
		}
		if token, _ := ctx.Value(bearerKey{}).(string); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.http.Do(httpReq)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerStatus
		}
		return resp, nil
	})
	if err != nil && !errors.Is(err, errServerStatus) {
		if resp != nil {
			resp.Body.Close()
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Detail: detailMessage(data)}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedBody)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}

// Ping checks that a backend answers at all
func (c *Client) Ping(ctx context.Context) error {
	var products json.RawMessage
	req, _ := jsonRequest("Ping", http.MethodGet, "/products/", nil)
	return c.call(ctx, req, &products)
}

func missing(what string, fields ...string) error {
	return fmt.Errorf("%w: %s lacks %v", ErrMissingFields, what, fields)
}
