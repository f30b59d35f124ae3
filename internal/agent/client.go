package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Endpoints holds the base URLs of the four collaborator services.
type Endpoints struct {
	Budget     string
	Flights    string
	Hotels     string
	Activities string
}

// HTTPOptions configures the HTTP source.
type HTTPOptions struct {
	Timeout    time.Duration
	MaxRetries int
	// RateLimit is requests per second shared across all collaborators;
	// scraping agents tend to sit behind the same gateway.
	RateLimit rate.Limit
	Burst     int
}

// HTTPSource implements Source over HTTP POST exchanges with retry and rate
// limiting.
type HTTPSource struct {
	client    *http.Client
	endpoints Endpoints
	limiter   *rate.Limiter
	retries   int
}

// NewHTTPSource creates an HTTPSource with the given endpoints and options.
func NewHTTPSource(endpoints Endpoints, opts HTTPOptions) *HTTPSource {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = 5
	}
	if opts.Burst == 0 {
		opts.Burst = 5
	}
	return &HTTPSource{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		endpoints: endpoints,
		limiter:   rate.NewLimiter(opts.RateLimit, opts.Burst),
		retries:   opts.MaxRetries,
	}
}

func (s *HTTPSource) Budget(ctx context.Context, req BudgetRequest) (json.RawMessage, error) {
	return s.exchange(ctx, AgentBudget, s.endpoints.Budget, req)
}

func (s *HTTPSource) Flights(ctx context.Context, req FlightsRequest) (json.RawMessage, error) {
	return s.exchange(ctx, AgentFlights, s.endpoints.Flights, req)
}

func (s *HTTPSource) Hotels(ctx context.Context, req HotelsRequest) (json.RawMessage, error) {
	return s.exchange(ctx, AgentHotels, s.endpoints.Hotels, req)
}

func (s *HTTPSource) Activities(ctx context.Context, req ActivitiesRequest) (json.RawMessage, error) {
	return s.exchange(ctx, AgentActivities, s.endpoints.Activities, req)
}

// exchange POSTs the request body and returns the response payload, retrying
// network failures, 429s, and 5xx responses with exponential backoff.
func (s *HTTPSource) exchange(ctx context.Context, agentName, url string, reqBody any) (json.RawMessage, error) {
	if url == "" {
		return nil, &UpstreamError{Agent: agentName, Err: eris.New("no endpoint configured")}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &UpstreamError{Agent: agentName, Err: eris.Wrap(err, "marshal request")}
	}

	var lastErr error
	for attempt := range s.retries {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &UpstreamError{Agent: agentName, Err: eris.Wrap(err, "rate limiter wait")}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, &UpstreamError{Agent: agentName, Err: eris.Wrap(err, "create request")}
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			zap.L().Warn("agent request failed, retrying",
				zap.String("agent", agentName),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			s.backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			lastErr = eris.Errorf("http %d from %s agent", resp.StatusCode, agentName)
			zap.L().Warn("agent returned retryable status",
				zap.String("agent", agentName),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1),
			)
			s.backoff(ctx, attempt)
			continue
		}

		payload, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = err
			s.backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return nil, &UpstreamError{Agent: agentName, Err: eris.Errorf("unexpected status %d", resp.StatusCode)}
		}
		return payload, nil
	}

	return nil, &UpstreamError{Agent: agentName, Err: eris.Wrap(lastErr, "all retries exhausted")}
}

func (s *HTTPSource) backoff(ctx context.Context, attempt int) {
	base := 500 * time.Millisecond
	maxBackoff := 10 * time.Second
	d := time.Duration(float64(base) * math.Pow(2, float64(attempt)))
	if d > maxBackoff {
		d = maxBackoff
	}
	d += time.Duration(rand.Int64N(int64(d) / 2))

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
