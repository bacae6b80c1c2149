package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/aussiebroadwan/campus/internal/campus/metrics"
)

// DefaultEndpoint is the Perspective comments:analyze URL without the key.
const DefaultEndpoint = "https://commentanalyzer.googleapis.com/v1alpha1/comments:analyze"

const (
	breakerName     = "perspective-api"
	maxResponseSize = 1 << 20
)

// Config configures a PerspectiveClient. Zero values fall back to defaults.
type Config struct {
	APIKey    string
	Endpoint  string
	Threshold float64

	// QPS and Burst bound outbound calls. Calls over quota fail open.
	QPS   float64
	Burst int

	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// PerspectiveClient scores text with Google's Perspective API (TOXICITY).
type PerspectiveClient struct {
	apiKey    string
	endpoint  string
	threshold float64

	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[float64]
	logger  *slog.Logger
}

// NewPerspectiveClient builds a client from cfg.
func NewPerspectiveClient(cfg Config) *PerspectiveClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.QPS <= 0 {
		cfg.QPS = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = max(1, int(cfg.QPS))
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	c := &PerspectiveClient{
		apiKey:    cfg.APIKey,
		endpoint:  cfg.Endpoint,
		threshold: cfg.Threshold,
		http:      cfg.HTTPClient,
		limiter:   rate.NewLimiter(rate.Limit(cfg.QPS), cfg.Burst),
		logger:    cfg.Logger.With("component", "moderation"),
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	c.cb = gobreaker.NewCircuitBreaker[float64](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A caller giving up is not the upstream's fault
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return c
}

// Threshold reports the score at which text is rejected.
func (c *PerspectiveClient) Threshold() float64 { return c.threshold }

// State reports the circuit breaker state ("closed", "half-open" or "open").
func (c *PerspectiveClient) State() string { return c.cb.State().String() }

// Check scores text. It never blocks on the quota limiter.
func (c *PerspectiveClient) Check(ctx context.Context, text string) Result {
	if c.apiKey == "" {
		metrics.RecordModeration("skipped", 0)
		return Result{Err: ErrNotConfigured}
	}

	if !c.limiter.Allow() {
		metrics.RecordModeration("throttled", 0)
		c.logger.Warn("toxicity check skipped, local quota exceeded")
		return Result{Err: ErrThrottled}
	}

	start := time.Now()
	score, err := c.cb.Execute(func() (float64, error) {
		return c.analyze(ctx, text)
	})
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordModeration("open_circuit", 0)
			err = fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		} else {
			metrics.RecordModeration("error", elapsed)
		}
		c.logger.Warn("toxicity check failed, allowing content", "error", err)
		return Result{Err: err}
	}

	toxic := score >= c.threshold
	if toxic {
		metrics.RecordModeration("toxic", elapsed)
	} else {
		metrics.RecordModeration("clean", elapsed)
	}
	return Result{IsToxic: toxic, Score: score}
}

type analyzeRequest struct {
	Comment             analyzeComment      `json:"comment"`
	RequestedAttributes map[string]struct{} `json:"requestedAttributes"`
	Languages           []string            `json:"languages"`
}

type analyzeComment struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	AttributeScores map[string]struct {
		SummaryScore struct {
			Value *float64 `json:"value"`
		} `json:"summaryScore"`
	} `json:"attributeScores"`
}

func (c *PerspectiveClient) analyze(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(analyzeRequest{
		Comment:             analyzeComment{Text: text},
		RequestedAttributes: map[string]struct{}{"TOXICITY": {}},
		Languages:           []string{"en"},
	})
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(), bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return 0, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var out analyzeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return 0, fmt.Errorf("%w: decode response: %w", ErrUpstream, err)
	}

	tox, ok := out.AttributeScores["TOXICITY"]
	if !ok || tox.SummaryScore.Value == nil {
		return 0, fmt.Errorf("%w: response missing TOXICITY score", ErrUpstream)
	}
	return *tox.SummaryScore.Value, nil
}

func (c *PerspectiveClient) requestURL() string {
	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + "key=" + url.QueryEscape(c.apiKey)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
