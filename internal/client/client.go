// README: HTTP client for the planner API; classifies every call into one Outcome.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"travelplanner/internal/planner"
)

// DefaultTimeout bounds one submission end to end.
const DefaultTimeout = 120 * time.Second

const generatePath = "/generate-travel-plan"

type OutcomeKind string

const (
	OutcomeSuccess     OutcomeKind = "success"
	OutcomeHTTPError   OutcomeKind = "http_error"
	OutcomeUnreachable OutcomeKind = "unreachable"
	OutcomeTimeout     OutcomeKind = "timeout"
	OutcomeFailed      OutcomeKind = "failed"
)

// Outcome is the result of one submission.
type Outcome struct {
	Kind       OutcomeKind
	Plan       *planner.TravelPlan
	StatusCode int
	Body       string
	Err        error
}

// Client posts travel requests to the planner API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for baseURL. A non-positive timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Submit sends exactly one request. It never retries.
func (c *Client) Submit(ctx context.Context, req planner.TravelRequest) Outcome {
	body, err := json.Marshal(req)
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Err: fmt.Errorf("build request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Outcome{Kind: classify(err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Kind: classify(err), Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return Outcome{Kind: OutcomeHTTPError, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var plan planner.TravelPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return Outcome{Kind: OutcomeFailed, StatusCode: resp.StatusCode, Body: string(raw), Err: fmt.Errorf("decode response: %w", err)}
	}
	return Outcome{Kind: OutcomeSuccess, Plan: &plan, StatusCode: resp.StatusCode, Body: string(raw)}
}

// classify maps a transport error to the timeout, unreachable or failed outcome.
func classify(err error) OutcomeKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return OutcomeTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return OutcomeTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return OutcomeUnreachable
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return OutcomeUnreachable
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return OutcomeUnreachable
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && errors.Is(urlErr.Err, io.EOF) {
		return OutcomeUnreachable
	}
	return OutcomeFailed
}
