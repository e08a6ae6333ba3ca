package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Per-call timeouts. Primary calls get the default; the staging pool and
// per-transaction detail fetches are secondary; the pool-size peek during a
// wallet view is opportunistic and must not hold the request up.
const (
	DefaultTimeout  = 10 * time.Second
	StagingTimeout  = 5 * time.Second
	DetailTimeout   = 5 * time.Second
	PoolPeekTimeout = 2 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is the uniform outcome of one ledger call. Status 0 marks a
// transport failure: Text is "timeout" on a timeout, the error description
// otherwise. JSON is nil whenever the body is not a structured object, so
// callers must be prepared to work from Text alone (the ledger sometimes
// replies with a bare human-readable line).
type Result struct {
	Status int
	Text   string
	JSON   map[string]interface{}
}

// Structured reports whether the response body parsed as a JSON object
func (r Result) Structured() bool {
	return r.JSON != nil
}

// JSONString returns the parsed object re-serialized, or "" if unstructured
func (r Result) JSONString() string {
	if r.JSON == nil {
		return ""
	}
	s, err := json.MarshalToString(r.JSON)
	if err != nil {
		return ""
	}
	return s
}

// LedgerClient issues HTTP calls against the Octra ledger RPC
type LedgerClient struct {
	baseURL string
	client  *http.Client
}

// NewLedgerClient creates a new ledger client for the given RPC base URL
func NewLedgerClient(baseURL string) *LedgerClient {
	return &LedgerClient{
		baseURL: baseURL,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
			// per-call deadlines come from the request context
		},
	}
}

// Call issues one HTTP call and normalizes the outcome into a Result.
// body, when non-nil, is marshaled as the JSON request body. A non-positive
// timeout falls back to DefaultTimeout.
func (c *LedgerClient) Call(ctx context.Context, method, path string, body interface{}, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Result{Status: 0, Text: err.Error()}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return Result{Status: 0, Text: err.Error()}
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Result{Status: 0, Text: "timeout"}
		}
		return Result{Status: 0, Text: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return Result{Status: 0, Text: "timeout"}
		}
		return Result{Status: 0, Text: err.Error()}
	}

	res := Result{Status: resp.StatusCode, Text: string(data)}
	if len(data) > 0 {
		var parsed map[string]interface{}
		if json.Unmarshal(data, &parsed) == nil {
			res.JSON = parsed
		}
	}
	return res
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
