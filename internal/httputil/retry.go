// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the fetch stage.
package httputil

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay is the base delay for exponential backoff. Tests
// override it to keep runs fast.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 4

// DoWithRetry issues the request and retries on 429 and 503 responses
// with exponential backoff. A numeric Retry-After header overrides the
// computed delay. The last response is returned if retries are
// exhausted.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= defaultMaxRetries; attempt++ {
		resp, err = client.Do(req.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("sending request: %w", err)
		}
		if !retryable(resp.StatusCode) {
			return resp, nil
		}
		if attempt == defaultMaxRetries {
			return resp, nil
		}

		delay := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		if after, ok := retryAfter(resp); ok {
			delay = after
		}

		// Drain so the connection can be reused for the retry.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return resp, nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

func retryAfter(resp *http.Response) (time.Duration, bool) {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0, false
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}
