package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"navigation-service/internal/platform/obs"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	maxAttempts  = 4
	maxErrorBody = 4 << 10
)

// apiError is a non-2xx answer from ORS.
type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("ors status %d: %s", e.Status, e.Body)
}

// Throttling and gateway failures clear up on their own.
func (e *apiError) transient() bool {
	switch e.Status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// callJSON sends one ORS request and decodes the JSON answer into out.
// in, when non-nil, is sent as the JSON body. Transient failures are
// retried with exponential backoff until maxAttempts or ctx ends.
func (o *ORSDistanceProvider) callJSON(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	in any,
	out any,
) error {
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		payload = b
	}

	delay := o.backoff
	for attempt := 1; ; attempt++ {
		err := o.roundTrip(ctx, method, o.baseURL+path, query, payload, out)
		if err == nil {
			return nil
		}
		if attempt == maxAttempts || !transient(err) {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}

		obs.L().Debug("ors retry",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%s %s: %w", method, path, ctx.Err())
		case <-timer.C:
		}
		delay *= 2
	}
}

func (o *ORSDistanceProvider) roundTrip(
	ctx context.Context,
	method string,
	endpoint string,
	query url.Values,
	payload []byte,
	out any,
) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Authorization", o.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := o.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &apiError{Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// transient reports whether a failed call is worth repeating.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var ae *apiError
	if errors.As(err, &ae) {
		return ae.transient()
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
