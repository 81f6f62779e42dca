package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const maxRetryAfter = 30 * time.Second

// doJSON: serializa in (si no es nil), maneja 404 y un reintento en 429 con Retry-After.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend encode: %w", err)
		}
		body = b
	}
	return c.do(ctx, method, path, body, out, true)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any, retry bool) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests && retry {
		if wait := retryAfter(res.Header.Get("Retry-After")); wait > 0 {
			_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4<<10))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
			return c.do(ctx, method, path, body, out, false)
		}
	}

	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("backend %s: %w", path, ErrNotFound)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Detail: detailOf(b), Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("backend decode %s: %w", path, err)
	}
	return nil
}

func retryAfter(v string) time.Duration {
	sec, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || sec <= 0 {
		return 0
	}
	d := time.Duration(sec) * time.Second
	if d > maxRetryAfter {
		d = maxRetryAfter
	}
	return d
}

// detailOf: {"detail": "..."}; otros formatos (p.ej. lista de validación) => "".
func detailOf(b []byte) string {
	var e struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(b, &e) != nil || len(e.Detail) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(e.Detail, &s) != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
