package backend

import (
	"net/http"
	"time"
)

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout pisa el timeout del http.Client actual (default o inyectado).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			return
		}
		h := *c.http
		h.Timeout = d
		c.http = &h
	}
}
