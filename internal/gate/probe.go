// Package gate decides at launch whether the native game or the web
// fallback is shown, from a single HTTP probe.
package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds the probe.
const DefaultTimeout = 5 * time.Second

var ErrNoURL = errors.New("gate: no probe url configured")

// Decision is the outcome of one probe. Open selects the web fallback; any
// error or non-200 status leaves the gate closed.
type Decision struct {
	Open       bool
	StatusCode int
	Err        error
	Elapsed    time.Duration
}

// Prober issues the launch probe.
type Prober struct {
	url     string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithHTTPClient sets the client used for the probe.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Prober) { p.client = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prober) { p.logger = l }
}

// NewProber creates a prober for rawURL.
func NewProber(rawURL string, opts ...Option) *Prober {
	p := &Prober{
		url:     rawURL,
		timeout: DefaultTimeout,
		client:  http.DefaultClient,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// URL returns the probed address.
func (p *Prober) URL() string { return p.url }

// Probe issues one GET and classifies the response. It never retries.
func (p *Prober) Probe(ctx context.Context) Decision {
	start := time.Now()
	d := p.probe(ctx)
	d.Elapsed = time.Since(start)

	if d.Err != nil {
		p.logger.Info("gate probe failed, staying native", "url", p.url, "error", d.Err)
	} else {
		p.logger.Info("gate probe done", "url", p.url, "status", d.StatusCode, "open", d.Open, "elapsed", d.Elapsed)
	}
	return d
}

func (p *Prober) probe(ctx context.Context) Decision {
	if p.url == "" {
		return Decision{Err: ErrNoURL}
	}
	u, err := url.Parse(p.url)
	if err != nil || u.Scheme == "" || u.Host == "" {
		if err == nil {
			err = fmt.Errorf("not an absolute url: %q", p.url)
		}
		return Decision{Err: fmt.Errorf("parse probe url: %w", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Decision{Err: fmt.Errorf("build probe request: %w", err)}
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Decision{Err: fmt.Errorf("probe: %w", err)}
	}
	defer resp.Body.Close()

	return Decision{
		Open:       resp.StatusCode == http.StatusOK,
		StatusCode: resp.StatusCode,
	}
}
