package gate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindarena/internal/store"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProbeStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantOpen bool
	}{
		{"ok opens", http.StatusOK, true},
		{"created stays closed", http.StatusCreated, false},
		{"no content stays closed", http.StatusNoContent, false},
		{"redirect target 404", http.StatusNotFound, false},
		{"server error", http.StatusInternalServerError, false},
		{"forbidden", http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			d := NewProber(server.URL, quiet()).Probe(context.Background())
			require.NoError(t, d.Err)
			assert.Equal(t, tt.wantOpen, d.Open)
			assert.Equal(t, tt.status, d.StatusCode)
			assert.Equal(t, int32(1), hits.Load(), "probe must not retry")
		})
	}
}

func TestProbeTransportErrorCloses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	d := NewProber(addr, quiet()).Probe(context.Background())
	assert.Error(t, d.Err)
	assert.False(t, d.Open)
}

func TestProbeTLSFailureCloses(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// The default client does not trust the test certificate.
	d := NewProber(server.URL, WithHTTPClient(&http.Client{}), quiet()).Probe(context.Background())
	assert.Error(t, d.Err)
	assert.False(t, d.Open)

	d = NewProber(server.URL, WithHTTPClient(server.Client()), quiet()).Probe(context.Background())
	require.NoError(t, d.Err)
	assert.True(t, d.Open)
}

func TestProbeTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	d := NewProber(server.URL, WithTimeout(50*time.Millisecond), quiet()).Probe(context.Background())
	assert.Error(t, d.Err)
	assert.False(t, d.Open)
	assert.Less(t, d.Elapsed, 2*time.Second)
}

func TestProbeBadURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "://missing-scheme", "/relative/path"} {
		d := NewProber(raw, quiet()).Probe(context.Background())
		assert.Error(t, d.Err, raw)
		assert.False(t, d.Open, raw)
	}

	d := NewProber("", quiet()).Probe(context.Background())
	assert.True(t, errors.Is(d.Err, ErrNoURL))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, ModeWebFallback, Resolve(Decision{Open: true}, false))
	assert.Equal(t, ModeWebFallback, Resolve(Decision{Open: true}, true))
	assert.Equal(t, ModeNativeHub, Resolve(Decision{StatusCode: 500}, true))
	assert.Equal(t, ModeNativeOnboarding, Resolve(Decision{Err: errors.New("x")}, false))
}

func TestFlagsRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemKV()

	f, err := LoadFlags(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, Flags{IsBlock: true, IsRequested: false}, f)

	require.NoError(t, SaveFlags(ctx, kv, FlagsFor(Decision{Open: true, StatusCode: 200})))
	f, err = LoadFlags(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, Flags{IsBlock: false, IsRequested: true}, f)

	require.NoError(t, SaveFlags(ctx, kv, FlagsFor(Decision{Err: errors.New("tls")})))
	f, err = LoadFlags(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, Flags{IsBlock: true, IsRequested: true}, f)
}
