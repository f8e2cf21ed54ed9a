package shorten

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShorten(t *testing.T) {
	t.Run("returns trimmed response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "simple", r.URL.Query().Get("format"))
			assert.Equal(t, "https://example.com/very/long/path", r.URL.Query().Get("url"))
			_, _ = w.Write([]byte("https://v.gd/abc12\n"))
		}))
		defer srv.Close()

		c := New(srv.URL, time.Second)
		defer c.Close()

		short, err := c.Shorten(context.Background(), "https://example.com/very/long/path")
		require.NoError(t, err)
		assert.Equal(t, "https://v.gd/abc12", short)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusBadGateway)
		}))
		defer srv.Close()

		c := New(srv.URL, time.Second)
		defer c.Close()

		_, err := c.Shorten(context.Background(), "https://example.com")
		assert.ErrorContains(t, err, "status 502")
	})

	t.Run("empty body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("  \n"))
		}))
		defer srv.Close()

		c := New(srv.URL, time.Second)
		defer c.Close()

		_, err := c.Shorten(context.Background(), "https://example.com")
		assert.ErrorContains(t, err, "empty response")
	})

	t.Run("unreachable service is an error", func(t *testing.T) {
		c := New("http://127.0.0.1:1", 200*time.Millisecond)
		defer c.Close()

		_, err := c.Shorten(context.Background(), "https://example.com")
		assert.Error(t, err)
	})

	t.Run("defaults fill endpoint and timeout", func(t *testing.T) {
		c := New("", 0)
		defer c.Close()
		assert.Equal(t, DefaultEndpoint, c.endpoint)
	})
}
