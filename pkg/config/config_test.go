package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessDefaults(t *testing.T) {
	c, err := Process()
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "0.0.0.0:8000", c.Web.Addr)
	assert.Equal(t, "https://api.smtp.dev", c.Upstream.BaseURL)
	assert.Equal(t, 20*time.Second, c.Upstream.Timeout)
	assert.Equal(t, 3, c.Upstream.MaxRetries)
	assert.Equal(t, 3*time.Second, c.Upstream.RetryDelay)
}

func TestProcessOverrides(t *testing.T) {
	t.Setenv("INBOXPROXY_WEB_ADDR", "127.0.0.1:9999")
	t.Setenv("INBOXPROXY_UPSTREAM_APIKEY", "secret")
	t.Setenv("INBOXPROXY_UPSTREAM_DOMAIN", "example.com")
	t.Setenv("INBOXPROXY_UPSTREAM_RETRYDELAY", "500ms")

	c, err := Process()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", c.Web.Addr)
	assert.Equal(t, "secret", c.Upstream.APIKey)
	assert.Equal(t, "example.com", c.Upstream.Domain)
	assert.Equal(t, 500*time.Millisecond, c.Upstream.RetryDelay)
}

func TestAPIKeyNotRequired(t *testing.T) {
	// A missing key must not fail configuration; endpoints report the
	// problem per-request instead.
	c, err := Process()
	require.NoError(t, err)
	assert.Empty(t, c.Upstream.APIKey)
}
