package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		WindowSize:    time.Minute,
		MaxRequests:   3,
		CleanupPeriod: time.Hour,
	}
}

func TestAllowWithinLimit(t *testing.T) {
	limiter := NewMemoryRateLimiter(testConfig())
	defer limiter.Close()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("1.2.3.4")
		assert.True(t, allowed)
		assert.Equal(t, 2-i, info.Remaining)
	}
}

func TestBlockOverLimit(t *testing.T) {
	limiter := NewMemoryRateLimiter(testConfig())
	defer limiter.Close()

	for i := 0; i < 3; i++ {
		limiter.Allow("1.2.3.4")
	}

	allowed, info := limiter.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Zero(t, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestIdentifiersAreIndependent(t *testing.T) {
	limiter := NewMemoryRateLimiter(testConfig())
	defer limiter.Close()

	for i := 0; i < 4; i++ {
		limiter.Allow("1.2.3.4")
	}

	allowed, _ := limiter.Allow("5.6.7.8")
	assert.True(t, allowed)
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	assert.Equal(t, "203.0.113.7", GetClientIP(r))
}

func TestGetClientIPFallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"

	assert.Equal(t, "10.0.0.1", GetClientIP(r))
}
