package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clashview/internal/model"
)

func TestNewRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "127.0.0.1:9090"} {
		_, err := New(raw, "")
		assert.ErrorIs(t, err, ErrBadConfig, "url %q", raw)
	}
}

func TestProxies(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/proxies", r.URL.Path)
		w.Write([]byte(`{"proxies": {
			"GLOBAL": {"type": "Selector", "all": ["auto"], "now": "auto"},
			"auto": {"type": "Vmess", "udp": true, "history": [{"delay": 90}]}
		}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "s3cret")
	require.NoError(t, err)

	proxies, err := c.Proxies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer s3cret", gotAuth)
	require.Len(t, proxies, 2)
	assert.Equal(t, model.TypeSelector, proxies["GLOBAL"].Type)
	assert.True(t, proxies["auto"].UDP)
}

func TestBaseURLPathPrefixIsKept(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/clash/version", r.URL.Path)
		w.Write([]byte(`{"version": "1.18.0"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/clash", "")
	require.NoError(t, err)

	_, err = c.Version(context.Background())
	require.NoError(t, err)
}

func TestNoAuthHeaderWithoutSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"version": "1.18.0"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "")
	require.NoError(t, err)

	v, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.18.0", v.Version)
}

func TestFailedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "wrong")
	require.NoError(t, err)

	_, err = c.Proxies(context.Background())
	assert.ErrorIs(t, err, ErrFailedResponse)
}

func TestBadResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"proxies": [not json`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "")
	require.NoError(t, err)

	_, err = c.Proxies(context.Background())
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestRequestRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := New(srv.URL, "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Proxies(ctx)
	assert.Error(t, err)
}
