package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRemote_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "get", r.URL.Query().Get("action"))
		assert.Equal(t, "pres-2024-03", r.URL.Query().Get("key"))
		// The stored value travels double-encoded: a JSON string holding JSON.
		_ = json.NewEncoder(w).Encode(map[string]any{"value": `{"workers":[],"days":[]}`})
	}))
	defer srv.Close()

	r := NewHTTPRemote(srv.URL, 5*time.Second)
	v, found, err := r.Get(context.Background(), "pres-2024-03")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"workers":[],"days":[]}`, v)
}

func TestHTTPRemote_GetNullValueIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"value": null}`))
	}))
	defer srv.Close()

	r := NewHTTPRemote(srv.URL, 5*time.Second)
	_, found, err := r.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHTTPRemote_GetNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := NewHTTPRemote(srv.URL, 5*time.Second)
	_, _, err := r.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestHTTPRemote_Set(t *testing.T) {
	var got setRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	r := NewHTTPRemote(srv.URL, 5*time.Second)
	require.NoError(t, r.Set(context.Background(), "uiPrefs", `{"isDark":true,"uiScale":2}`))

	assert.Equal(t, "set", got.Action)
	assert.Equal(t, "uiPrefs", got.Key)
	assert.JSONEq(t, `{"isDark":true,"uiScale":2}`, got.Value)
}

func TestHTTPRemote_SetErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewHTTPRemote(srv.URL, 5*time.Second)
	assert.Error(t, r.Set(context.Background(), "k", "v"))
}
