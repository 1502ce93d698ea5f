package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestDo_AttachesBearerCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok-123"))
	var out map[string]any
	assert.NoError(t, c.Get(context.Background(), "/x", nil, &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestDo_NoHeaderWhenTokenCleared(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""))
	assert.NoError(t, c.Get(context.Background(), "/x", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestDo_PreservesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"room already occupied"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t"))
	err := c.Get(context.Background(), "/rooms/7", nil, nil)

	apiErr, ok := err.(*APIError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Equal(t, "room already occupied", apiErr.Message)
	}
}

func TestDo_FallsBackToStatusWhenBodyUnstructured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("gateway exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t"))
	err := c.Get(context.Background(), "/x", nil, nil)

	apiErr, ok := err.(*APIError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "502")
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: 404}))
	assert.False(t, IsNotFound(&APIError{StatusCode: 500}))
	assert.False(t, IsNotFound(context.Canceled))
}
