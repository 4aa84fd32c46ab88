package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cerberus/internal/backend"
)

func TestAcquire_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token": "tok-abc"}`))
	}))
	defer srv.Close()

	sess := New(backend.New(srv.URL, 5*time.Second), "demo", "demo")
	sess.Acquire(context.Background())

	assert.True(t, sess.Authenticated())
	assert.Equal(t, "tok-abc", sess.Token())
}

func TestAcquire_FailureDegradesToUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sess := New(backend.New(srv.URL, 5*time.Second), "demo", "demo")
	sess.Acquire(context.Background())

	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token())
}

func TestAcquire_UnreachableBackend(t *testing.T) {
	sess := New(backend.New("http://127.0.0.1:1", time.Second), "demo", "demo")
	sess.Acquire(context.Background())

	assert.False(t, sess.Authenticated())
}
