package main

import (
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe(t *testing.T) {
	t.Run("returns when the listener fails", func(t *testing.T) {
		srv := &http.Server{Addr: "127.0.0.1:-1", ReadHeaderTimeout: time.Second}
		quit := make(chan os.Signal)

		done := make(chan error, 1)
		go func() { done <- serve(srv, quit) }()

		select {
		case err := <-done:
			require.Error(t, err)
			assert.Contains(t, err.Error(), "listen on 127.0.0.1:-1")
		case <-time.After(5 * time.Second):
			t.Fatal("serve kept waiting for a signal after the listener failed")
		}
	})

	t.Run("returns cleanly on a signal", func(t *testing.T) {
		srv := &http.Server{Addr: "127.0.0.1:0", ReadHeaderTimeout: time.Second}
		t.Cleanup(func() { _ = srv.Close() })
		quit := make(chan os.Signal, 1)
		quit <- syscall.SIGTERM

		assert.NoError(t, serve(srv, quit))
	})
}
