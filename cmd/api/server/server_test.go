package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	ginhandler "user-api/internal/adapter/gin/handler"
	"user-api/internal/adapter/repository/memory"
	"user-api/internal/config"
	"user-api/internal/usecase/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	l := zaptest.NewLogger(t)
	cfg := &config.Config{
		App:    config.AppConfig{Port: "8000", ShutdownTimeoutSeconds: 1},
		Logger: config.LoggerConfig{ServiceName: "user-api"},
	}
	h := ginhandler.NewUserHandler(user.New(memory.NewUserRepository(l), l), l)
	srv := New(cfg, l, h)

	assert.Equal(t, ":8000", srv.HTTP.Addr)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(lis) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy","service":"user-api"}`, string(body))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err, "clean shutdown must not be reported as an error")
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestWithSignal_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := WithSignal(parent)
	defer stop()

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled with parent")
	}
}
