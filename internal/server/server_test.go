package server

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pii-keeper/internal/config"
	"github.com/MKhiriev/go-pii-keeper/internal/handler"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/service"
)

type countingJob struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (j *countingJob) Run(ctx context.Context) {
	j.started.Add(1)
	<-ctx.Done()
	j.stopped.Add(1)
}

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, testServerConfig(), logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)

	_, err = NewServer(&handler.Handlers{}, testServerConfig(), logger.Nop())
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestRunServer_StopsJobsOnCancel(t *testing.T) {
	cfg := testServerConfig()
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	job := &countingJob{}
	srv, err := NewServer(handlers, cfg, logger.Nop(), job)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool { return job.started.Load() == 1 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, int32(1), job.stopped.Load())
}

func TestRunServer_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testServerConfig()
	cfg.HTTPAddress = ln.Addr().String()
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	job := &countingJob{}
	srv, err := NewServer(handlers, cfg, logger.Nop(), job)
	require.NoError(t, err)

	err = srv.RunServer(context.Background())

	assert.Error(t, err)
	assert.Equal(t, job.started.Load(), job.stopped.Load())
}
