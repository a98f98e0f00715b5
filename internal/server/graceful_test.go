package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestRun_ShutdownRunsHooks(t *testing.T) {
	// signal.NotifyContext deja vivo el loop de os/signal
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent(), goleak.IgnoreAnyFunction("os/signal.loop"))

	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	ctx, cancel := context.WithCancel(context.Background())

	var calls []string
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, srv, zap.NewNop(), time.Second,
			func(context.Context) error { calls = append(calls, "publisher"); return nil },
			nil,
			func(context.Context) error { calls = append(calls, "store"); return errors.New("already closed") },
		)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"publisher", "store"}, calls)
}

func TestRun_ListenError(t *testing.T) {
	srv := &http.Server{Addr: "256.0.0.1:bad", Handler: http.NotFoundHandler()}
	err := Run(context.Background(), srv, zap.NewNop(), time.Second)
	assert.Error(t, err)
}
