package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ShutdownHook se ejecuta después de la señal de término y antes de cerrar
// el servidor HTTP. Un error se registra pero no detiene el apagado.
type ShutdownHook func(ctx context.Context) error

// Run arranca el servidor y bloquea hasta recibir SIGINT o SIGTERM o hasta
// que ctx se cancele. Luego cierra el servidor HTTP y ejecuta los hooks en
// orden, todo dentro de shutdownTimeout.
func Run(ctx context.Context, srv *http.Server, logger *zap.Logger, shutdownTimeout time.Duration, hooks ...ShutdownHook) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	for i, hook := range hooks {
		if hook == nil {
			continue
		}
		if hookErr := hook(shutdownCtx); hookErr != nil {
			logger.Warn("shutdown hook failed", zap.Int("hook", i), zap.Error(hookErr))
		}
	}
	logger.Info("shutdown complete")
	return err
}
