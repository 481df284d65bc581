package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/thesyncim/rtcstats/internal/conf"
	"github.com/thesyncim/rtcstats/pkg/promstats"
)

const shutdownTimeout = 5 * time.Second

type serveCmd struct {
	Source    string `help:"report source (fixture, loopback, native or rtp), overrides the config"`
	Fixture   string `help:"fixture file for the fixture source" type:"path"`
	Listen    string `help:"listen address, overrides prometheus.listen"`
	Namespace string `help:"metric namespace, overrides prometheus.namespace"`
}

func (s *serveCmd) Run(e *env) error {
	c := *e.conf
	if s.Source != "" {
		c.Source = s.Source
	}
	if s.Fixture != "" {
		c.Fixture = s.Fixture
	}
	if s.Listen != "" {
		c.Prometheus.Listen = s.Listen
	}
	if s.Namespace != "" {
		c.Prometheus.Namespace = s.Namespace
	}
	if err := c.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := openSource(ctx, &c, e.logger)
	if err != nil {
		return err
	}
	defer src.close()

	ln, err := net.Listen("tcp", c.Prometheus.Listen)
	if err != nil {
		return errors.Wrap(err, "listen")
	}
	return serve(ctx, ln, newRegistry(&c, src, e.logger), c.Prometheus.Path, e.logger)
}

func newRegistry(c *conf.Config, src *source, logger *zap.Logger) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		promstats.New(src.snapshot,
			promstats.WithNamespace(c.Prometheus.Namespace),
			promstats.WithTimeout(c.Prometheus.Timeout),
			promstats.WithConstLabels(c.Prometheus.ConstLabels),
			promstats.WithLogger(logger)),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// serve answers scrapes on ln until ctx is done.
func serve(ctx context.Context, ln net.Listener, reg *prometheus.Registry, path string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	}))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving metrics", zap.String("addr", ln.Addr().String()), zap.String("path", path))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
