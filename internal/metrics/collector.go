package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/livp123/monolog/pkg/monolog"
)

var (
	// CommitsTotal counts events dispatched to a sink, by severity.
	CommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monolog_commits_total",
			Help: "Total events dispatched to a sink, by severity",
		},
		[]string{"level"},
	)

	// NoSinkTotal counts commits attempted while no sink was configured.
	NoSinkTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "monolog_nosink_total",
			Help: "Total commits attempted without a configured sink",
		},
	)
)

// Observe subscribes the collectors to ctx's notifications. The returned
// function detaches them.
// Observe 将指标收集器订阅到 ctx 的通知上，返回的函数用于取消订阅。
func Observe(ctx *monolog.Context) (detach func()) {
	stopCommitted := ctx.OnCommitted(func(e *monolog.Event) {
		CommitsTotal.WithLabelValues(e.Severity().String()).Inc()
	})
	stopNoSink := ctx.OnNoSink(func() {
		NoSinkTotal.Inc()
	})
	return func() {
		stopCommitted()
		stopNoSink()
	}
}

// Server exposes the default registry on /metrics.
// Server 在 /metrics 上暴露默认注册表。
type Server struct {
	server *http.Server
	log    *zap.Logger
}

// Start listens on addr in the background.
// Start 在后台监听 addr。
func Start(addr string, log *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}

	go func() {
		log.Info("metrics server listening", zap.String("addr", addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", zap.Error(err))
		}
	}()
	return s
}

// Stop shuts the server down, waiting for in-flight scrapes.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
