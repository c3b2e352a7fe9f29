package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/SychO3/SMAPIDedicatedServerMod/docs"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/handler"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/logger"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/metrics"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/repository"
)

// Server serves metrics, health checks and read-only views of the crop tables
type Server struct {
	httpServer *http.Server
}

// Dependencies are the components the routes read from
type Dependencies struct {
	Live   handler.TableSource
	Store  repository.SaveDataStore
	Events handler.EventReader
	Checks []handler.HealthChecker
}

// NewServer creates a server listening on addr
func NewServer(addr string, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Crop routes are mounted only for the
// dependencies that are set.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(RouteHealthz, handler.HandleHealthz())
	r.Get(RouteReadyz, handler.HandleReadyz(deps.Checks...))
	r.Get(RouteVersion, handler.HandleVersion())
	r.Handle(RouteMetrics, promhttp.Handler())
	r.Get(RouteSwagger, httpSwagger.WrapHandler)

	if deps.Live == nil && deps.Store == nil && deps.Events == nil {
		return r
	}
	r.Route(RouteAPI, func(r chi.Router) {
		if deps.Live != nil {
			r.Get(RouteCrops, handler.HandleGetLiveCrops(deps.Live))
		}
		if deps.Store != nil {
			r.Get(RouteSlots, handler.HandleListSlots(deps.Store))
			r.Get(RouteStoredCrops, handler.HandleGetStoredCrops(deps.Store))
		}
		if deps.Events != nil {
			r.Get(RouteEvents, handler.HandleGetCropEvents(deps.Events))
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithPassID(r.Context(), logger.GeneratePassID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Debug(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	slog.Default().Info(LogMsgServerStopped, "addr", s.httpServer.Addr)
	return err
}
