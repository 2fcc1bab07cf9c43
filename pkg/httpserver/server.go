package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Option func(*Options)

type Options struct {
	port          int
	logger        *zap.Logger
	releaseMode   bool
	enableLogging bool
	corsOrigins   []string
}

func WithPort(port int) Option {
	return func(o *Options) { o.port = port }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

func WithReleaseMode(enabled bool) Option {
	return func(o *Options) { o.releaseMode = enabled }
}

func WithLogging(enabled bool) Option {
	return func(o *Options) { o.enableLogging = enabled }
}

func WithCORSOrigins(origins ...string) Option {
	return func(o *Options) { o.corsOrigins = origins }
}

type Server struct {
	engine *gin.Engine
	srv    *http.Server
	lis    net.Listener
	logger *zap.Logger
}

// New builds a gin-based HTTP server with recovery, request logging, CORS
// and a health endpoint wired in.
func New(opts ...Option) (*Server, error) {
	options := &Options{
		port:   8080,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.port < 1 || options.port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 1 and 65535", options.port)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", options.port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", options.port, err)
	}

	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if options.releaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	if options.enableLogging {
		engine.Use(RequestLogger(logger))
	}
	if len(options.corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = options.corsOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		engine.Use(cors.New(corsCfg))
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		engine: engine,
		srv:    &http.Server{Handler: engine},
		lis:    lis,
		logger: logger.Named("http-server"),
	}, nil
}

// Engine exposes the router so the application can register its routes.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start serves in a goroutine and returns immediately.
func (s *Server) Start() {
	s.logger.Info("http server starting", zap.String("addr", s.lis.Addr().String()))

	go func() {
		if err := s.srv.Serve(s.lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server failed", zap.Error(err))
		}
	}()
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("forced shutdown", zap.Error(err))
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

// Addr returns the server's listening address.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}
