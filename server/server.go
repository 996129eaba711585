package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/xeptore/jamlist/config"
	"github.com/xeptore/jamlist/ctxutil"
)

type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	logger zerolog.Logger
}

func New(cfg *config.Config, tracks TrackLister, logger zerolog.Logger) *Server {
	engine := gin.New()
	engine.Use(requestLogger(logger), recovery(logger))
	engine.GET("/music", handleMusic(tracks, cfg.DefaultGenre, cfg.CacheMaxAge, logger))
	engine.GET("/healthz", handleHealth)

	return &Server{
		cfg:    cfg,
		engine: engine,
		logger: logger,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if nil != err {
		return fmt.Errorf("failed to listen on %q: %v", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then gives in-flight
// requests up to the configured shutdown timeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	baseCtx, cancel := ctxutil.WithDelayedTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	//nolint:exhaustruct
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	wg, wgCtx := errgroup.WithContext(ctx)
	wg.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("Server started")
		if err := srv.Serve(ln); nil != err && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %v", err)
		}
		return nil
	})
	wg.Go(func() error {
		<-wgCtx.Done()
		s.logger.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); nil != err {
			return fmt.Errorf("failed to shut down server gracefully: %v", err)
		}
		return nil
	})

	return wg.Wait()
}
