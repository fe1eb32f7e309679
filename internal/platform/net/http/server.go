package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"billnote/internal/platform/config"
	perr "billnote/internal/platform/errors"
	"billnote/internal/platform/logger"
	pnet "billnote/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

// Server wraps a chi mux and a stdlib http.Server
type Server struct {
	addr     string
	mux      *chi.Mux
	srv      *stdhttp.Server
	shutdown time.Duration
}

// NewServer reads ADDR (full listen address) or PORT from cfg, which callers
// scope with their own prefix. opts receive the mux before any route exists
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("ADDR", "")
	if addr == "" {
		addr = cfg.MayPort("PORT", ":4000")
	}

	m := chi.NewRouter()
	m.NotFound(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		writeErr(w, r, perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
	})
	m.MethodNotAllowed(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		writeErr(w, r, perr.InvalidArgf("method %s not allowed on %s", r.Method, r.URL.Path))
	})
	for _, o := range opts {
		o(m)
	}

	return &Server{
		addr:     addr,
		mux:      m,
		shutdown: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:       2 * time.Minute,
		},
	}
}

func writeErr(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, body)
}

// Router returns a Router facade over the mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run listens and serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "listen %s", s.addr)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdown)
	defer cancel()
	log.Info().Dur("grace", s.shutdown).Msg("http shutting down")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
