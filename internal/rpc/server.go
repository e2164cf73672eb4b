package rpc

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options configures the HTTP server. Zero durations mean no limit, except
// ShutdownTimeout which defaults to 10s.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server serves a Router over HTTP.
type Server struct {
	router *Router
	store  Pinger
	opts   Options
	engine *gin.Engine
}

// NewServer builds the gin engine with the procedure and health routes.
func NewServer(router *Router, store Pinger, opts Options) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if !logging.DebugEnabled() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router: router,
		store:  store,
		opts:   opts,
		engine: gin.New(),
	}

	s.engine.Use(
		gin.RecoveryWithWriter(logging.Output()),
		requestID(),
		requestLogger(),
	)
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/trpc/:procedure", s.handleProcedure)
	s.engine.POST("/trpc/:procedure", s.handleProcedure)
	s.engine.NoRoute(func(c *gin.Context) {
		s.writeError(c, "", errors.NewNotFoundError("route", c.Request.URL.Path))
	})

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe listens on opts.Addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then drains
// in-flight requests for at most ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logging.Infof("listening on %s", ln.Addr())

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) handleProcedure(c *gin.Context) {
	name := c.Param("procedure")

	input, err := readInput(c)
	if err != nil {
		s.writeError(c, name, err)
		return
	}

	out, err := s.router.Call(c.Request.Context(), name, c.Request.Method, input)
	if err != nil {
		s.writeError(c, name, err)
		return
	}

	data, err := json.Marshal(out)
	if err != nil {
		logging.Errorf("%s: encode result: %v", name, err)
		s.writeError(c, name, err)
		return
	}
	c.JSON(http.StatusOK, SuccessEnvelope{Result: ResultBody{Data: data}})
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		logging.Errorf("health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) writeError(c *gin.Context, procedure string, err error) {
	status, env := newErrorEnvelope(procedure, err)
	logging.Debugf("%s %s -> %d %s: %v", c.Request.Method, c.Request.URL.Path, status, env.Error.Code, err)
	c.AbortWithStatusJSON(status, env)
}

// readInput returns the raw procedure input: the ?input= query parameter on
// GET, the request body on POST.
func readInput(c *gin.Context) (json.RawMessage, error) {
	if c.Request.Method != http.MethodPost {
		return json.RawMessage(c.Query("input")), nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, errors.NewInvalidInputError("body", err.Error())
	}
	return body, nil
}

// requestID propagates a caller-supplied X-Request-ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Debugf("%s %s %d %s id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.GetString(requestIDKey),
		)
	}
}
