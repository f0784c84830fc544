// Package server exposes calculator sessions over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/tevino/abool/v2"
	"github.com/valyala/fasthttp"

	"go.creack.net/calc/host"
)

const (
	DefaultAddr          = ":8080"
	DefaultSessionTTL    = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// ErrRunning is returned when serving a Server that is already serving.
var ErrRunning = errors.New("server already running")

type Config struct {
	Addr          string
	SessionTTL    time.Duration // Idle time after which a session is dropped.
	SweepInterval time.Duration
	HistorySize   int
	Logger        *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = DefaultSweepInterval
	}
	if c.HistorySize <= 0 {
		c.HistorySize = host.DefaultHistorySize
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}

type Server struct {
	cfg   Config
	store *Store

	httpServer *fasthttp.Server

	// mu serializes Serve and Shutdown and guards the fields below.
	mu        sync.Mutex
	scheduler gocron.Scheduler
	ln        net.Listener
	running   *abool.AtomicBool
}

func New(cfg Config) *Server {
	cfg = cfg.withDefaults()
	s := &Server{
		cfg:     cfg,
		store:   NewStore(cfg.SessionTTL, cfg.HistorySize),
		running: abool.New(),
	}
	s.httpServer = &fasthttp.Server{
		Handler:      s.Handler,
		Name:         "calc",
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}
	return s
}

func (s *Server) Store() *Store { return s.store }

// ListenAndServe serves on the configured address until Shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %q: %w", s.cfg.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln until Shutdown. Idle sessions are swept periodically
// while serving.
func (s *Server) Serve(ln net.Listener) error {
	if err := s.start(ln); err != nil {
		return err
	}
	s.cfg.Logger.Printf("Starting HTTP server on %q", ln.Addr().String())
	err := s.httpServer.Serve(ln)
	if !s.running.IsSet() {
		// Shutdown closed ln, possibly before it was ever accepted on.
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// start starts the sweeper and flags the server as running. The flag only
// flips once the sweeper is in place.
func (s *Server) start(ln net.Listener) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.IsSet() {
		return ErrRunning
	}
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("new scheduler: %w", err)
	}
	if _, err := scheduler.NewJob(gocron.DurationJob(s.cfg.SweepInterval), gocron.NewTask(s.sweep)); err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("schedule sweep: %w", err)
	}
	scheduler.Start()

	s.scheduler = scheduler
	s.ln = ln
	s.running.Set()
	return nil
}

func (s *Server) sweep() {
	if expired := s.store.Sweep(); len(expired) > 0 {
		s.cfg.Logger.Printf("Expired %d idle session(s)", len(expired))
	}
}

// Shutdown stops the sweeper and gracefully stops serving.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.IsSet() {
		return nil
	}
	s.running.UnSet()

	var errs []error
	if err := s.scheduler.Shutdown(); err != nil {
		errs = append(errs, fmt.Errorf("scheduler shutdown: %w", err))
	}
	s.scheduler = nil
	if err := s.httpServer.Shutdown(); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	// fasthttp only closes the listeners Serve already registered.
	_ = s.ln.Close()
	s.ln = nil
	s.cfg.Logger.Printf("HTTP server stopped")
	return errors.Join(errs...)
}

// Handler routes requests. It is usable without serving, as any
// fasthttp.RequestHandler.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/sessions":
		switch {
		case ctx.IsPost():
			s.handleCreate(ctx)
		case ctx.IsDelete():
			s.handleDelete(ctx)
		default:
			methodNotAllowed(ctx, "POST, DELETE")
		}
	case "/eval":
		if !ctx.IsPost() {
			methodNotAllowed(ctx, "POST")
			return
		}
		s.handleEval(ctx)
	case "/vars":
		if !ctx.IsGet() {
			methodNotAllowed(ctx, "GET")
			return
		}
		s.handleVars(ctx)
	case "/history":
		if !ctx.IsGet() {
			methodNotAllowed(ctx, "GET")
			return
		}
		s.handleHistory(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not_found", fmt.Sprintf("no route for %q", ctx.Path()))
	}
}

func (s *Server) handleCreate(ctx *fasthttp.RequestCtx) {
	id := s.store.Create()
	s.cfg.Logger.Printf("Session %s created", id)
	writeJSON(ctx, fasthttp.StatusCreated, map[string]string{"session": id})
}

func (s *Server) handleDelete(ctx *fasthttp.RequestCtx) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	if !s.store.Delete(id) {
		unknownSession(ctx, id)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (s *Server) handleEval(ctx *fasthttp.RequestCtx) {
	line := string(ctx.PostBody())

	id := string(ctx.QueryArgs().Peek("session"))
	var sess *session
	if id == "" {
		sess = s.store.newSession()
	} else {
		var ok bool
		if sess, ok = s.store.get(id); !ok {
			unknownSession(ctx, id)
			return
		}
	}

	o := sess.eval(line)
	if o.Err != nil {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, errorBody(o.Kind().String(), host.Message(o.Err)))
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]any{"value": jsonValue(o.Value)})
}

func (s *Server) handleVars(ctx *fasthttp.RequestCtx) {
	sess, ok := s.lookup(ctx)
	if !ok {
		return
	}
	vars := map[string]any{}
	for name, v := range sess.vars() {
		vars[name] = jsonValue(v)
	}
	writeJSON(ctx, fasthttp.StatusOK, vars)
}

type historyEntry struct {
	Input string      `json:"input"`
	Value any         `json:"value,omitempty"`
	Error *errorField `json:"error,omitempty"`
}

func (s *Server) handleHistory(ctx *fasthttp.RequestCtx) {
	sess, ok := s.lookup(ctx)
	if !ok {
		return
	}
	entries := sess.history.Entries()
	out := make([]historyEntry, 0, len(entries))
	for _, o := range entries {
		e := historyEntry{Input: o.Input}
		if o.Err != nil {
			e.Error = &errorField{Kind: o.Kind().String(), Message: host.Message(o.Err)}
		} else {
			e.Value = jsonValue(o.Value)
		}
		out = append(out, e)
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

// lookup resolves the session named by the query, writing the error
// response when it cannot.
func (s *Server) lookup(ctx *fasthttp.RequestCtx) (*session, bool) {
	id, ok := sessionID(ctx)
	if !ok {
		return nil, false
	}
	sess, ok := s.store.get(id)
	if !ok {
		unknownSession(ctx, id)
		return nil, false
	}
	return sess, true
}

func sessionID(ctx *fasthttp.RequestCtx) (string, bool) {
	id := string(ctx.QueryArgs().Peek("session"))
	if id == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "missing_session", "missing session query parameter")
		return "", false
	}
	return id, true
}

func unknownSession(ctx *fasthttp.RequestCtx, id string) {
	writeError(ctx, fasthttp.StatusNotFound, "unknown_session", fmt.Sprintf("unknown session %q", id))
}

func methodNotAllowed(ctx *fasthttp.RequestCtx, allow string) {
	ctx.Response.Header.Set("Allow", allow)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "method_not_allowed", fmt.Sprintf("method %s not allowed", ctx.Method()))
}

type errorField struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func errorBody(kind, message string) map[string]errorField {
	return map[string]errorField{"error": {Kind: kind, Message: message}}
}

func writeError(ctx *fasthttp.RequestCtx, status int, kind, message string) {
	writeJSON(ctx, status, errorBody(kind, message))
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	buf, err := json.Marshal(v)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(buf)
}

// jsonValue keeps finite values as numbers. JSON has no infinities or NaN,
// those are sent as their text form.
func jsonValue(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return host.FormatValue(v)
	}
	return v
}
