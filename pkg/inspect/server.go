// Package inspect serves a developer-facing HTTP view of a MetaRouter:
// current snapshots per context, a websocket stream of navigation
// commands, and the Prometheus metrics endpoint. It is a development
// tool; production UI binding layers consume the routers directly.
package inspect

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wayfarer-ui/wayfarer/pkg/nav"
)

// Server exposes the inspector HTTP surface over one registry. It is a
// nav.CommandObserver: New registers it on every router in the registry
// so connected clients see commands as they happen.
type Server struct {
	meta     *nav.MetaRouter
	logger   *slog.Logger
	hub      *hub
	upgrader websocket.Upgrader
}

// Option configures the inspector server.
type Option func(*Server)

// WithLogger sets the structured logger (default: slog.Default with a
// component attribute).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates an inspector over meta and subscribes it to every
// registered router.
func New(meta *nav.MetaRouter, opts ...Option) *Server {
	s := &Server{
		meta:   meta,
		logger: slog.Default().With("component", "inspect"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The inspector is a same-host dev tool.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = newHub(s.logger)

	meta.Observe(s)
	return s
}

// Handler returns the inspector's HTTP handler.
//
// Routes:
//
//	GET /state        all context snapshots
//	GET /state/{key}  one context snapshot
//	GET /ws           websocket stream of navigation commands
//	GET /metrics      Prometheus metrics
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/state", s.handleState)
	r.Get("/state/{key}", s.handleStateByKey)
	r.Get("/ws", s.handleWS)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// NavigationChanged implements nav.CommandObserver by broadcasting the
// command to connected clients.
func (s *Server) NavigationChanged(cmd nav.Command) {
	msg, err := json.Marshal(struct {
		Context string `json:"context"`
		Op      string `json:"op"`
		Tab     string `json:"tab"`
		Depth   int    `json:"depth"`
		Present bool   `json:"presenting"`
	}{
		Context: cmd.Context.String(),
		Op:      string(cmd.Op),
		Tab:     cmd.Tab,
		Depth:   cmd.Depth,
		Present: cmd.Presenting,
	})
	if err != nil {
		s.logger.Error("encode command", "error", err)
		return
	}
	s.hub.broadcast(msg)
}

// Close disconnects all websocket clients.
func (s *Server) Close() {
	s.hub.closeAll()
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	states := make(map[string]json.RawMessage, s.meta.Len())
	for _, key := range s.meta.Keys() {
		router, ok := s.meta.Lookup(key)
		if !ok {
			continue
		}
		data, err := router.EncodeState()
		if err != nil {
			s.logger.Error("encode state", "context", key.String(), "error", err)
			http.Error(w, "encode failed", http.StatusInternalServerError)
			return
		}
		states[key.String()] = data
	}

	writeJSON(w, map[string]any{"contexts": states})
}

func (s *Server) handleStateByKey(w http.ResponseWriter, r *http.Request) {
	key := nav.KeyFromString(chi.URLParam(r, "key"))

	router, ok := s.meta.Lookup(key)
	if !ok {
		http.Error(w, "unknown routing context", http.StatusNotFound)
		return
	}

	data, err := router.EncodeState()
	if err != nil {
		s.logger.Error("encode state", "context", key.String(), "error", err)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade", "error", err)
		return
	}
	s.logger.Info("inspector client connected", "remote", r.RemoteAddr)
	s.hub.add(conn)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}
