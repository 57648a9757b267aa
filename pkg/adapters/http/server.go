// Package http exposes an Engine over a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"

	"tapeline/internal/logging"
	"tapeline/pkg/domain"
)

// Engine defines the execution surface the handler serves.
type Engine interface {
	Describe() string
	Run(ctx context.Context, input string) (*domain.SessionState, error)
	RunWithLimit(ctx context.Context, input string, limit int) (*domain.SessionState, error)
	Start(ctx context.Context, sessionID, input string) (*domain.SessionState, error)
	StepSession(ctx context.Context, sessionID string) (*domain.SessionState, error)
	Session(ctx context.Context, sessionID string) (*domain.SessionState, error)
	End(ctx context.Context, sessionID string) error
}

// Server holds the handler state.
type Server struct {
	engine Engine
	logger *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/healthz", server.health)
	r.Get("/machine", server.getMachine)
	r.Post("/run", server.run)
	r.Post("/sessions", server.createSession)
	r.Get("/sessions/{id}", server.getSession)
	r.Post("/sessions/{id}/step", server.stepSession)
	r.Delete("/sessions/{id}", server.deleteSession)
	return r
}

// RunOptions are the per-request execution knobs, decoded loosely so
// clients may send numbers as JSON numbers or strings.
type RunOptions struct {
	StepLimit int `mapstructure:"step_limit"`
}

type runRequest struct {
	Input   string         `json:"input"`
	Options map[string]any `json:"options"`
}

type createSessionRequest struct {
	SessionID string `json:"session_id"`
	Input     string `json:"input"`
}

func decodeRunOptions(raw map[string]any) (RunOptions, error) {
	var opts RunOptions
	if len(raw) == 0 {
		return opts, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return opts, err
	}
	if err := dec.Decode(raw); err != nil {
		return opts, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getMachine returns the machine's textual encoding.
func (s *Server) getMachine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, s.engine.Describe())
}

// run executes one input to completion and returns the final snapshot.
func (s *Server) run(w http.ResponseWriter, r *http.Request) {
	var body runRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("run: invalid request body", "error", err)
		return
	}

	opts, err := decodeRunOptions(body.Options)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		s.logger.Warn("run: invalid options", "error", err)
		return
	}

	var snap *domain.SessionState
	if opts.StepLimit > 0 {
		snap, err = s.engine.RunWithLimit(r.Context(), body.Input, opts.StepLimit)
	} else {
		snap, err = s.engine.Run(r.Context(), body.Input)
	}
	if err != nil {
		if errors.Is(err, domain.ErrStepLimit) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, fmt.Sprintf("Run error: %v", err), http.StatusInternalServerError)
		s.logger.Error("run failed", "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var body createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("createSession: invalid request body", "error", err)
		return
	}
	if body.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	snap, err := s.engine.Start(r.Context(), body.SessionID, body.Input)
	if err != nil {
		http.Error(w, fmt.Sprintf("Start error: %v", err), http.StatusInternalServerError)
		s.logger.Error("createSession failed", "error", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.engine.Session(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.sessionError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) stepSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.engine.StepSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.sessionError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.End(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.sessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	http.Error(w, fmt.Sprintf("Session error: %v", err), http.StatusInternalServerError)
	s.logger.Error("session operation failed", "error", err)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
