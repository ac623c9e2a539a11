// Package server exposes a single game over HTTP and pushes every change of
// the position to websocket clients.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Server owns one position. Handlers take mu for every read or mutation;
// searches run on a clone so the lock is not held while searching.
type Server struct {
	cfg      *config.Config
	router   *mux.Router
	searcher *engine.Searcher

	mu  sync.Mutex
	pos *chess.Position

	clients     map[*client]struct{}
	clientsLock sync.RWMutex
	upgrader    websocket.Upgrader
}

// New creates a server for pos. A nil pos starts from the initial position.
func New(cfg *config.Config, pos *chess.Position) *Server {
	if pos == nil {
		pos = chess.NewGame()
	}
	s := &Server{
		cfg:    cfg,
		router: mux.NewRouter(),
		searcher: engine.NewSearcher(
			engine.WithPieceValues(cfg.Search.PieceValues),
			engine.WithWorkers(cfg.Search.Workers),
		),
		pos:     pos,
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	s.router.NotFoundHandler = s.logged(http.HandlerFunc(notFoundHandler))
	s.router.Use(s.logged)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/position", s.positionHandler).Methods(http.MethodGet)
	api.HandleFunc("/actions/{slot:-?[0-9]+}", s.actionsHandler).Methods(http.MethodGet)
	api.HandleFunc("/move", s.moveHandler).Methods(http.MethodPost)
	api.HandleFunc("/undo", s.undoHandler).Methods(http.MethodPost)
	api.HandleFunc("/new", s.newHandler).Methods(http.MethodPost)
	api.HandleFunc("/search", s.searchHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.wsHandler)
	return s
}

// logged writes an access log line per request to the configured log.
func (s *Server) logged(next http.Handler) http.Handler {
	w := s.cfg.LogFile
	if w == nil || s.cfg.Verbosity < 1 {
		w = io.Discard
	}
	return handlers.LoggingHandler(w, next)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	hs := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- hs.ListenAndServe()
	}()
	s.cfg.Logf(1, "Listening on %s\n", s.cfg.Server.ListenAddr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.closeClients()
		return hs.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// Position returns a copy of the current position.
func (s *Server) Position() *chess.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Clone()
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
}

// errorBody is the JSON document returned with every error status.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client went away
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, chesserrors.ErrIllegalMove), errors.Is(err, chesserrors.ErrIllegalApply):
		return http.StatusUnprocessableEntity
	case errors.Is(err, chesserrors.ErrEmptyHistory):
		return http.StatusConflict
	case errors.Is(err, chesserrors.ErrInvalidSlot),
		errors.Is(err, chesserrors.ErrInvalidFEN),
		errors.Is(err, chesserrors.ErrInvalidConfig):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
