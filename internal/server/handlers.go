package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// moveRequest names a move either in long algebraic form or by slot and target.
type moveRequest struct {
	Move string `json:"move,omitempty"`
	Slot *int   `json:"slot,omitempty"`
	To   string `json:"to,omitempty"`
}

// newRequest optionally sets up a position from FEN.
type newRequest struct {
	FEN string `json:"fen,omitempty"`
}

func (s *Server) positionHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc := output.PositionToJSON(s.pos)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) actionsHandler(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(mux.Vars(r)["slot"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	slot := chess.Slot(n)

	s.mu.Lock()
	defer s.mu.Unlock()
	targets, err := engine.ActionsFor(s.pos, slot)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, output.ActionsToJSON(s.pos, slot, targets))
}

func (s *Server) moveHandler(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode move: %w", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	action, err := s.requestedAction(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	notation := action.Notation(s.pos)
	if err := engine.Commit(s.pos, action); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.cfg.Logf(2, "Move %d: %s\n", s.pos.Ply(), notation)
	s.changed()
	writeJSON(w, http.StatusOK, output.PositionToJSON(s.pos))
}

// requestedAction resolves a move request against the current position.
func (s *Server) requestedAction(req moveRequest) (engine.Action, error) {
	if req.Move != "" {
		return engine.ParseAction(s.pos, req.Move)
	}
	if req.Slot == nil {
		return engine.NoAction, fmt.Errorf("move request needs move or slot: %w", chesserrors.ErrIllegalMove)
	}
	slot := chess.Slot(*req.Slot)
	if !slot.Valid() {
		return engine.NoAction, &chesserrors.MoveError{Err: chesserrors.ErrInvalidSlot, Slot: *req.Slot, Ply: s.pos.Ply()}
	}
	to, ok := chess.ParseSquare(req.To)
	if !ok {
		return engine.NoAction, &chesserrors.MoveError{Err: chesserrors.ErrInvalidSlot, Slot: *req.Slot, To: req.To, Ply: s.pos.Ply()}
	}
	return engine.Action{Slot: slot, To: to}, nil
}

func (s *Server) undoHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.pos.UndoLastMove(); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.changed()
	writeJSON(w, http.StatusOK, output.PositionToJSON(s.pos))
}

func (s *Server) newHandler(w http.ResponseWriter, r *http.Request) {
	var req newRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode new game: %w", err))
		return
	}
	pos := chess.NewGame()
	if req.FEN != "" {
		var err error
		if pos, err = chess.ParseFEN(req.FEN); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = pos
	s.changed()
	writeJSON(w, http.StatusOK, output.PositionToJSON(s.pos))
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	depth := s.cfg.Search.Depth
	if v := r.URL.Query().Get("depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("depth %q: %w", v, chesserrors.ErrInvalidConfig))
			return
		}
		depth = n
	}
	if depth < 0 || depth > s.cfg.Server.MaxDepth {
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("depth %d outside [0,%d]: %w", depth, s.cfg.Server.MaxDepth, chesserrors.ErrInvalidConfig))
		return
	}
	maximizing, err := config.ParseColour(r.URL.Query().Get("max"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	pos := s.Position()
	if maximizing == chess.NoColour {
		maximizing = pos.CurrentMoverColour()
	}
	result, err := s.searcher.Search(pos, depth, maximizing)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, output.SearchToJSON(pos, depth, maximizing, result))
}
