package engine

import (
	"fmt"
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Inf is the score of a decided game: +Inf when the side to move at a
// terminal node is not the maximizing colour, -Inf when it is.
const Inf = 100000

// Result is the outcome of a search: the chosen action (NoAction at a leaf
// or terminal node), its value from the maximizing colour's point of view,
// and the number of nodes visited.
type Result struct {
	Action Action
	Value  int
	Nodes  int
}

// Searcher runs fixed-depth minimax without pruning.
type Searcher struct {
	eval    *Evaluator
	workers int
	log     io.Writer
}

// SearchOption configures a Searcher.
type SearchOption func(*Searcher)

// WithEvaluator sets the leaf evaluator.
func WithEvaluator(e *Evaluator) SearchOption {
	return func(s *Searcher) {
		if e != nil {
			s.eval = e
		}
	}
}

// WithPieceValues evaluates leaves with the default material table, each
// kind present in values taking the given value instead.
func WithPieceValues(values PieceValues) SearchOption {
	return func(s *Searcher) {
		s.eval = NewEvaluator(DefaultPieceValues().Over(values))
	}
}

// WithWorkers splits the root actions across n goroutines, each searching
// its own copy of the position. n <= 1 searches serially.
func WithWorkers(n int) SearchOption {
	return func(s *Searcher) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithLog writes one line per root action to w.
func WithLog(w io.Writer) SearchOption {
	return func(s *Searcher) {
		s.log = w
	}
}

// NewSearcher creates a serial searcher with DefaultPieceValues unless
// options say otherwise.
func NewSearcher(opts ...SearchOption) *Searcher {
	s := &Searcher{
		eval:    defaultEvaluator,
		workers: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search selects a move for the colour to move using the default searcher.
func Search(pos *chess.Position, depth int, maximizing chess.Colour) (Result, error) {
	return NewSearcher().Search(pos, depth, maximizing)
}

// Search explores every legal line depth plies deep and returns the best
// action for the colour to move, scored from maximizing's point of view.
// Among equally scored actions the first in slot-then-target order wins.
// The position is restored before Search returns.
func (s *Searcher) Search(pos *chess.Position, depth int, maximizing chess.Colour) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("search depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	if maximizing != chess.White && maximizing != chess.Black {
		return Result{}, fmt.Errorf("maximizing colour %v: %w", maximizing, errors.ErrInvalidConfig)
	}
	if s.workers > 1 {
		return s.searchParallel(pos, depth, maximizing)
	}
	return s.minimax(pos, depth, maximizing, true)
}

// minimax scores pos. Each call keeps its own optimum; nothing is shared
// between recursive calls except the position, which is restored.
func (s *Searcher) minimax(pos *chess.Position, depth int, maximizing chess.Colour, root bool) (Result, error) {
	mover := pos.CurrentMoverColour()
	if value, done := s.leaf(pos, depth, mover, maximizing); done {
		return Result{Action: NoAction, Value: value, Nodes: 1}, nil
	}

	actions, err := PlayerActions(pos, mover)
	if err != nil {
		return Result{}, err
	}

	best := newOptimum(mover == maximizing)
	nodes := 1
	for _, pa := range actions {
		for _, to := range pa.Targets {
			child, err := withMove(pos, pa.Slot, to, func() (Result, error) {
				return s.minimax(pos, depth-1, maximizing, false)
			})
			if err != nil {
				return Result{}, err
			}
			nodes += child.Nodes
			action := Action{Slot: pa.Slot, To: to}
			if root {
				s.logRoot(pos, action, child)
			}
			best.consider(action, child.Value)
		}
	}
	return Result{Action: best.action, Value: best.value, Nodes: nodes}, nil
}

// leaf returns the value of a terminal or depth-0 node.
func (s *Searcher) leaf(pos *chess.Position, depth int, mover, maximizing chess.Colour) (int, bool) {
	if IsTerminal(pos, mover) {
		if mover != maximizing {
			return Inf, true
		}
		return -Inf, true
	}
	if depth == 0 {
		return s.eval.Evaluate(pos, maximizing), true
	}
	return 0, false
}

// logRoot reports a root action's score.
func (s *Searcher) logRoot(pos *chess.Position, a Action, child Result) {
	if s.log == nil {
		return
	}
	fmt.Fprintf(s.log, "root %s value %d nodes %d\n", a.Notation(pos), child.Value, child.Nodes)
}

// optimum tracks the best action seen by one node.
type optimum struct {
	maximize bool
	action   Action
	value    int
}

// newOptimum starts from the worst value for the side, so a node with no
// actions scores as a loss for its mover.
func newOptimum(maximize bool) *optimum {
	o := &optimum{maximize: maximize, action: NoAction, value: Inf}
	if maximize {
		o.value = -Inf
	}
	return o
}

// consider records the action if it is the first seen or strictly better.
// The first action is kept even when it scores -Inf, so a node with actions
// always reports one; a lost position still yields a move to play.
func (o *optimum) consider(a Action, value int) {
	better := value > o.value
	if !o.maximize {
		better = value < o.value
	}
	if o.action.IsNone() || better {
		o.action = a
		o.value = value
	}
}
