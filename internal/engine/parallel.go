package engine

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// searchParallel scores each root action on its own clone of pos using a
// worker pool, then picks the optimum in enumeration order so the result
// matches the serial search exactly.
func (s *Searcher) searchParallel(pos *chess.Position, depth int, maximizing chess.Colour) (Result, error) {
	mover := pos.CurrentMoverColour()
	if value, done := s.leaf(pos, depth, mover, maximizing); done {
		return Result{Action: NoAction, Value: value, Nodes: 1}, nil
	}

	actions, err := PlayerActions(pos, mover)
	if err != nil {
		return Result{}, err
	}
	var jobs []worker.Job
	for _, pa := range actions {
		for _, to := range pa.Targets {
			jobs = append(jobs, worker.Job{Slot: pa.Slot, To: to})
		}
	}

	pool := worker.New(func(clone *chess.Position, job worker.Job) worker.Score {
		child, err := withMove(clone, job.Slot, job.To, func() (Result, error) {
			return s.minimax(clone, depth-1, maximizing, false)
		})
		return worker.Score{Value: child.Value, Nodes: child.Nodes, Err: err}
	}, worker.WithWorkers(s.workers))
	scores, err := pool.Run(pos, jobs)
	if err != nil {
		return Result{}, err
	}

	best := newOptimum(mover == maximizing)
	nodes := 1
	for i, sc := range scores {
		a := Action{Slot: jobs[i].Slot, To: jobs[i].To}
		nodes += sc.Nodes
		s.logRoot(pos, a, Result{Value: sc.Value, Nodes: sc.Nodes})
		best.consider(a, sc.Value)
	}
	return Result{Action: best.action, Value: best.value, Nodes: nodes}, nil
}
