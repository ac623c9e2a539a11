// Package worker scores the root moves of a search in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Job is one root move: the slot to move and its target square.
type Job struct {
	Slot chess.Slot
	To   chess.Square
}

// Score is the outcome of one job.
type Score struct {
	Value int
	Nodes int
	Err   error
}

// ScoreFunc scores job on pos. pos is a copy owned by the call; it may be
// mutated freely.
type ScoreFunc func(pos *chess.Position, job Job) Score

// Pool runs a ScoreFunc over a batch of jobs with a fixed number of workers.
type Pool struct {
	numWorkers int
	score      ScoreFunc
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// New creates a pool around score. Default: 1 worker.
func New(score ScoreFunc, opts ...Option) *Pool {
	p := &Pool{numWorkers: 1, score: score}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run scores every job on its own clone of pos and returns the scores in
// job order. pos is only read, and only before any worker starts. Once a
// job fails, jobs not yet started are skipped and Run returns the error of
// the earliest failed job.
func (p *Pool) Run(pos *chess.Position, jobs []Job) ([]Score, error) {
	if len(jobs) == 0 {
		return nil, nil
	}
	clones := make([]*chess.Position, len(jobs))
	for i := range jobs {
		clones[i] = pos.Clone()
	}

	next := make(chan int, len(jobs))
	for i := range jobs {
		next <- i
	}
	close(next)

	scores := make([]Score, len(jobs))
	var stopped atomic.Bool
	var wg sync.WaitGroup
	for w := 0; w < min(p.numWorkers, len(jobs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				if stopped.Load() {
					continue // Drain without scoring
				}
				scores[i] = p.score(clones[i], jobs[i])
				if scores[i].Err != nil {
					stopped.Store(true)
				}
			}
		}()
	}
	wg.Wait()

	for _, s := range scores {
		if s.Err != nil {
			return nil, s.Err
		}
	}
	return scores, nil
}
