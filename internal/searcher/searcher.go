package searcher

import (
	"errors"
	"sync"
	"time"

	"github.com/lk16/tackle/internal/game"
)

const (
	// win is the reward for the winning player of a finished rollout.
	win = 1.0

	// defaultCutoff bounds rollout length before the evaluation function
	// takes over.
	defaultCutoff = 200

	cSquared = 2.0
)

var ErrNoLegalActions = errors.New("no legal actions to search")

// Option configures an MCTS instance.
type Option func(*MCTS)

// MCTS runs Monte Carlo tree search over game states. One instance can be
// reused across Search calls; a single call fans simulations out over the
// configured number of goroutines.
type MCTS struct {
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
	evaluate   EvalFunc
}

// WithEpisodes sets a fixed number of simulations per search.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithDuration makes each search run until the duration expires.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithCutoff bounds rollout depth; cut-off rollouts are scored with the
// evaluation function instead of a game result.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithEvaluationFunc replaces the default cutoff evaluation.
func WithEvaluationFunc(evaluate EvalFunc) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// New creates a searcher. Either WithEpisodes or WithDuration must be given.
func New(goroutines int, options ...Option) (*MCTS, error) {
	if goroutines < 1 {
		return nil, errors.New("searcher needs at least one goroutine")
	}

	m := &MCTS{
		goroutines: goroutines,
		cutoff:     defaultCutoff,
		evaluate:   EvaluateCourtControl,
	}
	for _, option := range options {
		option(m)
	}

	if m.episodes <= 0 && m.duration <= 0 {
		return nil, errors.New("searcher needs an episode count or a duration")
	}
	return m, nil
}

// Search simulates games from the given state and returns the most visited
// action at the root.
func (m *MCTS) Search(state game.Game) (game.Action, error) {
	root := newNode(nil, &state)
	if len(root.actions) == 0 {
		return game.Action{}, ErrNoLegalActions
	}

	if m.episodes > 0 {
		m.iterate(root, state)
	} else {
		m.countdown(root, state)
	}
	return root.bestAction(), nil
}

func (m *MCTS) iterate(root *node, state game.Game) {
	task := make(chan struct{}, m.episodes)
	for range m.episodes {
		task <- struct{}{}
	}
	close(task)

	var wg sync.WaitGroup
	for range m.goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range task {
				m.simulate(root, state)
			}
		}()
	}
	wg.Wait()
}

func (m *MCTS) countdown(root *node, state game.Game) {
	done := make(chan struct{})

	var wg sync.WaitGroup
	for range m.goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, state)
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *node, state game.Game) {
	leaf, leafState := selectThenExpand(root, state)
	perspective, score := rollout(leafState, m.cutoff, m.evaluate)
	backup(leaf, perspective, score)
}

func selectThenExpand(root *node, state game.Game) (*node, game.Game) {
	parent := root
	child, state, expanded := parent.selectOrExpand(state)
	for !expanded && child != parent {
		parent = child
		child, state, expanded = parent.selectOrExpand(state)
	}
	return child, state
}
