package searcher

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/lk16/tackle/internal/game"
	"github.com/lk16/tackle/internal/tackle"
)

// node is one searched game state. mover is the color that played the action
// leading into the node, so rewards count wins from the mover's perspective
// and the parent's selection maximizes the acting player's own outcome.
type node struct {
	mu       sync.Mutex
	parent   *node
	mover    tackle.SquareContent
	actions  []game.Action
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, state *game.Game) *node {
	return &node{
		parent:  parent,
		actions: state.LegalActions(),
	}
}

// selectOrExpand walks one step down the tree: terminal nodes return
// themselves, nodes with untried actions expand a new child, fully expanded
// nodes descend along the highest UCB1 score. The selected node takes a
// virtual visit so concurrent simulations spread out.
func (n *node) selectOrExpand(state game.Game) (*node, game.Game, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.actions) == 0 {
		return n, state, true
	}

	if len(n.children) < len(n.actions) {
		child, state := n.addChild(state)
		child.applyVirtualVisit()
		return child, state, true
	}

	ith := n.pickChild()
	child := n.children[ith]
	child.applyVirtualVisit()

	// Actions come from LegalActions, so playing one cannot fail.
	state, _ = state.Play(n.actions[ith])
	return child, state, false
}

func (n *node) addChild(state game.Game) (*node, game.Game) {
	action := n.actions[len(n.children)]
	mover := state.Turn()

	state, _ = state.Play(action)

	child := newNode(n, &state)
	child.mover = mover
	n.children = append(n.children, child)
	return child, state
}

func (n *node) pickChild() int {
	normalizer := cSquared * math.Log(float64(n.visits))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (n *node) applyVirtualVisit() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.visits++
}

func (n *node) score(normalizer float64) float64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return ucb1(n.rewards, n.visits, normalizer)
}

func ucb1(rewards float64, visits int, normalizer float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/float64(visits) + math.Sqrt(normalizer/float64(visits))
}

// backup propagates a rollout result to the root. perspective is the player
// the score is measured for; everyone else receives the complement.
func backup(leaf *node, perspective tackle.SquareContent, score float64) {
	for n := leaf; n != nil; n = n.parent {
		n.mu.Lock()
		if n.parent != nil {
			// Replace the virtual visit with the real one.
			n.visits--
		}
		if n.mover == perspective {
			n.rewards += score
		} else {
			n.rewards += win - score
		}
		n.visits++
		n.mu.Unlock()
	}
}

// rollout plays random actions until the game ends or the cutoff depth is
// reached. It returns the player the score is measured for and the score.
func rollout(state game.Game, cutoff int, evaluate EvalFunc) (tackle.SquareContent, float64) {
	actions := state.LegalActions()
	for depth := 0; len(actions) > 0 && depth < cutoff; depth++ {
		state, _ = state.Play(actions[rand.IntN(len(actions))])
		actions = state.LegalActions()
	}

	if len(actions) == 0 {
		if winner, ok := state.Winner(); ok {
			return winner, win
		}
		// Stalemate: neither player gets credit.
		return tackle.Empty, win / 2
	}

	return state.Turn(), evaluate(&state)
}

// bestAction returns the most visited root action.
func (n *node) bestAction() game.Action {
	n.mu.Lock()
	defer n.mu.Unlock()

	bestIndex := 0
	maxVisits := -1
	for i, child := range n.children {
		child.mu.Lock()
		visits := child.visits
		child.mu.Unlock()

		if visits > maxVisits {
			maxVisits = visits
			bestIndex = i
		}
	}
	return n.actions[bestIndex]
}
