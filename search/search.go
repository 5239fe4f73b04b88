/*
 * MIT License
 *
 * Copyright (c) 2024 chesscore contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package search implements the heuristic bot move selection: a
// depth-limited alpha-beta search with optional quiescence and killer
// move ordering, tuned to one of three preconfigured strength
// profiles. It drives position.MakeRaw/UnmakeRaw directly rather than
// going through the rules package, since its inner loop has no use for
// algebraic notation or terminal-state bookkeeping on every node.
package search

import (
	"sort"

	"github.com/kestrelgames/chesscore/config"
	"github.com/kestrelgames/chesscore/evaluator"
	"github.com/kestrelgames/chesscore/logging"
	"github.com/kestrelgames/chesscore/movegen"
	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

var log = logging.Get("search")

// Statistics reports counters from the most recently completed
// top-level search call.
type Statistics struct {
	NodesVisited int64
}

// Search holds the state a single bot-move calculation needs: its own
// evaluator and its own killer table, scoped to one invocation so that
// concurrent games never share cutoff history.
type Search struct {
	eval    *evaluator.Evaluator
	killers killerTable
	nodes   int64
}

// New returns a ready-to-use Search.
func New() *Search {
	return &Search{eval: evaluator.New()}
}

// LastStatistics reports counters from the most recently completed
// GetBotMove call.
func (s *Search) LastStatistics() Statistics {
	return Statistics{NodesVisited: s.nodes}
}

// GetBotMove picks a move for the side to move in pos at the given
// difficulty. pos is left exactly as it was found: every MakeRaw this
// function performs is paired with an UnmakeRaw before return. Returns
// types.NoMove if the side to move has no legal move.
func (s *Search) GetBotMove(pos *position.Position, difficulty config.Difficulty) Move {
	s.killers.clear()
	s.nodes = 0

	profile := config.ProfileFor(difficulty)
	rootMoves := movegen.AllLegalMoves(pos)
	if len(rootMoves) == 0 {
		return NoMove
	}

	maximizing := pos.SideToMove == White

	if profile.TwoStageRoot {
		rootMoves = s.twoStageOrder(pos, rootMoves, profile, maximizing)
	} else {
		rootMoves = orderMoves(&pos.Board, rootMoves, 0, &s.killers)
	}

	alpha, beta := -infinity, infinity
	best := rootMoves[0]
	var bestVal int
	if maximizing {
		bestVal = -infinity
	} else {
		bestVal = infinity
	}

	for _, m := range rootMoves {
		pos.MakeRaw(m)
		val := s.minimax(pos, profile.Depth-1, alpha, beta, !maximizing, profile.UseQuiescence, profile.Depth)
		pos.UnmakeRaw()

		if maximizing {
			if val > bestVal {
				bestVal = val
				best = m
			}
			if val > alpha {
				alpha = val
			}
		} else {
			if val < bestVal {
				bestVal = val
				best = m
			}
			if val < beta {
				beta = val
			}
		}
	}

	log.Debugf("bot move %s value=%d nodes=%d", best, bestVal, s.nodes)
	return best
}

// twoStageOrder is the Pro profile's root refinement: a shallow
// pre-score of every root move followed by a sort, so the full-depth
// pass sees its most promising candidates first and prunes harder.
func (s *Search) twoStageOrder(pos *position.Position, rootMoves []Move, profile config.Profile, maximizing bool) []Move {
	type scored struct {
		move  Move
		value int
	}
	preScored := make([]scored, len(rootMoves))

	for i, m := range rootMoves {
		pos.MakeRaw(m)
		val := s.minimax(pos, profile.PreScoreDepth-1, -infinity, infinity, !maximizing, profile.UseQuiescence, profile.PreScoreDepth)
		pos.UnmakeRaw()
		preScored[i] = scored{m, val}
	}

	sort.SliceStable(preScored, func(i, j int) bool {
		if maximizing {
			return preScored[i].value > preScored[j].value
		}
		return preScored[i].value < preScored[j].value
	})

	ordered := make([]Move, len(preScored))
	for i, ps := range preScored {
		ordered[i] = ps.move
	}
	return ordered
}
