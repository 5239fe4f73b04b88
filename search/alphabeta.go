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

package search

import (
	"math"

	"github.com/kestrelgames/chesscore/config"
	"github.com/kestrelgames/chesscore/movegen"
	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

const infinity = math.MaxInt32 / 2

// minimax implements fail-hard alpha-beta over pos, mutated and
// restored in place via MakeRaw/UnmakeRaw. maximizing tracks whether
// White is to choose the best child at this node; maxDepth is the
// search's nominal horizon, used to compute ply for mate scoring and
// killer-move indexing.
func (s *Search) minimax(pos *position.Position, depth int, alpha, beta int, maximizing, useQuiescence bool, maxDepth int) int {
	ply := maxDepth - depth
	s.nodes++

	if depth == 0 {
		if useQuiescence {
			return s.quiescence(pos, alpha, beta, maximizing, config.Settings.Search.QuiescenceMaxPlies)
		}
		return s.eval.Evaluate(pos)
	}

	moves := movegen.AllLegalMoves(pos)
	if len(moves) == 0 {
		mate := config.Settings.Search.MateScore
		if movegen.IsInCheck(&pos.Board, pos.SideToMove) {
			if maximizing {
				return -mate + ply
			}
			return mate - ply
		}
		return 0
	}

	moves = orderMoves(&pos.Board, moves, ply, &s.killers)

	if maximizing {
		value := -infinity
		for _, m := range moves {
			pos.MakeRaw(m)
			score := s.minimax(pos, depth-1, alpha, beta, false, useQuiescence, maxDepth)
			pos.UnmakeRaw()

			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				if !m.Capture {
					s.killers.store(ply, m)
				}
				break
			}
		}
		return value
	}

	value := infinity
	for _, m := range moves {
		pos.MakeRaw(m)
		score := s.minimax(pos, depth-1, alpha, beta, true, useQuiescence, maxDepth)
		pos.UnmakeRaw()

		if score < value {
			value = score
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			if !m.Capture {
				s.killers.store(ply, m)
			}
			break
		}
	}
	return value
}

// quiescence extends search past the nominal horizon over captures
// and promotions only, bounded by budget plies, to avoid misjudging a
// position mid-exchange.
func (s *Search) quiescence(pos *position.Position, alpha, beta int, maximizing bool, budget int) int {
	s.nodes++
	standPat := s.eval.Evaluate(pos)
	if budget <= 0 {
		return standPat
	}

	if maximizing {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return standPat
		}
		if standPat < beta {
			beta = standPat
		}
	}

	var tactical []Move
	for _, m := range movegen.AllLegalMoves(pos) {
		if captureOrPromotion(m) {
			tactical = append(tactical, m)
		}
	}
	if len(tactical) == 0 {
		return standPat
	}
	tactical = orderMoves(&pos.Board, tactical, 0, nil)

	if maximizing {
		value := standPat
		for _, m := range tactical {
			pos.MakeRaw(m)
			score := s.quiescence(pos, alpha, beta, false, budget-1)
			pos.UnmakeRaw()

			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := standPat
	for _, m := range tactical {
		pos.MakeRaw(m)
		score := s.quiescence(pos, alpha, beta, true, budget-1)
		pos.UnmakeRaw()

		if score < value {
			value = score
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}
	return value
}
