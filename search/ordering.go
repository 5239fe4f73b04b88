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
	"sort"

	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

// moveScore ranks m for ordering purposes: MVV-LVA for captures,
// flat bonuses for promotions, killer moves and castling, plus a small
// central-square bias so quiet moves still order sensibly.
func moveScore(b *position.Board, m Move, ply int, killers *killerTable) int {
	score := 0

	if m.Capture {
		attacker := b.At(m.From)
		var victimValue int
		if m.EnPassant {
			victimValue = Pawn.Value()
		} else {
			victimValue = b.At(m.To).Kind().Value()
		}
		score += 10000 + 10*victimValue - attacker.Kind().Value()
	}
	if m.Promotion {
		score += 9000
	}
	if killers != nil && killers.isKiller(ply, m) {
		score += 5000
	}
	if m.IsCastle() {
		score += 3000
	}

	rowDist := math.Abs(float64(m.To.Row) - 3.5)
	colDist := math.Abs(float64(m.To.Col) - 3.5)
	score += int(5 * (7 - (rowDist + colDist)))

	return score
}

// orderMoves sorts moves descending by moveScore, in place, and
// returns the same slice for convenient chaining.
func orderMoves(b *position.Board, moves []Move, ply int, killers *killerTable) []Move {
	sort.SliceStable(moves, func(i, j int) bool {
		return moveScore(b, moves[i], ply, killers) > moveScore(b, moves[j], ply, killers)
	})
	return moves
}

// captureOrPromotion reports whether m is the kind of move quiescence
// search continues to explore past the nominal horizon.
func captureOrPromotion(m Move) bool {
	return m.Capture || m.Promotion
}
