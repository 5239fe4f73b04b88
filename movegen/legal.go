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

package movegen

import (
	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

// IsLegal reports whether applying m to a scratch copy of p's board
// leaves the mover's own king safe. It never mutates p; only a
// throwaway Board copy (cheap, fixed-size array) is touched, so it
// carries none of MakeRaw's bookkeeping cost.
func IsLegal(p *position.Position, m Move) bool {
	mover := p.SideToMove
	scratch := p.Board
	position.ApplyBoardEffect(&scratch, mover, m)
	return !IsInCheck(&scratch, mover)
}

// AllLegalMoves returns every legal move for the side to move.
func AllLegalMoves(p *position.Position) []Move {
	pseudo := GenerateAllPseudoLegal(p)
	moves := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if IsLegal(p, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// LegalMovesFrom returns every legal move originating at (r, c).
func LegalMovesFrom(p *position.Position, r, c int) []Move {
	pseudo := GeneratePseudoLegalFrom(p, Square{r, c})
	moves := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if IsLegal(p, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasAnyLegalMove reports whether the side to move has at least one
// legal move, without allocating the full move list. Used by terminal
// detection (checkmate vs. stalemate) where only the count's zero-ness
// matters.
func HasAnyLegalMove(p *position.Position) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			piece := p.Board[r][c]
			if piece == Empty || piece.Color() != p.SideToMove {
				continue
			}
			for _, m := range GeneratePseudoLegalFrom(p, Square{r, c}) {
				if IsLegal(p, m) {
					return true
				}
			}
		}
	}
	return false
}
