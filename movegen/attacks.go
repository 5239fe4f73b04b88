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

// Package movegen generates pseudo-legal and legal moves for a
// position: per-piece pseudo-legal generation, the square-attack
// query, and the legality filter that rejects moves leaving the
// mover's own king in check.
package movegen

import (
	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var rookDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsSquareAttacked reports whether any piece of the opponent of
// defender attacks (r, c). Implemented by projecting reverse rays (pawn
// capture offsets using the defender's forward direction, knight
// offsets, sliding diagonals/orthogonals, king adjacency) from the
// target square and looking for a matching enemy piece as the first
// blocker. Does not consult en-passant target or castling rights,
// since neither can make or break a square attack.
func IsSquareAttacked(b *position.Board, r, c int, defender Color) bool {
	attacker := defender.Flip()
	target := Square{r, c}

	// Pawns: an enemy pawn attacks (r,c) if it sits one row back (from
	// the attacker's own advance direction) on an adjacent file.
	pawnRow := r - attacker.PawnDirection()
	for _, dc := range [2]int{-1, 1} {
		sq := Square{pawnRow, c + dc}
		if sq.OnBoard() && b.At(sq) == MakePiece(attacker, Pawn) {
			return true
		}
	}

	for _, o := range knightOffsets {
		sq := target.Add(o[0], o[1])
		if sq.OnBoard() && b.At(sq) == MakePiece(attacker, Knight) {
			return true
		}
	}

	for _, o := range kingOffsets {
		sq := target.Add(o[0], o[1])
		if sq.OnBoard() && b.At(sq) == MakePiece(attacker, King) {
			return true
		}
	}

	if rayAttacked(b, target, bishopDirs, attacker, Bishop, Queen) {
		return true
	}
	if rayAttacked(b, target, rookDirs, attacker, Rook, Queen) {
		return true
	}
	return false
}

// rayAttacked projects each direction from target until the first
// occupied square; it's an attacker iff that square holds a piece of
// attacker's color with kind1 or kind2.
func rayAttacked(b *position.Board, target Square, dirs [4][2]int, attacker Color, kind1, kind2 PieceKind) bool {
	for _, d := range dirs {
		sq := target.Add(d[0], d[1])
		for sq.OnBoard() {
			p := b.At(sq)
			if p != Empty {
				if p.Color() == attacker && (p.Kind() == kind1 || p.Kind() == kind2) {
					return true
				}
				break
			}
			sq = sq.Add(d[0], d[1])
		}
	}
	return false
}

// IsInCheck reports whether side's king is currently attacked.
func IsInCheck(b *position.Board, side Color) bool {
	king := b.FindKing(side)
	if king.IsNone() {
		return false
	}
	return IsSquareAttacked(b, king.Row, king.Col, side)
}
