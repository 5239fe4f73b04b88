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

// GeneratePseudoLegalFrom generates every pseudo-legal move for the
// piece standing on sq, for the side to move. Pieces not belonging to
// the side to move, or an empty square, yield nothing.
func GeneratePseudoLegalFrom(p *position.Position, sq Square) []Move {
	piece := p.Board.At(sq)
	if piece == Empty || piece.Color() != p.SideToMove {
		return nil
	}
	var moves []Move
	switch piece.Kind() {
	case Pawn:
		genPawnMoves(p, sq, &moves)
	case Knight:
		genOffsetMoves(p, sq, knightOffsets, &moves)
	case Bishop:
		genSlidingMoves(p, sq, bishopDirs, &moves)
	case Rook:
		genSlidingMoves(p, sq, rookDirs, &moves)
	case Queen:
		genSlidingMoves(p, sq, bishopDirs, &moves)
		genSlidingMoves(p, sq, rookDirs, &moves)
	case King:
		genOffsetMoves(p, sq, kingOffsets, &moves)
		genCastling(p, sq, &moves)
	}
	return moves
}

// GenerateAllPseudoLegal generates every pseudo-legal move for every
// piece of the side to move.
func GenerateAllPseudoLegal(p *position.Position) []Move {
	var moves []Move
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			piece := p.Board[r][c]
			if piece == Empty || piece.Color() != p.SideToMove {
				continue
			}
			moves = append(moves, GeneratePseudoLegalFrom(p, Square{r, c})...)
		}
	}
	return moves
}

func genPawnMoves(p *position.Position, from Square, moves *[]Move) {
	mover := p.SideToMove
	dir := mover.PawnDirection()
	promoRow := mover.PromotionRow()

	oneAhead := from.Add(dir, 0)
	if oneAhead.OnBoard() && p.Board.At(oneAhead) == Empty {
		addPawnAdvance(from, oneAhead, promoRow, moves)

		if from.Row == mover.StartingPawnRow() {
			twoAhead := from.Add(2*dir, 0)
			if p.Board.At(twoAhead) == Empty {
				*moves = append(*moves, Move{From: from, To: twoAhead, DoublePush: true})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Add(dir, dc)
		if !to.OnBoard() {
			continue
		}
		target := p.Board.At(to)
		if target != Empty && target.Color() != mover {
			addPawnCapture(from, to, promoRow, moves)
		} else if target == Empty && to == p.EnPassantTarget {
			*moves = append(*moves, Move{From: from, To: to, Capture: true, EnPassant: true})
		}
	}
}

func addPawnAdvance(from, to Square, promoRow int, moves *[]Move) {
	if to.Row == promoRow {
		for _, k := range []PieceKind{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, Move{From: from, To: to, Promotion: true, PromotionPiece: k})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to})
}

func addPawnCapture(from, to Square, promoRow int, moves *[]Move) {
	if to.Row == promoRow {
		for _, k := range []PieceKind{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, Move{From: from, To: to, Capture: true, Promotion: true, PromotionPiece: k})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Capture: true})
}

func genOffsetMoves(p *position.Position, from Square, offsets [8][2]int, moves *[]Move) {
	mover := p.SideToMove
	for _, o := range offsets {
		to := from.Add(o[0], o[1])
		if !to.OnBoard() {
			continue
		}
		target := p.Board.At(to)
		if target == Empty {
			*moves = append(*moves, Move{From: from, To: to})
		} else if target.Color() != mover {
			*moves = append(*moves, Move{From: from, To: to, Capture: true})
		}
	}
}

func genSlidingMoves(p *position.Position, from Square, dirs [4][2]int, moves *[]Move) {
	mover := p.SideToMove
	for _, d := range dirs {
		to := from.Add(d[0], d[1])
		for to.OnBoard() {
			target := p.Board.At(to)
			if target == Empty {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if target.Color() != mover {
					*moves = append(*moves, Move{From: from, To: to, Capture: true})
				}
				break
			}
			to = to.Add(d[0], d[1])
		}
	}
}

// genCastling appends the two castling moves when legal: the
// appropriate right is held, the squares between king and rook are
// empty, and the king's source, pass-through and destination squares
// are all unattacked.
func genCastling(p *position.Position, from Square, moves *[]Move) {
	mover := p.SideToMove
	backRow := mover.BackRow()
	if from != (Square{backRow, 4}) {
		return
	}
	if IsSquareAttacked(&p.Board, from.Row, from.Col, mover) {
		return
	}

	if p.CastlingRights.Has(KingsideFor(mover)) {
		f := Square{backRow, 5}
		g := Square{backRow, 6}
		h := Square{backRow, 7}
		if p.Board.At(f) == Empty && p.Board.At(g) == Empty &&
			p.Board.At(h) == MakePiece(mover, Rook) &&
			!IsSquareAttacked(&p.Board, f.Row, f.Col, mover) &&
			!IsSquareAttacked(&p.Board, g.Row, g.Col, mover) {
			*moves = append(*moves, Move{From: from, To: g, CastleKing: true})
		}
	}
	if p.CastlingRights.Has(QueensideFor(mover)) {
		d := Square{backRow, 3}
		c := Square{backRow, 2}
		bSq := Square{backRow, 1}
		a := Square{backRow, 0}
		if p.Board.At(d) == Empty && p.Board.At(c) == Empty && p.Board.At(bSq) == Empty &&
			p.Board.At(a) == MakePiece(mover, Rook) &&
			!IsSquareAttacked(&p.Board, d.Row, d.Col, mover) &&
			!IsSquareAttacked(&p.Board, c.Row, c.Col, mover) {
			*moves = append(*moves, Move{From: from, To: c, CastleQueen: true})
		}
	}
}
