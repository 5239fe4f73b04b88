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

package position

import (
	"github.com/kestrelgames/chesscore/assert"
	. "github.com/kestrelgames/chesscore/types"
)

// rookCastleSquares maps a king's castling destination to the rook's
// (from, to) squares.
func rookCastleSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case Square{7, 6}: // White O-O
		return Square{7, 7}, Square{7, 5}
	case Square{7, 2}: // White O-O-O
		return Square{7, 0}, Square{7, 3}
	case Square{0, 6}: // Black O-O
		return Square{0, 7}, Square{0, 5}
	case Square{0, 2}: // Black O-O-O
		return Square{0, 0}, Square{0, 3}
	default:
		panic("invalid castling destination square")
	}
}

// ApplyBoardEffect mutates board in place to reflect m's effect on
// piece placement only (no clocks, no castling-rights bookkeeping,
// no side-to-move flip). It is the single source of truth for "what a
// move does to the pieces", shared by the real make-move path and by
// movegen's legality filter, which applies a move to a scratch board to
// test whether the mover's own king ends up in check.
//
// Returns the piece that was captured, or Empty if none.
func ApplyBoardEffect(b *Board, mover Color, m Move) Piece {
	fromPiece := b.At(m.From)
	var captured Piece

	switch {
	case m.EnPassant:
		capSq := Square{m.From.Row, m.To.Col}
		captured = b.At(capSq)
		b.Set(capSq, Empty)
		b.Set(m.From, Empty)
		b.Set(m.To, fromPiece)
	case m.IsCastle():
		captured = Empty
		b.Set(m.From, Empty)
		b.Set(m.To, fromPiece)
		rFrom, rTo := rookCastleSquares(m.To)
		rook := b.At(rFrom)
		b.Set(rFrom, Empty)
		b.Set(rTo, rook)
	default:
		captured = b.At(m.To)
		b.Set(m.From, Empty)
		if m.Promotion {
			promo := m.PromotionPiece
			if promo == KindNone {
				promo = Queen
			}
			b.Set(m.To, MakePiece(mover, promo))
		} else {
			b.Set(m.To, fromPiece)
		}
	}
	return captured
}

// MakeRaw applies m to the position: pushes an undo delta, performs the
// board effect, and updates castling rights, en-passant target, halfmove
// clock, fullmove number and side to move.
// It does not compute SAN or terminal state — those need the post-move
// legal-move set, which belongs to the movegen/rules layer; search's
// inner loop uses MakeRaw/UnmakeRaw directly to avoid that cost.
func (p *Position) MakeRaw(m Move) Piece {
	assert.Assert(!m.IsNone(), "MakeRaw: move is none")

	mover := p.SideToMove
	fromPiece := p.Board.At(m.From)

	rec := undoRecord{
		move:                 m,
		movedPiece:           fromPiece,
		priorCastlingRights:  p.CastlingRights,
		priorEnPassantTarget: p.EnPassantTarget,
		priorHalfmoveClock:   p.HalfmoveClock,
		priorFullmoveNumber:  p.FullmoveNumber,
		priorIsGameOver:      p.IsGameOver,
		priorResult:          p.Result,
		capturedAt:           m.To,
	}
	if m.EnPassant {
		rec.capturedAt = Square{m.From.Row, m.To.Col}
	}
	if m.IsCastle() {
		rec.rookFrom, rec.rookTo = rookCastleSquares(m.To)
		rec.rookMoved = true
	}

	captured := ApplyBoardEffect(&p.Board, mover, m)
	rec.capturedPiece = captured

	// Castling rights: king move clears both of this side's rights;
	// rook move from (or capture on) a starting corner clears that
	// side's corresponding right.
	p.updateCastlingRights(m, fromPiece, captured)

	if m.DoublePush {
		p.EnPassantTarget = Square{m.From.Row + mover.PawnDirection(), m.From.Col}
	} else {
		p.EnPassantTarget = NoSquare
	}

	if captured != Empty || fromPiece.Kind() == Pawn {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	if mover == Black {
		p.FullmoveNumber++
	}

	p.SideToMove = mover.Flip()

	p.history = append(p.history, rec)
	return captured
}

func (p *Position) updateCastlingRights(m Move, fromPiece, captured Piece) {
	mover := fromPiece.Color()
	if fromPiece.Kind() == King {
		p.CastlingRights = p.CastlingRights.Without(BothFor(mover))
	}
	backRow := mover.BackRow()
	if fromPiece.Kind() == Rook && m.From.Row == backRow {
		if m.From.Col == 0 {
			p.CastlingRights = p.CastlingRights.Without(QueensideFor(mover))
		} else if m.From.Col == 7 {
			p.CastlingRights = p.CastlingRights.Without(KingsideFor(mover))
		}
	}
	if captured != Empty {
		victim := captured.Color()
		victimBackRow := victim.BackRow()
		if captured.Kind() == Rook && m.To.Row == victimBackRow {
			if m.To.Col == 0 {
				p.CastlingRights = p.CastlingRights.Without(QueensideFor(victim))
			} else if m.To.Col == 7 {
				p.CastlingRights = p.CastlingRights.Without(KingsideFor(victim))
			}
		}
	}
}

// UnmakeRaw reverses the most recent MakeRaw call. It is the counterpart
// used by search's inner loop; rules.UndoMove wraps it to also restore
// the higher-level move list / terminal flags / SAN bookkeeping.
// Fails silently (no-op) if there is nothing to undo.
func (p *Position) UnmakeRaw() bool {
	if len(p.history) == 0 {
		return false
	}
	rec := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	m := rec.move
	mover := rec.movedPiece.Color()

	switch {
	case m.EnPassant:
		p.Board.Set(m.To, Empty)
		p.Board.Set(m.From, rec.movedPiece)
		p.Board.Set(rec.capturedAt, rec.capturedPiece)
	case m.IsCastle():
		p.Board.Set(m.To, Empty)
		p.Board.Set(m.From, rec.movedPiece)
		p.Board.Set(rec.rookTo, Empty)
		p.Board.Set(rec.rookFrom, MakePiece(mover, Rook))
	default:
		p.Board.Set(m.To, rec.capturedPiece)
		p.Board.Set(m.From, rec.movedPiece)
	}

	p.CastlingRights = rec.priorCastlingRights
	p.EnPassantTarget = rec.priorEnPassantTarget
	p.HalfmoveClock = rec.priorHalfmoveClock
	p.FullmoveNumber = rec.priorFullmoveNumber
	p.IsGameOver = rec.priorIsGameOver
	p.Result = rec.priorResult
	p.SideToMove = mover

	return true
}

// LastCapturedPiece returns the piece captured by the most recent
// MakeRaw call (Empty if none, or if the history is empty).
func (p *Position) LastCapturedPiece() Piece {
	if len(p.history) == 0 {
		return Empty
	}
	return p.history[len(p.history)-1].capturedPiece
}
