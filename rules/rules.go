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

// Package rules orchestrates the rules engine's only two mutating
// operations, MakeMove and UndoMove, on top of position's cheap delta
// make/unmake and movegen's legality and SAN support. Search bypasses
// this package and drives position.MakeRaw/UnmakeRaw directly to avoid
// paying for notation and terminal-state detection in its inner loop.
package rules

import (
	"github.com/kestrelgames/chesscore/logging"
	"github.com/kestrelgames/chesscore/movegen"
	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

var log = logging.Get("rules")

// Result reports the outcome of a single MakeMove call
type Result struct {
	Notation string
	Captured Piece
	InCheck  bool
	GameOver bool
	Outcome  position.Result
}

// MakeMove applies a legal move to pos, returning its notation,
// capture, check and terminal-state outcome. Calling it with a move
// not drawn from movegen.LegalMovesFrom/AllLegalMoves is undefined
// behavior: the caller is responsible for legality.
func MakeMove(pos *position.Position, m Move) Result {
	preMoveLegal := movegen.AllLegalMoves(pos)
	notation := movegen.BuildSAN(pos, m, preMoveLegal)
	mover := pos.SideToMove

	captured := pos.MakeRaw(m)
	if captured != Empty {
		if mover == White {
			pos.CapturedBlack = append(pos.CapturedBlack, captured)
		} else {
			pos.CapturedWhite = append(pos.CapturedWhite, captured)
		}
	}

	opponentInCheck := movegen.IsInCheck(&pos.Board, pos.SideToMove)
	opponentHasMove := movegen.HasAnyLegalMove(pos)

	switch {
	case !opponentHasMove && opponentInCheck:
		notation += "#"
	case opponentInCheck:
		notation += "+"
	}
	pos.MoveList = append(pos.MoveList, notation)

	result := Result{
		Notation: notation,
		Captured: captured,
		InCheck:  opponentInCheck,
	}

	switch {
	case !opponentHasMove && opponentInCheck:
		pos.IsGameOver = true
		if mover == White {
			pos.Result = position.WhiteWins
		} else {
			pos.Result = position.BlackWins
		}
	case !opponentHasMove:
		pos.IsGameOver = true
		pos.Result = position.Draw
	case pos.Board.HasInsufficientMaterial():
		pos.IsGameOver = true
		pos.Result = position.Draw
	case pos.HalfmoveClock >= 100:
		pos.IsGameOver = true
		pos.Result = position.Draw
	default:
		pos.IsGameOver = false
		pos.Result = position.Unset
	}

	result.GameOver = pos.IsGameOver
	result.Outcome = pos.Result
	log.Debugf("%s (%s) game_over=%v result=%s", notation, m, pos.IsGameOver, pos.Result)
	return result
}

// UndoMove reverses the most recent MakeMove, also truncating the move
// list and the captured-piece list it appended to. Returns false (no-op)
// if there is nothing to undo.
func UndoMove(pos *position.Position) bool {
	if len(pos.MoveList) == 0 {
		return false
	}
	capturedByLastMove := pos.LastCapturedPiece()
	moverOfLastMove := pos.SideToMove.Flip()

	if !pos.UnmakeRaw() {
		return false
	}

	pos.MoveList = pos.MoveList[:len(pos.MoveList)-1]
	if capturedByLastMove != Empty {
		if moverOfLastMove == White {
			pos.CapturedBlack = pos.CapturedBlack[:len(pos.CapturedBlack)-1]
		} else {
			pos.CapturedWhite = pos.CapturedWhite[:len(pos.CapturedWhite)-1]
		}
	}
	return true
}
