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
	"strings"

	. "github.com/kestrelgames/chesscore/types"
)

// Result is the outcome of a finished game
type Result int

const (
	Unset Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "white-wins"
	case BlackWins:
		return "black-wins"
	case Draw:
		return "draw"
	default:
		return "unset"
	}
}

// Position is the complete game state required to compute and resume
// play. A UI collaborator reads the exported fields for display and
// never writes them directly; it is mutated only through
// rules.MakeMove/UndoMove.
type Position struct {
	Board           Board
	SideToMove      Color
	CastlingRights  CastlingRights
	EnPassantTarget Square // NoSquare if not set
	HalfmoveClock   int
	FullmoveNumber  int

	CapturedWhite []Piece // pieces White has lost (captured by Black)
	CapturedBlack []Piece // pieces Black has lost (captured by White)

	MoveList []string // SAN history

	IsGameOver bool
	Result     Result

	history []undoRecord
}

// undoRecord stores the minimum needed to reverse one ply: the
// moved/captured pieces plus the prior scalar state, restored in
// reverse by UndoMove. This keeps make/unmake allocation-free in the
// search hot path, unlike a full per-ply deep copy.
type undoRecord struct {
	move Move

	movedPiece    Piece
	capturedPiece Piece
	capturedAt    Square // differs from move.To only for en passant

	rookFrom, rookTo Square // castling only
	rookMoved        bool

	priorCastlingRights  CastlingRights
	priorEnPassantTarget Square
	priorHalfmoveClock   int
	priorFullmoveNumber  int

	priorIsGameOver bool
	priorResult     Result

	sanAppended bool // not set by any code path; rules.UndoMove truncates MoveList on its own
}

// NewGame returns a Position set up in the standard initial arrangement,
// new_game().
func NewGame() *Position {
	return &Position{
		Board:           NewInitialBoard(),
		SideToMove:      White,
		CastlingRights:  CastlingAll,
		EnPassantTarget: NoSquare,
		HalfmoveClock:   0,
		FullmoveNumber:  1,
		Result:          Unset,
	}
}

// PliesPlayed returns the number of plies applied since the position
// was created, equivalently the depth of the undo history.
func (p *Position) PliesPlayed() int {
	return len(p.history)
}

// String renders the board plus a side-to-move/result summary line.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.Board.String())
	sb.WriteString(p.SideToMove.String())
	sb.WriteString(" to move")
	if p.IsGameOver {
		sb.WriteString(", result=")
		sb.WriteString(p.Result.String())
	}
	return sb.String()
}
