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

// Package engine is the single entry point a UI collaborator imports:
// it re-exports exactly the operations a caller needs to run a game
// (position/move lifecycle, check and attack queries, display helpers,
// and bot move selection) without reaching into position, movegen,
// rules, evaluator or search directly.
package engine

import (
	"github.com/kestrelgames/chesscore/config"
	"github.com/kestrelgames/chesscore/movegen"
	"github.com/kestrelgames/chesscore/position"
	"github.com/kestrelgames/chesscore/rules"
	"github.com/kestrelgames/chesscore/search"
	. "github.com/kestrelgames/chesscore/types"
)

// Position is the game state a caller holds and passes back into every
// other call in this package. Its exported fields are read-only from
// the caller's side; they are mutated only through MakeMove/UndoMove.
type Position = position.Position

// MoveResult reports what a MakeMove call did, for UI display.
type MoveResult = rules.Result

// NewGame returns a Position in the standard initial arrangement.
func NewGame() *Position {
	return position.NewGame()
}

// LegalMovesFrom returns the legal moves starting at (r, c) for the
// side to move in pos.
func LegalMovesFrom(pos *Position, r, c int) []Move {
	return movegen.LegalMovesFrom(pos, r, c)
}

// AllLegalMoves returns every legal move for the side to move in pos.
func AllLegalMoves(pos *Position) []Move {
	return movegen.AllLegalMoves(pos)
}

// MakeMove applies m to pos, drawn from LegalMovesFrom or AllLegalMoves
// on pos. Passing a move that isn't currently legal is an invariant
// violation and the behavior is undefined.
func MakeMove(pos *Position, m Move) MoveResult {
	return rules.MakeMove(pos, m)
}

// UndoMove reverses the most recent move, returning false if pos has
// no move to undo.
func UndoMove(pos *Position) bool {
	return rules.UndoMove(pos)
}

// IsInCheck reports whether side's king is currently attacked on board.
func IsInCheck(board *position.Board, side Color) bool {
	return movegen.IsInCheck(board, side)
}

// FindKing returns the square of side's king on board, or NoSquare if
// absent.
func FindKing(board *position.Board, side Color) Square {
	return board.FindKing(side)
}

// IsSquareAttacked reports whether any piece belonging to the opponent
// of defender attacks (r, c) on board.
func IsSquareAttacked(board *position.Board, r, c int, defender Color) bool {
	return movegen.IsSquareAttacked(board, r, c, defender)
}

// PieceUnicode returns the display glyph for p.
func PieceUnicode(p Piece) string {
	return p.Unicode()
}

// PieceValue returns the conventional material value of p in centipawns.
func PieceValue(p Piece) int {
	return p.Value()
}

// GetBotMove selects a move for the side to move in pos at the given
// difficulty, leaving pos unchanged on return. Returns types.NoMove if
// the side to move has no legal move.
func GetBotMove(pos *Position, difficulty config.Difficulty) Move {
	return search.New().GetBotMove(pos, difficulty)
}
