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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelgames/chesscore/config"
	. "github.com/kestrelgames/chesscore/types"
)

func findMove(moves []Move, from, to Square) (Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

func TestEngine_NewGameHasTwentyLegalMoves(t *testing.T) {
	pos := NewGame()
	assert.Len(t, AllLegalMoves(pos), 20)
}

func TestEngine_FoolsMate(t *testing.T) {
	pos := NewGame()

	play := func(from, to Square) {
		m, ok := findMove(LegalMovesFrom(pos, from.Row, from.Col), from, to)
		assert.True(t, ok, "expected %v-%v to be legal", from, to)
		MakeMove(pos, m)
	}

	play(Square{6, 5}, Square{5, 5}) // f2-f3
	play(Square{1, 4}, Square{3, 4}) // e7-e5
	play(Square{6, 6}, Square{4, 6}) // g2-g4
	play(Square{0, 3}, Square{4, 7}) // Qd8-h4#

	assert.True(t, pos.IsGameOver)
	assert.Equal(t, "black-wins", pos.Result.String())
	assert.Equal(t, "Qh4#", pos.MoveList[len(pos.MoveList)-1])
}

func TestEngine_UndoRestoresPriorLegalMoveCount(t *testing.T) {
	pos := NewGame()
	before := len(AllLegalMoves(pos))

	m, _ := findMove(AllLegalMoves(pos), Square{6, 4}, Square{4, 4})
	MakeMove(pos, m)
	assert.True(t, UndoMove(pos))
	assert.Equal(t, before, len(AllLegalMoves(pos)))
}

func TestEngine_UndoOnFreshGameReturnsFalse(t *testing.T) {
	pos := NewGame()
	assert.False(t, UndoMove(pos))
}

func TestEngine_IsInCheckAndFindKing(t *testing.T) {
	pos := NewGame()
	assert.False(t, IsInCheck(&pos.Board, White))
	sq := FindKing(&pos.Board, White)
	assert.Equal(t, Square{7, 4}, sq)
}

func TestEngine_IsSquareAttackedAgreesWithIsInCheck(t *testing.T) {
	pos := NewGame()
	kingSq := FindKing(&pos.Board, White)
	assert.Equal(t, IsInCheck(&pos.Board, White), IsSquareAttacked(&pos.Board, kingSq.Row, kingSq.Col, White))
}

func TestEngine_PieceUnicodeAndValue(t *testing.T) {
	assert.NotEmpty(t, PieceUnicode(WhiteKing))
	assert.Equal(t, 900, PieceValue(WhiteQueen))
}

func TestEngine_GetBotMoveReturnsLegalMoveAtEveryDifficulty(t *testing.T) {
	for _, d := range []config.Difficulty{config.Beginner, config.Medium, config.Pro} {
		pos := NewGame()
		m := GetBotMove(pos, d)
		_, ok := findMove(AllLegalMoves(pos), m.From, m.To)
		assert.True(t, ok, "difficulty %v produced an illegal move", d)
	}
}
