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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

func TestEvaluator_InitialPositionIsBalanced(t *testing.T) {
	e := New()
	pos := position.NewGame()
	assert.Equal(t, 0, e.Evaluate(pos))
}

func TestEvaluator_MaterialAdvantageFavorsWhite(t *testing.T) {
	e := New()
	pos := position.NewGame()
	pos.Board.Set(Square{1, 0}, Empty) // remove Black's a7 pawn
	assert.Greater(t, e.Evaluate(pos), 0)
}

func TestEvaluator_BishopPairBonusIsSymmetric(t *testing.T) {
	e := New()

	var empty position.Board
	empty.Set(Square{7, 4}, MakePiece(White, King))
	empty.Set(Square{0, 4}, MakePiece(Black, King))
	empty.Set(Square{7, 2}, MakePiece(White, Bishop))
	empty.Set(Square{7, 5}, MakePiece(White, Bishop))

	pos := &position.Position{Board: empty, SideToMove: White, EnPassantTarget: NoSquare}
	assert.Greater(t, e.Evaluate(pos), 0)
}

func TestEvaluator_PassedPawnFavorsAdvancedSide(t *testing.T) {
	e := New()

	var nearPromotion, farFromPromotion position.Board
	nearPromotion.Set(Square{7, 4}, MakePiece(White, King))
	nearPromotion.Set(Square{0, 4}, MakePiece(Black, King))
	nearPromotion.Set(Square{1, 0}, MakePiece(White, Pawn))

	farFromPromotion.Set(Square{7, 4}, MakePiece(White, King))
	farFromPromotion.Set(Square{0, 4}, MakePiece(Black, King))
	farFromPromotion.Set(Square{6, 0}, MakePiece(White, Pawn))

	near := &position.Position{Board: nearPromotion, SideToMove: White, EnPassantTarget: NoSquare}
	far := &position.Position{Board: farFromPromotion, SideToMove: White, EnPassantTarget: NoSquare}

	assert.Greater(t, e.Evaluate(near), e.Evaluate(far))
}

func TestIsEndgame_NoQueensIsAlwaysEndgame(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{0, 4}, MakePiece(Black, King))
	b.Set(Square{7, 0}, MakePiece(White, Rook))
	b.Set(Square{7, 1}, MakePiece(White, Rook))
	assert.True(t, isEndgame(&b))
}

func TestIsEndgame_QueensWithRooksIsNotEndgame(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{0, 4}, MakePiece(Black, King))
	b.Set(Square{7, 3}, MakePiece(White, Queen))
	b.Set(Square{7, 0}, MakePiece(White, Rook))
	assert.False(t, isEndgame(&b))
}
