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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelgames/chesscore/config"
	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

func TestSearch_GetBotMoveReturnsLegalMoveFromInitialPosition(t *testing.T) {
	s := New()
	pos := position.NewGame()

	before := pos.String()
	m := s.GetBotMove(pos, config.Beginner)
	assert.False(t, m.IsNone())
	assert.Equal(t, before, pos.String(), "search must leave the position unchanged")
}

func TestSearch_GetBotMoveFindsMateInOne(t *testing.T) {
	// Black king boxed in on a8 by its own a7/b7 pawns; White queen on h6
	// mates on the back rank via f8 or h8. Both score the same mate, and
	// move ordering's central bias puts f8 first, so f8 is chosen.
	var b position.Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{0, 0}, MakePiece(Black, King))
	b.Set(Square{1, 0}, MakePiece(Black, Pawn))
	b.Set(Square{1, 1}, MakePiece(Black, Pawn))
	b.Set(Square{2, 7}, MakePiece(White, Queen))

	pos := &position.Position{Board: b, SideToMove: White, EnPassantTarget: NoSquare}

	s := New()
	m := s.GetBotMove(pos, config.Medium)
	assert.Equal(t, Square{2, 7}, m.From)
	assert.Equal(t, Square{0, 5}, m.To, "Qh6-f8 delivers back-rank mate")
}

func TestKillerTable_StoreAndIsKiller(t *testing.T) {
	var k killerTable
	k.clear()

	m1 := Move{From: Square{6, 4}, To: Square{4, 4}}
	m2 := Move{From: Square{6, 3}, To: Square{4, 3}}

	assert.False(t, k.isKiller(2, m1))
	k.store(2, m1)
	assert.True(t, k.isKiller(2, m1))

	k.store(2, m2)
	assert.True(t, k.isKiller(2, m1))
	assert.True(t, k.isKiller(2, m2))

	m3 := Move{From: Square{6, 2}, To: Square{4, 2}}
	k.store(2, m3)
	assert.False(t, k.isKiller(2, m1), "oldest killer slot is evicted first")
	assert.True(t, k.isKiller(2, m3))
}

func TestKillerTable_OutOfRangePlyIsSafe(t *testing.T) {
	var k killerTable
	k.clear()
	m := Move{From: Square{6, 4}, To: Square{4, 4}}
	k.store(-1, m)
	k.store(maxKillerPly, m)
	assert.False(t, k.isKiller(-1, m))
	assert.False(t, k.isKiller(maxKillerPly, m))
}

func TestOrderMoves_CapturesBeforeQuietMoves(t *testing.T) {
	var b position.Board
	b.Set(Square{4, 4}, MakePiece(White, Knight))
	b.Set(Square{2, 3}, MakePiece(Black, Pawn))

	quiet := Move{From: Square{4, 4}, To: Square{6, 5}}
	capture := Move{From: Square{4, 4}, To: Square{2, 3}, Capture: true}

	ordered := orderMoves(&b, []Move{quiet, capture}, 0, nil)
	assert.Equal(t, capture, ordered[0])
}

func TestOrderMoves_KillerOutranksQuietNonCentralMove(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 1}, MakePiece(White, Knight))

	var k killerTable
	k.clear()
	killerMove := Move{From: Square{7, 1}, To: Square{5, 0}}
	other := Move{From: Square{7, 1}, To: Square{5, 2}}
	k.store(0, killerMove)

	ordered := orderMoves(&b, []Move{other, killerMove}, 0, &k)
	assert.Equal(t, killerMove, ordered[0])
}

func TestSearch_BeginnerProfileHasNoQuiescence(t *testing.T) {
	p := config.ProfileFor(config.Beginner)
	assert.False(t, p.UseQuiescence)
	assert.Equal(t, 2, p.Depth)
}

func TestSearch_ProProfileUsesTwoStageRoot(t *testing.T) {
	p := config.ProfileFor(config.Pro)
	assert.True(t, p.TwoStageRoot)
	assert.Greater(t, p.Depth, config.ProfileFor(config.Medium).Depth)
}
