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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kestrelgames/chesscore/types"
)

func TestNewGame_StartingArrangement(t *testing.T) {
	p := NewGame()
	assert.Equal(t, White, p.SideToMove)
	assert.Equal(t, CastlingAll, p.CastlingRights)
	assert.True(t, p.EnPassantTarget.IsNone())
	assert.Equal(t, 1, p.FullmoveNumber)
	assert.Equal(t, Square{7, 4}, p.Board.FindKing(White))
	assert.Equal(t, Square{0, 4}, p.Board.FindKing(Black))
}

func TestMakeRawUnmakeRaw_QuietMoveRoundTrips(t *testing.T) {
	p := NewGame()
	before := p.String()

	m := Move{From: Square{6, 4}, To: Square{4, 4}, DoublePush: true}
	captured := p.MakeRaw(m)
	assert.Equal(t, Empty, captured)
	assert.Equal(t, Black, p.SideToMove)
	assert.Equal(t, Square{5, 4}, p.EnPassantTarget)

	assert.True(t, p.UnmakeRaw())
	assert.Equal(t, before, p.String())
	assert.Equal(t, 0, p.PliesPlayed())
}

func TestMakeRawUnmakeRaw_CaptureRoundTrips(t *testing.T) {
	p := NewGame()
	p.MakeRaw(Move{From: Square{6, 4}, To: Square{4, 4}, DoublePush: true})
	p.MakeRaw(Move{From: Square{1, 3}, To: Square{3, 3}, DoublePush: true})
	before := p.String()

	capture := Move{From: Square{4, 4}, To: Square{3, 3}, Capture: true}
	captured := p.MakeRaw(capture)
	assert.Equal(t, BlackPawn, captured)
	assert.Equal(t, 0, p.HalfmoveClock)

	assert.True(t, p.UnmakeRaw())
	assert.Equal(t, before, p.String())
}

func TestMakeRawUnmakeRaw_CastlingRoundTrips(t *testing.T) {
	var b Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{7, 7}, MakePiece(White, Rook))
	b.Set(Square{0, 4}, MakePiece(Black, King))
	p := &Position{Board: b, SideToMove: White, CastlingRights: CastlingAll, EnPassantTarget: NoSquare}
	before := p.String()

	castle := Move{From: Square{7, 4}, To: Square{7, 6}, CastleKing: true}
	p.MakeRaw(castle)
	assert.Equal(t, WhiteRook, p.Board.At(Square{7, 5}))
	assert.Equal(t, Empty, p.Board.At(Square{7, 7}))
	assert.False(t, p.CastlingRights.Has(WhiteOO))
	assert.False(t, p.CastlingRights.Has(WhiteOOO))

	assert.True(t, p.UnmakeRaw())
	assert.Equal(t, before, p.String())
	assert.Equal(t, CastlingAll, p.CastlingRights)
}

func TestMakeRawUnmakeRaw_EnPassantRoundTrips(t *testing.T) {
	var b Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{0, 4}, MakePiece(Black, King))
	b.Set(Square{3, 3}, MakePiece(White, Pawn))
	b.Set(Square{3, 4}, MakePiece(Black, Pawn))
	p := &Position{Board: b, SideToMove: White, EnPassantTarget: Square{2, 4}}
	before := p.String()

	ep := Move{From: Square{3, 3}, To: Square{2, 4}, Capture: true, EnPassant: true}
	captured := p.MakeRaw(ep)
	assert.Equal(t, BlackPawn, captured)
	assert.Equal(t, Empty, p.Board.At(Square{3, 4}))
	assert.Equal(t, WhitePawn, p.Board.At(Square{2, 4}))

	assert.True(t, p.UnmakeRaw())
	assert.Equal(t, before, p.String())
}

func TestCastlingRights_RookCaptureClearsVictimsRight(t *testing.T) {
	var b Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{0, 4}, MakePiece(Black, King))
	b.Set(Square{1, 7}, MakePiece(White, Rook))
	b.Set(Square{0, 7}, MakePiece(Black, Rook))
	p := &Position{Board: b, SideToMove: White, CastlingRights: CastlingAll, EnPassantTarget: NoSquare}

	p.MakeRaw(Move{From: Square{1, 7}, To: Square{0, 7}, Capture: true})
	assert.False(t, p.CastlingRights.Has(BlackOO))
	assert.True(t, p.CastlingRights.Has(WhiteOO))
}

func TestHasInsufficientMaterial(t *testing.T) {
	var kingsOnly Board
	kingsOnly.Set(Square{7, 4}, MakePiece(White, King))
	kingsOnly.Set(Square{0, 4}, MakePiece(Black, King))
	assert.True(t, kingsOnly.HasInsufficientMaterial())

	var withMinor Board
	withMinor.Set(Square{7, 4}, MakePiece(White, King))
	withMinor.Set(Square{0, 4}, MakePiece(Black, King))
	withMinor.Set(Square{7, 2}, MakePiece(White, Bishop))
	assert.True(t, withMinor.HasInsufficientMaterial())

	var sameColorBishops Board
	sameColorBishops.Set(Square{7, 4}, MakePiece(White, King))
	sameColorBishops.Set(Square{0, 4}, MakePiece(Black, King))
	sameColorBishops.Set(Square{7, 2}, MakePiece(White, Bishop)) // c1, dark square
	sameColorBishops.Set(Square{0, 5}, MakePiece(Black, Bishop)) // f8, dark square
	assert.True(t, sameColorBishops.HasInsufficientMaterial())

	var oppositeColorBishops Board
	oppositeColorBishops.Set(Square{7, 4}, MakePiece(White, King))
	oppositeColorBishops.Set(Square{0, 4}, MakePiece(Black, King))
	oppositeColorBishops.Set(Square{7, 2}, MakePiece(White, Bishop)) // c1, dark square
	oppositeColorBishops.Set(Square{0, 2}, MakePiece(Black, Bishop)) // c8, light square
	assert.False(t, oppositeColorBishops.HasInsufficientMaterial())

	var withPawn Board
	withPawn.Set(Square{7, 4}, MakePiece(White, King))
	withPawn.Set(Square{0, 4}, MakePiece(Black, King))
	withPawn.Set(Square{6, 0}, MakePiece(White, Pawn))
	assert.False(t, withPawn.HasInsufficientMaterial())
}
