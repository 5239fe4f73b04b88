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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

func TestGenerateAllPseudoLegal_InitialPositionHasTwentyMoves(t *testing.T) {
	p := position.NewGame()
	assert.Len(t, GenerateAllPseudoLegal(p), 20)
}

func TestGeneratePseudoLegalFrom_WrongColorOrEmptyYieldsNothing(t *testing.T) {
	p := position.NewGame()
	assert.Empty(t, GeneratePseudoLegalFrom(p, Square{0, 4})) // Black king, White to move
	assert.Empty(t, GeneratePseudoLegalFrom(p, Square{4, 4})) // empty square
}

func TestGenPawnMoves_DoublePushOnlyFromStartingRow(t *testing.T) {
	var b position.Board
	b.Set(Square{6, 4}, MakePiece(White, Pawn))
	p := &position.Position{Board: b, SideToMove: White, EnPassantTarget: NoSquare}

	moves := GeneratePseudoLegalFrom(p, Square{6, 4})
	assert.Len(t, moves, 2)

	b.Set(Square{6, 4}, Empty)
	b.Set(Square{5, 4}, MakePiece(White, Pawn))
	p2 := &position.Position{Board: b, SideToMove: White, EnPassantTarget: NoSquare}
	moves2 := GeneratePseudoLegalFrom(p2, Square{5, 4})
	assert.Len(t, moves2, 1)
}

func TestGenPawnMoves_PromotionYieldsFourVariants(t *testing.T) {
	var b position.Board
	b.Set(Square{1, 0}, MakePiece(White, Pawn))
	p := &position.Position{Board: b, SideToMove: White, EnPassantTarget: NoSquare}

	moves := GeneratePseudoLegalFrom(p, Square{1, 0})
	assert.Len(t, moves, 4)
	for _, m := range moves {
		assert.True(t, m.Promotion)
		assert.Equal(t, Square{0, 0}, m.To)
	}
}

func TestGenPawnMoves_EnPassantCapture(t *testing.T) {
	var b position.Board
	b.Set(Square{3, 3}, MakePiece(White, Pawn))
	b.Set(Square{3, 4}, MakePiece(Black, Pawn))
	p := &position.Position{Board: b, SideToMove: White, EnPassantTarget: Square{2, 4}}

	moves := GeneratePseudoLegalFrom(p, Square{3, 3})
	found := false
	for _, m := range moves {
		if m.EnPassant {
			found = true
			assert.Equal(t, Square{2, 4}, m.To)
		}
	}
	assert.True(t, found, "en passant capture should be generated")
}

func TestGenCastling_AbsentWhenKingSquareAttacked(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{7, 7}, MakePiece(White, Rook))
	b.Set(Square{0, 4}, MakePiece(Black, Rook)) // attacks e1 down the e-file
	p := &position.Position{Board: b, SideToMove: White, CastlingRights: CastlingAll, EnPassantTarget: NoSquare}

	moves := LegalMovesFrom(p, 7, 4)
	for _, m := range moves {
		assert.False(t, m.CastleKing, "castling must be absent while in check")
	}
}

func TestGenCastling_AbsentWhenPassThroughSquareAttacked(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{7, 7}, MakePiece(White, Rook))
	b.Set(Square{0, 5}, MakePiece(Black, Rook)) // attacks f1
	p := &position.Position{Board: b, SideToMove: White, CastlingRights: CastlingAll, EnPassantTarget: NoSquare}

	moves := GeneratePseudoLegalFrom(p, Square{7, 4})
	for _, m := range moves {
		assert.False(t, m.CastleKing)
	}
}

func TestGenCastling_AvailableWhenClear(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{7, 7}, MakePiece(White, Rook))
	b.Set(Square{0, 4}, MakePiece(Black, King))
	p := &position.Position{Board: b, SideToMove: White, CastlingRights: CastlingAll, EnPassantTarget: NoSquare}

	moves := GeneratePseudoLegalFrom(p, Square{7, 4})
	found := false
	for _, m := range moves {
		if m.CastleKing {
			found = true
		}
	}
	assert.True(t, found)
}

func TestIsSquareAttacked_DoesNotConsultEnPassantOrCastlingRights(t *testing.T) {
	var b position.Board
	b.Set(Square{4, 4}, MakePiece(White, Rook))
	without := IsSquareAttacked(&b, 4, 0, Black)

	p := &position.Position{Board: b, EnPassantTarget: Square{2, 2}, CastlingRights: CastlingAll}
	with := IsSquareAttacked(&p.Board, 4, 0, Black)
	assert.Equal(t, without, with)
}

func TestAllLegalMoves_FiltersMovesThatLeaveKingInCheck(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{6, 4}, MakePiece(White, Rook))
	b.Set(Square{0, 4}, MakePiece(Black, Rook)) // pins the rook to the king
	p := &position.Position{Board: b, SideToMove: White, EnPassantTarget: NoSquare}

	moves := LegalMovesFrom(p, 6, 4)
	for _, m := range moves {
		assert.Equal(t, 4, m.To.Col, "a pinned rook may only move along the pin line")
	}
}

func TestHasAnyLegalMove_StalemateHasNone(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 7}, MakePiece(White, King))  // h1
	b.Set(Square{6, 5}, MakePiece(Black, King))  // f2
	b.Set(Square{5, 6}, MakePiece(Black, Queen)) // g3
	p := &position.Position{Board: b, SideToMove: White, EnPassantTarget: NoSquare}

	assert.False(t, IsInCheck(&b, White))
	assert.False(t, HasAnyLegalMove(p))
}

func TestBuildSAN_PawnCaptureAndPromotion(t *testing.T) {
	var b position.Board
	b.Set(Square{1, 6}, MakePiece(White, Pawn))
	b.Set(Square{0, 7}, MakePiece(Black, Rook))
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{0, 4}, MakePiece(Black, King))
	p := &position.Position{Board: b, SideToMove: White, EnPassantTarget: NoSquare}

	legal := AllLegalMoves(p)

	var push, capture Move
	for _, m := range legal {
		if m.To == (Square{0, 6}) && m.PromotionPiece == Queen {
			push = m
		}
		if m.To == (Square{0, 7}) && m.PromotionPiece == Queen {
			capture = m
		}
	}

	assert.Equal(t, "g8=Q", BuildSAN(p, push, legal))
	assert.Equal(t, "gxh8=Q", BuildSAN(p, capture, legal))
}

func TestBuildSAN_Castling(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{7, 7}, MakePiece(White, Rook))
	b.Set(Square{0, 4}, MakePiece(Black, King))
	p := &position.Position{Board: b, SideToMove: White, CastlingRights: CastlingAll, EnPassantTarget: NoSquare}

	legal := AllLegalMoves(p)
	for _, m := range legal {
		if m.CastleKing {
			assert.Equal(t, "O-O", BuildSAN(p, m, legal))
		}
	}
}

func TestBuildSAN_DisambiguatesByFile(t *testing.T) {
	var b position.Board
	b.Set(Square{7, 1}, MakePiece(White, Knight)) // b1
	b.Set(Square{7, 5}, MakePiece(White, Knight)) // f1
	b.Set(Square{7, 4}, MakePiece(White, King))
	b.Set(Square{0, 4}, MakePiece(Black, King))
	p := &position.Position{Board: b, SideToMove: White, EnPassantTarget: NoSquare}

	legal := AllLegalMoves(p)
	var fromB1, fromF1 Move
	for _, cand := range legal {
		if cand.To != (Square{6, 3}) { // d2, reachable by both knights
			continue
		}
		switch cand.From {
		case Square{7, 1}:
			fromB1 = cand
		case Square{7, 5}:
			fromF1 = cand
		}
	}
	assert.Equal(t, "Nbd2", BuildSAN(p, fromB1, legal))
	assert.Equal(t, "Nfd2", BuildSAN(p, fromF1, legal))
}
