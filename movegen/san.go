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
	"strings"

	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

// BuildSAN computes m's Standard Algebraic Notation in p, the position
// *before* m is applied. legalMoves is p's full legal move set, used
// for disambiguation among same-kind pieces that can also reach m.To.
// The "+"/"#" suffix is not handled here: MakeMove appends it once the
// post-move legal-move set and check status are known, since that
// information doesn't exist until after the move is applied.
func BuildSAN(p *position.Position, m Move, legalMoves []Move) string {
	if m.IsCastle() {
		if m.CastleKing {
			return "O-O"
		}
		return "O-O-O"
	}

	mover := p.Board.At(m.From)
	kind := mover.Kind()

	var sb strings.Builder
	isCapture := m.Capture

	if kind == Pawn {
		if isCapture {
			sb.WriteByte(m.From.File())
		}
	} else {
		sb.WriteString(kind.Char())
		sb.WriteString(disambiguate(p, m, kind, legalMoves))
	}

	if isCapture {
		sb.WriteByte('x')
	}
	sb.WriteByte(m.To.File())
	sb.WriteByte(m.To.Rank())

	if m.Promotion {
		sb.WriteByte('=')
		promo := m.PromotionPiece
		if promo == KindNone {
			promo = Queen
		}
		sb.WriteString(promo.Char())
	}

	return sb.String()
}

// disambiguate returns the file letter, rank digit, or both needed to
// distinguish m from any other legal move of the same kind and color
// landing on the same destination square.
func disambiguate(p *position.Position, m Move, kind PieceKind, legalMoves []Move) string {
	sameFile, sameRank := false, false
	ambiguous := false

	for _, other := range legalMoves {
		if other.To != m.To || other.From == m.From {
			continue
		}
		otherPiece := p.Board.At(other.From)
		if otherPiece.Kind() != kind {
			continue
		}
		ambiguous = true
		if other.From.Col == m.From.Col {
			sameFile = true
		}
		if other.From.Row == m.From.Row {
			sameRank = true
		}
	}

	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return string(m.From.File())
	case !sameRank:
		return string(m.From.Rank())
	default:
		return string(m.From.File()) + string(m.From.Rank())
	}
}
