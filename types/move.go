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

package types

import (
	"fmt"
	"strings"
)

// Move is a single chess move. It is a plain struct rather than a
// packed integer: legal move lists here run to at most a few dozen
// entries, with no transposition table storing millions of them, so
// bit-packing never pays for itself.
type Move struct {
	From, To Square

	Capture        bool
	DoublePush     bool
	EnPassant      bool
	CastleKing     bool
	CastleQueen    bool
	Promotion      bool
	PromotionPiece PieceKind // valid iff Promotion
}

// NoMove is the sentinel for "no move found": both squares are
// NoSquare, so it differs from the zero Move (a8 to a8).
var NoMove = Move{From: NoSquare, To: NoSquare}

// IsNone reports whether m is the NoMove sentinel.
func (m Move) IsNone() bool {
	return m.From.IsNone() && m.To.IsNone()
}

// IsCastle reports whether m is either castling move.
func (m Move) IsCastle() bool {
	return m.CastleKing || m.CastleQueen
}

// Equal reports whether two moves describe the same (from, to) pair and
// the same promotion piece. Used by killer-move comparison.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.PromotionPiece == o.PromotionPiece
}

// String renders the move as a plain coordinate move, e.g. "e2e4" or
// "e7e8q" for promotions. Used for logging and CLI display; SAN
// construction lives in the movegen package since it needs the
// pre-move legal-move set for disambiguation.
func (m Move) String() string {
	if m.IsNone() {
		return "(none)"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion {
		s += strings.ToLower(m.PromotionPiece.Char())
	}
	return s
}

// Format implements fmt.Formatter so %v and %s both print String().
func (m Move) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprint(f, m.String())
}
