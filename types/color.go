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

// Package types contains the small tagged-value types shared across the
// rules engine and the search agent: color, piece kind, piece, castling
// rights and the square/move value types.
package types

import "fmt"

// Color identifies which side a piece or the side to move belongs to.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is a valid color value.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// String returns "white" or "black".
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// PawnDirection returns the row delta a pawn of this color advances by:
// -1 for White (moving toward row 0), +1 for Black (moving toward row 7).
func (c Color) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// StartingPawnRow returns the row pawns of this color begin on.
func (c Color) StartingPawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row a pawn of this color promotes on.
func (c Color) PromotionRow() int {
	if c == White {
		return 0
	}
	return 7
}

// BackRow returns the row this color's king/rooks start on.
func (c Color) BackRow() int {
	if c == White {
		return 7
	}
	return 0
}
