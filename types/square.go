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

import "fmt"

// Square addresses one cell of the 8x8 board. Row 0 is Black's back
// rank, row 7 is White's back rank, column 0 is the a-file.
type Square struct {
	Row, Col int
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Add returns the square offset by (dr, dc).
func (s Square) Add(dr, dc int) Square {
	return Square{s.Row + dr, s.Col + dc}
}

// File returns the file letter 'a'..'h' for the square's column.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit '1'..'8' for the square's row (row 0 is
// rank 8, row 7 is rank 1).
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// String returns algebraic notation for the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("<%d,%d>", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// NoSquare is the sentinel for "no square" in optional fields such as
// en-passant target. It is (-1, -1), not the zero Square (which is a8).
var NoSquare = Square{-1, -1}

// IsNone reports whether s is the NoSquare sentinel.
func (s Square) IsNone() bool {
	return s.Row < 0 || s.Col < 0
}
