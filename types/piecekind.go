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

// PieceKind identifies the kind of a piece irrespective of color.
type PieceKind int8

const (
	KindNone PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	KindLength
)

var pieceKindChar = [KindLength]string{"", "P", "N", "B", "R", "Q", "K"}

// Char returns the single upper-case letter used in SAN, blank for pawns.
func (pk PieceKind) Char() string {
	return pieceKindChar[pk]
}

// standard material values
var pieceKindValue = [KindLength]int{0, 100, 320, 330, 500, 900, 20000}

// Value returns the standard material value in centipawns.
func (pk PieceKind) Value() int {
	return pieceKindValue[pk]
}

// IsSlider reports whether the piece kind slides along rays (bishop,
// rook, queen).
func (pk PieceKind) IsSlider() bool {
	return pk == Bishop || pk == Rook || pk == Queen
}
