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

// Piece is a flat tagged enumeration of the 12 pieces plus the empty
// square value, dispatched by kind-switch rather than by inheritance.
type Piece int8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceLength
)

var pieceByColorKind = [2][KindLength]Piece{
	White: {Empty, WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing},
	Black: {Empty, BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing},
}

// MakePiece builds a Piece from a color and a kind. Kind must not be
// KindNone.
func MakePiece(c Color, k PieceKind) Piece {
	return pieceByColorKind[c][k]
}

var pieceColor = [PieceLength]Color{
	Empty:       White,
	WhitePawn:   White,
	WhiteKnight: White,
	WhiteBishop: White,
	WhiteRook:   White,
	WhiteQueen:  White,
	WhiteKing:   White,
	BlackPawn:   Black,
	BlackKnight: Black,
	BlackBishop: Black,
	BlackRook:   Black,
	BlackQueen:  Black,
	BlackKing:   Black,
}

// Color returns the piece's color. Undefined for Empty.
func (p Piece) Color() Color {
	return pieceColor[p]
}

var pieceKind = [PieceLength]PieceKind{
	Empty:       KindNone,
	WhitePawn:   Pawn,
	WhiteKnight: Knight,
	WhiteBishop: Bishop,
	WhiteRook:   Rook,
	WhiteQueen:  Queen,
	WhiteKing:   King,
	BlackPawn:   Pawn,
	BlackKnight: Knight,
	BlackBishop: Bishop,
	BlackRook:   Rook,
	BlackQueen:  Queen,
	BlackKing:   King,
}

// Kind returns the piece's kind. Returns KindNone for Empty.
func (p Piece) Kind() PieceKind {
	return pieceKind[p]
}

// IsEmpty reports whether the square is empty.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Value returns the standard material value of the piece, 0 for Empty.
func (p Piece) Value() int {
	return p.Kind().Value()
}

var pieceChar = [PieceLength]string{
	Empty: ".",
	WhitePawn: "P", WhiteKnight: "N", WhiteBishop: "B", WhiteRook: "R", WhiteQueen: "Q", WhiteKing: "K",
	BlackPawn: "p", BlackKnight: "n", BlackBishop: "b", BlackRook: "r", BlackQueen: "q", BlackKing: "k",
}

// Char returns the single-letter FEN-style representation (upper case
// for White, lower case for Black, "." for empty).
func (p Piece) Char() string {
	return pieceChar[p]
}

var pieceUnicode = [PieceLength]string{
	Empty: " ",
	WhitePawn: "♙", WhiteKnight: "♘", WhiteBishop: "♗",
	WhiteRook: "♖", WhiteQueen: "♕", WhiteKing: "♔",
	BlackPawn: "♟", BlackKnight: "♞", BlackBishop: "♝",
	BlackRook: "♜", BlackQueen: "♛", BlackKing: "♚",
}

// Unicode returns the Unicode chess glyph for the piece, a single space
// for an empty square. Display helper for UI collaborators.
func (p Piece) Unicode() string {
	return pieceUnicode[p]
}
