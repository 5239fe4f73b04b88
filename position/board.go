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

// Package position implements the rules engine's data model and the
// core position-mutating operations: board setup, the make/unmake
// primitives, and the insufficient-material check. Algebraic notation
// lives in movegen and terminal-state detection in rules.
package position

import (
	"strings"

	. "github.com/kestrelgames/chesscore/types"
)

// Board is the 8x8 grid of Row 0 is Black's back rank, row
// 7 is White's back rank, column 0 is the a-file.
type Board [8][8]Piece

// At returns the piece on square sq, or Empty if sq is off-board.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Empty
	}
	return b[sq.Row][sq.Col]
}

// Set places a piece on sq. Setting Empty clears the square.
func (b *Board) Set(sq Square, p Piece) {
	b[sq.Row][sq.Col] = p
}

// NewInitialBoard returns the standard starting arrangement.
func NewInitialBoard() Board {
	var b Board
	backRank := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for c := 0; c < 8; c++ {
		b[0][c] = MakePiece(Black, backRank[c])
		b[1][c] = MakePiece(Black, Pawn)
		b[6][c] = MakePiece(White, Pawn)
		b[7][c] = MakePiece(White, backRank[c])
	}
	return b
}

// FindKing returns the square of the given color's king, or NoSquare if
// none is present.
func (b *Board) FindKing(c Color) Square {
	king := MakePiece(c, King)
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			if b[r][col] == king {
				return Square{r, col}
			}
		}
	}
	return NoSquare
}

// String renders the board as an ASCII diagram: eight rank lines, rank
// 8 first, followed by a file-letter line.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		sb.WriteByte(Square{r, 0}.Rank())
		sb.WriteString("  ")
		for c := 0; c < 8; c++ {
			sb.WriteString(b[r][c].Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
