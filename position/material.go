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
	. "github.com/kestrelgames/chesscore/types"
)

// HasInsufficientMaterial reports whether the board holds insufficient
// material for either side to deliver checkmate:
// K vs K; K+minor vs K; or K+B vs K+B with both bishops on
// same-colored squares. Every other combination is sufficient.
func (b *Board) HasInsufficientMaterial() bool {
	var whiteMinors, blackMinors int
	var whiteBishopSquares, blackBishopSquares []Square

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p == Empty {
				continue
			}
			switch p.Kind() {
			case King:
				// always present, doesn't affect sufficiency
			case Bishop, Knight:
				if p.Color() == White {
					whiteMinors++
					if p.Kind() == Bishop {
						whiteBishopSquares = append(whiteBishopSquares, Square{r, c})
					}
				} else {
					blackMinors++
					if p.Kind() == Bishop {
						blackBishopSquares = append(blackBishopSquares, Square{r, c})
					}
				}
			default:
				// pawn, rook or queen on the board: always sufficient
				return false
			}
		}
	}

	switch {
	case whiteMinors == 0 && blackMinors == 0:
		return true // K vs K
	case whiteMinors == 1 && blackMinors == 0, whiteMinors == 0 && blackMinors == 1:
		return true // K+minor vs K
	case whiteMinors == 1 && blackMinors == 1 &&
		len(whiteBishopSquares) == 1 && len(blackBishopSquares) == 1:
		return squareColor(whiteBishopSquares[0]) == squareColor(blackBishopSquares[0])
	default:
		return false
	}
}

// squareColor reports the color of the square (true = light).
func squareColor(sq Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}
