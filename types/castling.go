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

// CastlingRights packs the four booleans (white-kingside, white-queenside,
// black-kingside, black-queenside) into a single bitmask.
type CastlingRights uint8

const (
	WhiteOO  CastlingRights = 1 << iota // white kingside
	WhiteOOO                            // white queenside
	BlackOO                             // black kingside
	BlackOOO                            // black queenside

	CastlingNone CastlingRights = 0
	CastlingAll  CastlingRights = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// Has reports whether the given right (or set of rights) is held.
func (cr CastlingRights) Has(right CastlingRights) bool {
	return cr&right != 0
}

// Without returns cr with the given right(s) cleared.
func (cr CastlingRights) Without(right CastlingRights) CastlingRights {
	return cr &^ right
}

// KingsideFor returns the kingside right for the given color.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return WhiteOO
	}
	return BlackOO
}

// QueensideFor returns the queenside right for the given color.
func QueensideFor(c Color) CastlingRights {
	if c == White {
		return WhiteOOO
	}
	return BlackOOO
}

// BothFor returns both castling rights for the given color.
func BothFor(c Color) CastlingRights {
	return KingsideFor(c) | QueensideFor(c)
}
