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

package evaluator

import (
	"github.com/kestrelgames/chesscore/config"
	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

// pawnsByFile collects, per color and file, the rows holding a pawn.
func pawnsByFile(b *position.Board) (white, black [8][]int) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p.Kind() != Pawn {
				continue
			}
			if p.Color() == White {
				white[c] = append(white[c], r)
			} else {
				black[c] = append(black[c], r)
			}
		}
	}
	return
}

// pawnStructure folds doubled, isolated and passed pawn scoring into a
// single White-minus-Black delta.
func pawnStructure(b *position.Board) int {
	white, black := pawnsByFile(b)
	value := 0
	value += doubledIsolated(white, 1)
	value += doubledIsolated(black, -1)
	value += passedPawns(white, black, White)
	value += passedPawns(black, white, Black)
	return value
}

// doubledIsolated scores one side's files, signed by sign (+1 White,
// -1 Black): -15 per extra pawn sharing a file, -20 per pawn whose
// adjacent files hold no friendly pawn.
func doubledIsolated(files [8][]int, sign int) int {
	value := 0
	for c := 0; c < 8; c++ {
		count := len(files[c])
		if count == 0 {
			continue
		}
		if count > 1 {
			value -= config.Settings.Eval.DoubledPawnMalus * (count - 1)
		}
		hasNeighbor := false
		if c > 0 && len(files[c-1]) > 0 {
			hasNeighbor = true
		}
		if c < 7 && len(files[c+1]) > 0 {
			hasNeighbor = true
		}
		if !hasNeighbor {
			value -= config.Settings.Eval.IsolatedPawnMalus * count
		}
	}
	return value * sign
}

// passedPawns scores, for each file holding a friendly pawn, the most
// advanced such pawn: passed iff no enemy pawn sits on the same or an
// adjacent file between it and promotion.
func passedPawns(own, enemy [8][]int, side Color) int {
	value := 0
	for c := 0; c < 8; c++ {
		if len(own[c]) == 0 {
			continue
		}
		row := mostAdvanced(own[c], side)
		if isPassed(row, c, enemy, side) {
			var advancement int
			if side == White {
				advancement = 7 - row
			} else {
				advancement = row
			}
			bonus := config.Settings.Eval.PassedPawnPerRow * advancement
			if side == White {
				value += bonus
			} else {
				value -= bonus
			}
		}
	}
	return value
}

// mostAdvanced returns the row of the pawn closest to promotion: the
// smallest row for White (promoting at row 0), the largest for Black.
func mostAdvanced(rows []int, side Color) int {
	best := rows[0]
	for _, r := range rows[1:] {
		if side == White && r < best {
			best = r
		}
		if side == Black && r > best {
			best = r
		}
	}
	return best
}

// isPassed reports whether no enemy pawn occupies the same or an
// adjacent file, between row (exclusive) and the promotion rank.
func isPassed(row, col int, enemy [8][]int, side Color) bool {
	for dc := -1; dc <= 1; dc++ {
		c := col + dc
		if c < 0 || c > 7 {
			continue
		}
		for _, er := range enemy[c] {
			if side == White && er < row {
				return false
			}
			if side == Black && er > row {
				return false
			}
		}
	}
	return true
}
