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

// Package evaluator contains structures and functions to calculate the
// value of a chess position to be used by the search agent. All values
// are centipawns, signed so that positive always favors White.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/kestrelgames/chesscore/config"
	ownLogging "github.com/kestrelgames/chesscore/logging"
	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

// Evaluator holds no mutable state beyond its logger; a single
// instance is safe to reuse across an entire search.
type Evaluator struct {
	log *logging.Logger
}

// New creates an Evaluator.
func New() *Evaluator {
	return &Evaluator{log: ownLogging.Get("evaluator")}
}

// Evaluate returns the static value of pos in centipawns, positive
// favoring White, summing material, piece-square placement, bishop
// pair, pawn structure, rook files, king safety and mobility.
func (e *Evaluator) Evaluate(pos *position.Position) int {
	endgame := isEndgame(&pos.Board)

	value := material(&pos.Board)
	value += pieceSquareValue(&pos.Board, endgame)
	value += bishopPair(&pos.Board)
	value += pawnStructure(&pos.Board)
	value += rookFiles(&pos.Board)
	if !endgame {
		value += kingSafety(&pos.Board)
	}
	value += mobility(pos)

	return value
}

// material sums standard piece values, White minus Black.
func material(b *position.Board) int {
	total := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p == Empty {
				continue
			}
			v := p.Kind().Value()
			if p.Color() == White {
				total += v
			} else {
				total -= v
			}
		}
	}
	return total
}

// bishopPair awards config.Settings.Eval.BishopPairBonus to a side
// holding two or more bishops.
func bishopPair(b *position.Board) int {
	var whiteBishops, blackBishops int
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p.Kind() != Bishop {
				continue
			}
			if p.Color() == White {
				whiteBishops++
			} else {
				blackBishops++
			}
		}
	}
	bonus := config.Settings.Eval.BishopPairBonus
	value := 0
	if whiteBishops >= 2 {
		value += bonus
	}
	if blackBishops >= 2 {
		value -= bonus
	}
	return value
}

// rookFiles awards an open-file or semi-open-file bonus for every rook.
func rookFiles(b *position.Board) int {
	var pawnFiles [2][8]int
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p.Kind() == Pawn {
				pawnFiles[p.Color()][c]++
			}
		}
	}

	value := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p.Kind() != Rook {
				continue
			}
			own, enemy := pawnFiles[p.Color()][c], pawnFiles[p.Color().Flip()][c]
			var bonus int
			switch {
			case own == 0 && enemy == 0:
				bonus = config.Settings.Eval.RookOpenFileBonus
			case own == 0:
				bonus = config.Settings.Eval.RookSemiOpenFileBonus
			}
			if p.Color() == White {
				value += bonus
			} else {
				value -= bonus
			}
		}
	}
	return value
}

// kingSafety scores the three files around each king by whether a
// friendly pawn shields it, skipped entirely in the endgame phase.
func kingSafety(b *position.Board) int {
	value := 0
	for _, side := range [2]Color{White, Black} {
		king := b.FindKing(side)
		if king.IsNone() {
			continue
		}
		shieldRow := king.Row + side.PawnDirection()
		score := 0
		for dc := -1; dc <= 1; dc++ {
			col := king.Col + dc
			sq := Square{shieldRow, col}
			if !sq.OnBoard() {
				continue
			}
			if b.At(sq) == MakePiece(side, Pawn) {
				score += config.Settings.Eval.KingShieldBonus
			} else {
				score -= config.Settings.Eval.KingShieldMalus
			}
		}
		if side == White {
			value += score
		} else {
			value -= score
		}
	}
	return value
}
