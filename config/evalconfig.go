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

package config

// evalConfiguration holds the evaluator's heuristic weights. Exposed
// as config rather than code constants so the evaluator can be tuned
// without recompilation.
type evalConfiguration struct {
	BishopPairBonus int

	DoubledPawnMalus  int
	IsolatedPawnMalus int
	PassedPawnPerRow  int // multiplied by (7 - row) for White, row for Black

	RookOpenFileBonus     int
	RookSemiOpenFileBonus int

	KingShieldBonus int // per present shield pawn
	KingShieldMalus int // per missing shield pawn

	MobilityFactor int // per legal-move-count difference
}

func defaultEvalConfiguration() evalConfiguration {
	return evalConfiguration{
		BishopPairBonus: 50,

		DoubledPawnMalus:  15,
		IsolatedPawnMalus: 20,
		PassedPawnPerRow:  15,

		RookOpenFileBonus:     25,
		RookSemiOpenFileBonus: 15,

		KingShieldBonus: 15,
		KingShieldMalus: 15,

		MobilityFactor: 5,
	}
}
