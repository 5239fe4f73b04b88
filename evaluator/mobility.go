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
	"github.com/kestrelgames/chesscore/movegen"
	"github.com/kestrelgames/chesscore/position"
	. "github.com/kestrelgames/chesscore/types"
)

// mobility scores the difference in legal-move count between the two
// sides, computed by temporarily swapping side_to_move rather than
// generating moves for an arbitrary side. pos is restored before
// returning regardless of which side was actually to move.
func mobility(pos *position.Position) int {
	original := pos.SideToMove

	pos.SideToMove = White
	whiteMoves := len(movegen.AllLegalMoves(pos))
	pos.SideToMove = Black
	blackMoves := len(movegen.AllLegalMoves(pos))

	pos.SideToMove = original
	return config.Settings.Eval.MobilityFactor * (whiteMoves - blackMoves)
}
