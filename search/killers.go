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

package search

import (
	. "github.com/kestrelgames/chesscore/types"
)

const maxKillerPly = 64

// killerTable holds up to two non-capture moves per ply that have
// caused a beta cutoff at that ply. It is owned by a single Search
// instance's top-level call, never shared across invocations or goroutines.
type killerTable struct {
	moves [maxKillerPly][2]Move
}

// clear resets every ply's killer slots, done once at the entry of a
// top-level search.
func (k *killerTable) clear() {
	for i := range k.moves {
		k.moves[i][0] = NoMove
		k.moves[i][1] = NoMove
	}
}

// store records m as the newest killer at ply, shifting the prior
// slot-0 occupant down to slot 1. A move identical to slot 0 is not
// re-inserted.
func (k *killerTable) store(ply int, m Move) {
	if ply < 0 || ply >= maxKillerPly {
		return
	}
	if k.moves[ply][0].Equal(m) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// isKiller reports whether m matches either killer slot at ply.
func (k *killerTable) isKiller(ply int, m Move) bool {
	if ply < 0 || ply >= maxKillerPly {
		return false
	}
	return k.moves[ply][0].Equal(m) || k.moves[ply][1].Equal(m)
}
