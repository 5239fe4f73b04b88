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

// Difficulty selects one of the three preconfigured strength profiles.
type Difficulty int

const (
	Beginner Difficulty = iota
	Medium
	Pro
)

// Profile is the set of search parameters associated with a difficulty.
type Profile struct {
	Depth         int
	UseQuiescence bool
	UseKillers    bool // not read by the search: killer-move ordering runs at every difficulty
	TwoStageRoot  bool // Pro only: depth-4 pre-scoring of root moves
	PreScoreDepth int  // depth of the Pro pre-scoring pass
}

type searchConfiguration struct {
	QuiescenceMaxPlies int
	MateScore          int

	Profiles map[Difficulty]Profile
}

func defaultSearchConfiguration() searchConfiguration {
	return searchConfiguration{
		QuiescenceMaxPlies: 6,
		MateScore:          99999,
		Profiles: map[Difficulty]Profile{
			Beginner: {Depth: 2, UseQuiescence: false, UseKillers: false},
			Medium:   {Depth: 4, UseQuiescence: true, UseKillers: true},
			Pro:      {Depth: 6, UseQuiescence: true, UseKillers: true, TwoStageRoot: true, PreScoreDepth: 4},
		},
	}
}

// ProfileFor returns the configured Profile for a difficulty, defaulting
// to the Medium profile for an unrecognized value.
func ProfileFor(d Difficulty) Profile {
	if p, ok := Settings.Search.Profiles[d]; ok {
		return p
	}
	return Settings.Search.Profiles[Medium]
}
