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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/kestrelgames/chesscore/config"
	"github.com/kestrelgames/chesscore/engine"
	. "github.com/kestrelgames/chesscore/types"
)

var difficultyByName = map[string]config.Difficulty{
	"beginner": config.Beginner,
	"medium":   config.Medium,
	"pro":      config.Pro,
}

func main() {
	configFile := flag.String("config", "", "path to a TOML file overriding the default strength profiles and eval weights")
	difficultyName := flag.String("difficulty", "medium", "bot difficulty\n(beginner|medium|pro)")
	cpuProfile := flag.Bool("profile", false, "capture a CPU profile of the session into ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *configFile != "" {
		if err := config.Load(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "could not read config file: %v\n", err)
			os.Exit(1)
		}
	}

	difficulty, ok := difficultyByName[strings.ToLower(*difficultyName)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown difficulty %q\n", *difficultyName)
		os.Exit(1)
	}

	runREPL(difficulty)
}

// runREPL drives a single game on the terminal: the user enters
// coordinate moves ("e2e4", "e7e8q" for promotions), the bot replies
// at the configured difficulty, until the game ends or the user quits.
func runREPL(difficulty config.Difficulty) {
	pos := engine.NewGame()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(pos.Board.String())
	fmt.Printf("%s to move. Enter a move like e2e4, or \"quit\".\n", pos.SideToMove)

	for !pos.IsGameOver {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			return
		}

		m, ok := resolveMove(pos, input)
		if !ok {
			fmt.Println("not a legal move, try again")
			continue
		}

		result := engine.MakeMove(pos, m)
		fmt.Println(pos.Board.String())
		fmt.Println(result.Notation)
		if pos.IsGameOver {
			fmt.Printf("game over: %s\n", pos.Result)
			return
		}

		botMove := engine.GetBotMove(pos, difficulty)
		if botMove.IsNone() {
			fmt.Println("bot has no legal move")
			return
		}
		botResult := engine.MakeMove(pos, botMove)
		fmt.Println(pos.Board.String())
		fmt.Println(botResult.Notation)
		if pos.IsGameOver {
			fmt.Printf("game over: %s\n", pos.Result)
			return
		}
		fmt.Printf("%s to move. Enter a move like e2e4, or \"quit\".\n", pos.SideToMove)
	}
}

// resolveMove parses a coordinate move such as "e2e4" or "e7e8q" and
// matches it against the current legal-move set, since the REPL's
// plain-text input carries none of the flags (capture, castling, en
// passant) a legal Move needs.
func resolveMove(pos *engine.Position, input string) (Move, bool) {
	from, to, promo, ok := parseCoordMove(input)
	if !ok {
		return Move{}, false
	}

	for _, m := range engine.LegalMovesFrom(pos, from.Row, from.Col) {
		if m.To != to {
			continue
		}
		if m.Promotion && m.PromotionPiece != promo {
			continue
		}
		return m, true
	}
	return Move{}, false
}

func parseCoordMove(input string) (from, to Square, promo PieceKind, ok bool) {
	input = strings.ToLower(input)
	if len(input) != 4 && len(input) != 5 {
		return Square{}, Square{}, KindNone, false
	}

	from, okFrom := parseSquare(input[0:2])
	to, okTo := parseSquare(input[2:4])
	if !okFrom || !okTo {
		return Square{}, Square{}, KindNone, false
	}

	promo = Queen
	if len(input) == 5 {
		switch input[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return Square{}, Square{}, KindNone, false
		}
	}
	return from, to, promo, true
}

func parseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	col := int(file - 'a')
	row := 7 - int(rank-'1')
	return Square{Row: row, Col: col}, true
}
