// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bench replays a PGN suite through the fixed-depth search and
// reports aggregate throughput, for engines run with -bench. It mirrors
// the self-play data generator this engine's evaluation tuning once
// used to walk game records, repurposed here as a throughput benchmark
// instead of a training-data producer.
package bench

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/notnil/chess"
	"github.com/schollz/progressbar/v3"

	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/move"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/search"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// Result is the aggregate outcome of a bench run.
type Result struct {
	Games     int
	Positions int
	Nodes     int
	Elapsed   time.Duration
}

// NPS returns the run's aggregate nodes-per-second rate.
func (r Result) NPS() int {
	if r.Elapsed <= 0 {
		return 0
	}
	return int(float64(r.Nodes) / r.Elapsed.Seconds())
}

// Run replays every game in the PGN suite at path. From each position
// reached, excluding the last ply of each game, it runs a depth-bounded
// search and folds the node count into the result.
func Run(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	games, err := readGames(f)
	if err != nil {
		return Result{}, err
	}

	bar := progressbar.NewOptions(len(games),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("game"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	var result Result
	start := time.Now()

	for _, game := range games {
		result.Games++
		replayGame(game, &result)
		_ = bar.Add(1)
	}

	_ = bar.Close()
	result.Elapsed = time.Since(start)
	return result, nil
}

// readGames scans every game record out of a PGN suite.
func readGames(r io.Reader) ([]*chess.Game, error) {
	scanner := chess.NewScanner(r)
	var games []*chess.Game
	for scanner.Scan() {
		games = append(games, scanner.Next())
	}
	return games, nil
}

// replayGame walks a single game's moves over a fresh Node, running a
// search from every position but the last.
func replayGame(game *chess.Game, result *Result) {
	node := board.NewNode()
	moves := game.Moves()

	cancel := &atomic.Bool{}
	cancel.Store(true)

	for i, gameMove := range moves {
		if i == len(moves)-1 {
			break
		}

		m := convertMove(gameMove)
		m.ApplyTo(&node.Board, &node.GameState)

		result.Positions++

		analyzer := &search.Analyzer{}
		r := analyzer.Analyze(node.Clone(), search.Unbounded, cancel)
		result.Nodes += r.Nodes
	}
}

// convertMove translates a notnil/chess move, whose Square is encoded
// a8=0 through h1=63, into this engine's file*8+rank encoding.
func convertMove(m *chess.Move) move.Move {
	source := convertSquare(m.S1())
	dest := convertSquare(m.S2())

	promo := piece.NoType
	switch m.Promo() {
	case chess.Knight:
		promo = piece.Knight
	case chess.Bishop:
		promo = piece.Bishop
	case chess.Rook:
		promo = piece.Rook
	case chess.Queen:
		promo = piece.Queen
	}

	if promo == piece.NoType {
		return move.New(source, dest)
	}
	return move.NewPromotion(source, dest, promo)
}

func convertSquare(s chess.Square) square.Square {
	file := square.File(int(s) % 8)
	rank := square.Rank(7 - int(s)/8)
	return square.New(file, rank)
}

// Report renders a one-line human-readable summary of a bench run.
func Report(r Result) string {
	return fmt.Sprintf(
		"bench: %d games, %d positions, %d nodes in %s (%d nps)",
		r.Games, r.Positions, r.Nodes, r.Elapsed.Round(time.Millisecond), r.NPS(),
	)
}
