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

package eval

import (
	"testing"

	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/piece"
)

// TestNegamaxSymmetry checks that evaluating with the
// side to move swapped negates the score.
func TestNegamaxSymmetry(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/3pP3/8/4K2R b K - 0 1",
	}

	for _, fen := range fens {
		n, err := board.NewNodeFromFEN(fen)
		if err != nil {
			t.Fatalf("NewNodeFromFEN(%q): %v", fen, err)
		}

		white := Evaluate(&n.Board, &n.GameState)

		n.GameState.SideToMove = n.GameState.SideToMove.Other()
		black := Evaluate(&n.Board, &n.GameState)

		if white != -black {
			t.Errorf("%q: Evaluate()=%d, Evaluate() with side swapped=%d, want negation", fen, white, black)
		}
	}
}

func TestEvaluateMaterialDominates(t *testing.T) {
	n, err := board.NewNodeFromFEN("4k3/8/8/8/8/8/8/QQQQK3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewNodeFromFEN: %v", err)
	}
	if got := Evaluate(&n.Board, &n.GameState); got <= 0 {
		t.Errorf("Evaluate() with four extra queens = %d, want positive", got)
	}
}

func TestColorSign(t *testing.T) {
	if ColorSign(piece.White) != 1 {
		t.Error("ColorSign(White) != 1")
	}
	if ColorSign(piece.Black) != -1 {
		t.Error("ColorSign(Black) != -1")
	}
}
