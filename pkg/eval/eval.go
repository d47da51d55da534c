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
	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/piece"
)

// Evaluate returns the Shannon linear evaluation of b/gs from the
// perspective of the side to move: positive favors the mover. Swapping
// the sides to move negates the result, as required for negamax leaf
// evaluation.
func Evaluate(b *board.Board, gs *board.GameState) int {
	stats := Stats(b, gs)

	us, them := gs.SideToMove, gs.SideToMove.Other()
	a, e := stats[us], stats[them]

	material := 200*(a.NumKings-e.NumKings) +
		9*(a.NumQueens-e.NumQueens) +
		5*(a.NumRooks-e.NumRooks) +
		3*(a.NumBishops-e.NumBishops) +
		3*(a.NumKnights-e.NumKnights) +
		1*(a.NumPawns-e.NumPawns)

	structure := (a.NumDoubledPawns - e.NumDoubledPawns) +
		(a.NumIsolatedPawns - e.NumIsolatedPawns) +
		(a.NumBackwardPawns - e.NumBackwardPawns)

	mobility := a.Mobility - e.Mobility

	// Evaluated in tenths of a pawn so the 0.5/0.1 coefficients stay
	// integral; callers treat the score as centipawns divided by 10.
	return 10*material - 5*structure + mobility
}

// ColorSign is 1 for White, −1 for Black; useful for UCI score reporting
// that always wants the value from White's perspective.
func ColorSign(c piece.Color) int {
	if c == piece.White {
		return 1
	}
	return -1
}
