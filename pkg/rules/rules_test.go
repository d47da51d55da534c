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

package rules

import (
	"testing"

	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/square"
)

func mustNode(t *testing.T, fen string) board.Node {
	t.Helper()
	n, err := board.NewNodeFromFEN(fen)
	if err != nil {
		t.Fatalf("NewNodeFromFEN(%q): %v", fen, err)
	}
	return n
}

// TestStartingMoveCount checks that the starting position has
// exactly 20 legal moves.
func TestStartingMoveCount(t *testing.T) {
	n := mustNode(t, board.StartFEN)
	moves := GetPlayerMoves(&n.Board, &n.GameState)
	if len(moves) != 20 {
		t.Errorf("starting move count = %d, want 20", len(moves))
	}
}

// TestCastlingLegal checks that a king with open rook files and
// intact castling rights can castle both ways.
func TestCastlingLegal(t *testing.T) {
	n := mustNode(t, "8/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	moves := GetPlayerMoves(&n.Board, &n.GameState)

	fromE1 := 0
	for _, m := range moves {
		if m.Source == square.E1 {
			fromE1++
		}
	}
	if fromE1 != 7 {
		t.Errorf("moves from e1 = %d, want 7 (5 king steps + 2 castles)", fromE1)
	}
}

// TestCastlingThroughCheckForbidden checks that castling through an
// attacked square is illegal.
func TestCastlingThroughCheckForbidden(t *testing.T) {
	n := mustNode(t, "5r2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	moves := GetPlayerMoves(&n.Board, &n.GameState)

	for _, m := range moves {
		if m.Source == square.E1 && m.Dest == square.G1 {
			t.Error("e1g1 should be illegal while f1 is attacked")
		}
	}
}

// TestPromotionAutoQueens checks that a pawn reaching the far rank
// only generates a queen promotion.
func TestPromotionAutoQueens(t *testing.T) {
	n := mustNode(t, "8/P7/8/8/8/8/8/4K2k w - - 0 1")
	moves := GetPlayerMoves(&n.Board, &n.GameState)

	fromA7 := 0
	for _, m := range moves {
		if m.Source == square.A7 {
			fromA7++
			if m.Dest != square.A8 {
				t.Errorf("promotion move destination = %v, want a8", m.Dest)
			}
			if m.String() != "a7a8q" {
				t.Errorf("promotion move = %q, want a7a8q", m.String())
			}
		}
	}
	if fromA7 != 1 {
		t.Errorf("moves from a7 = %d, want exactly 1 (auto-queen)", fromA7)
	}
}

// TestLegalMovesDontLeaveKingAttacked checks that no generated move
// leaves the mover's own king attacked.
func TestLegalMovesDontLeaveKingAttacked(t *testing.T) {
	n := mustNode(t, "r3k2r/8/8/4r3/8/8/8/R3K2R w KQkq - 0 1")
	b, gs := &n.Board, &n.GameState

	moves := GetPlayerMoves(b, gs)
	for _, m := range moves {
		m.ApplyTo(b, gs)
		mover := gs.SideToMove.Other()
		if king, ok := b.FindKing(mover); ok && b.IsAttacked(king, mover.Other()) {
			t.Errorf("legal move %v leaves %v king attacked", m, mover)
		}
		m.Unmake(b, gs)
	}
}

func TestInCheck(t *testing.T) {
	n := mustNode(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	if !InCheck(&n.Board, &n.GameState) {
		t.Error("white king on e1 with a rook on h1 should be in check")
	}
}
