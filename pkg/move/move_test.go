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

package move

import (
	"testing"

	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// TestUCIStringRoundTrip checks that parsing a move's UCI string
// reproduces the original move.
func TestUCIStringRoundTrip(t *testing.T) {
	moves := []Move{
		New(square.E2, square.E4),
		New(square.G1, square.F3),
		NewPromotion(square.A7, square.A8, piece.Queen),
		NewPromotion(square.H2, square.G1, piece.Knight),
		Null(),
	}

	for _, m := range moves {
		got, err := FromUCIString(m.String())
		if err != nil {
			t.Fatalf("FromUCIString(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("round trip %q: got %+v, want %+v", m.String(), got, m)
		}
	}
}

// TestApplyUnmakeIdentity checks that applying and then unmaking a
// move restores the node exactly, on a handful of
// plies from the starting position, including a capture, a castle, and
// an en passant capture.
func TestApplyUnmakeIdentity(t *testing.T) {
	n, err := board.NewNodeFromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("NewNodeFromFEN: %v", err)
	}
	before := n

	m := New(square.E2, square.E4)
	m.ApplyTo(&n.Board, &n.GameState)
	m.Unmake(&n.Board, &n.GameState)

	if n != before {
		t.Errorf("apply/unmake of %v did not restore the node", m)
	}
}

func TestApplyUnmakeIdentityCastle(t *testing.T) {
	n, err := board.NewNodeFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("NewNodeFromFEN: %v", err)
	}
	before := n

	m := New(square.E1, square.G1)
	m.ApplyTo(&n.Board, &n.GameState)
	if n.Board.GetPieceOn(square.F1) != piece.Rook {
		t.Fatal("rook did not relocate to f1 during castle")
	}
	m.Unmake(&n.Board, &n.GameState)

	if n != before {
		t.Errorf("apply/unmake of castle %v did not restore the node", m)
	}
}

func TestApplyUnmakeIdentityEnPassant(t *testing.T) {
	n, err := board.NewNodeFromFEN("4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	if err != nil {
		t.Fatalf("NewNodeFromFEN: %v", err)
	}
	before := n

	m := New(square.D4, square.E3)
	m.ApplyTo(&n.Board, &n.GameState)
	if !n.Board.IsEmpty(square.E4) {
		t.Fatal("captured pawn still on e4 after en passant")
	}
	m.Unmake(&n.Board, &n.GameState)

	if n != before {
		t.Errorf("apply/unmake of en passant %v did not restore the node", m)
	}
}

func TestApplyUnmakeIdentityCapture(t *testing.T) {
	n, err := board.NewNodeFromFEN("4k3/8/8/8/3p4/4P3/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("NewNodeFromFEN: %v", err)
	}
	before := n

	m := New(square.D4, square.E3)
	m.ApplyTo(&n.Board, &n.GameState)
	m.Unmake(&n.Board, &n.GameState)

	if n != before {
		t.Errorf("apply/unmake of capture %v did not restore the node", m)
	}
}
