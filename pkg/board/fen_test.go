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

package board

import "testing"

// TestFENRoundTrip checks that parsing and re-serializing a FEN
// yields the original string.
func TestFENRoundTrip(t *testing.T) {
	n, err := NewNodeFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("NewNodeFromFEN(StartFEN): %v", err)
	}
	if got := n.FEN(); got != StartFEN {
		t.Errorf("round trip = %q, want %q", got, StartFEN)
	}
}

func TestFENRoundTripAfterEdit(t *testing.T) {
	const fen = "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	n, err := NewNodeFromFEN(fen)
	if err != nil {
		t.Fatalf("NewNodeFromFEN: %v", err)
	}
	if got := n.FEN(); got != fen {
		t.Errorf("round trip = %q, want %q", got, fen)
	}
}

func TestFENEnPassantField(t *testing.T) {
	const fen = "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"
	n, err := NewNodeFromFEN(fen)
	if err != nil {
		t.Fatalf("NewNodeFromFEN: %v", err)
	}
	if got := n.FEN(); got != fen {
		t.Errorf("round trip = %q, want %q", got, fen)
	}
}
