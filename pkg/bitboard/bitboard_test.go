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

package bitboard

import (
	"testing"

	"github.com/rlaptudirm/messcore/pkg/square"
)

func TestSetUnsetIsSet(t *testing.T) {
	var b Board
	if b.IsSet(square.E4) {
		t.Fatal("fresh board has e4 set")
	}
	b.Set(square.E4)
	if !b.IsSet(square.E4) {
		t.Fatal("e4 not set after Set")
	}
	b.Unset(square.E4)
	if b.IsSet(square.E4) {
		t.Fatal("e4 still set after Unset")
	}
}

func TestSetNoneIsNoop(t *testing.T) {
	var b Board
	b.Set(square.None)
	if b != Empty {
		t.Fatalf("Set(None) modified board: %v", b)
	}
}

func TestPopOrder(t *testing.T) {
	var b Board
	b.Set(square.H8)
	b.Set(square.A1)
	b.Set(square.E4)

	var got []square.Square
	for b != Empty {
		got = append(got, b.Pop())
	}

	want := []square.Square{square.A1, square.E4, square.H8}
	if len(got) != len(want) {
		t.Fatalf("Pop order length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pop order[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCount(t *testing.T) {
	var b Board
	b.Set(square.A1)
	b.Set(square.H8)
	if got := b.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestKnightAttacksCorner(t *testing.T) {
	if got := Knight[square.A1].Count(); got != 2 {
		t.Errorf("knight attacks from a1 = %d, want 2", got)
	}
}

func TestKingAttacksCorner(t *testing.T) {
	if got := King[square.A1].Count(); got != 3 {
		t.Errorf("king attacks from a1 = %d, want 3", got)
	}
}
