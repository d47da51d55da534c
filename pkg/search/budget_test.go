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

package search

import (
	"testing"
	"time"

	"github.com/rlaptudirm/messcore/pkg/piece"
)

func TestBudgetMoveTimeOverridesEverything(t *testing.T) {
	p := Params{MoveTime: 500, WTime: 1, WInc: 0}
	if got := Budget(p, piece.White); got != 500*time.Millisecond {
		t.Errorf("Budget() = %v, want 500ms", got)
	}
}

func TestBudgetNoTimeControlIsUnbounded(t *testing.T) {
	p := Params{MoveTime: -1, WTime: -1, BTime: -1}
	if got := Budget(p, piece.White); got != Unbounded {
		t.Errorf("Budget() = %v, want Unbounded", got)
	}
}

func TestBudgetPicksSideClock(t *testing.T) {
	p := Params{MoveTime: -1, WTime: 10_000, BTime: 20_000, WInc: 0, BInc: 0}

	white := Budget(p, piece.White)
	black := Budget(p, piece.Black)

	if white != 10_000/4*time.Millisecond {
		t.Errorf("white Budget() = %v, want %v", white, 10_000/4*time.Millisecond)
	}
	if black != 20_000/4*time.Millisecond {
		t.Errorf("black Budget() = %v, want %v", black, 20_000/4*time.Millisecond)
	}
}

func TestBudgetLargeClockCapsAtSixtySeconds(t *testing.T) {
	p := Params{MoveTime: -1, WTime: 10 * 60 * 1000, WInc: 0}
	if got := Budget(p, piece.White); got != 60*time.Second {
		t.Errorf("Budget() = %v, want 60s", got)
	}
}

func TestBudgetIncludesIncrement(t *testing.T) {
	p := Params{MoveTime: -1, WTime: 4000, WInc: 500}
	want := time.Duration(4000/4+500) * time.Millisecond
	if got := Budget(p, piece.White); got != want {
		t.Errorf("Budget() = %v, want %v", got, want)
	}
}
