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
	"time"

	"github.com/rlaptudirm/messcore/pkg/piece"
)

// Params is the subset of a UCI "go" command that affects the search's
// time budget. A field < 0 means "not given".
type Params struct {
	MoveTime int // ms; overrides everything else if >= 0

	WTime, BTime int // ms remaining
	WInc, BInc   int // ms increment per move
}

// Unbounded is used as the sentinel budget when no time control applies;
// a depth or cancel-flag stop condition is expected to end the search
// instead.
const Unbounded = time.Duration(1<<63 - 1)

// Budget computes the time budget for side c from the "go" parameters.
func Budget(p Params, c piece.Color) time.Duration {
	if p.MoveTime >= 0 {
		return time.Duration(p.MoveTime) * time.Millisecond
	}

	t, inc := p.WTime, p.WInc
	if c == piece.Black {
		t, inc = p.BTime, p.BInc
	}
	if inc < 0 {
		inc = 0
	}

	switch {
	case t > 2*60*1000:
		return 60 * time.Second
	case t > 0:
		return time.Duration(t/4+inc) * time.Millisecond
	default:
		return Unbounded
	}
}
