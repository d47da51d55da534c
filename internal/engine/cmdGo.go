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

package engine

import (
	"sync/atomic"

	"github.com/rlaptudirm/messcore/pkg/search"
	"github.com/rlaptudirm/messcore/pkg/uci"
)

// handleGo clones the current node, creates a fresh cancel flag, and
// spawns a worker to run the search. The engine stays responsive to
// further commands while the worker runs.
func (e *Engine) handleGo(g uci.GoArgs) {
	if e.working {
		e.logf("engine: go received while already working, ignoring")
		return
	}

	clone := e.node.Clone()

	cancel := &atomic.Bool{}
	cancel.Store(true)

	e.cancel = cancel
	e.working = true

	params := search.Params{
		MoveTime: g.MoveTime,
		WTime:    g.WTime,
		BTime:    g.BTime,
		WInc:     g.WInc,
		BInc:     g.BInc,
	}

	budget := search.Unbounded
	if !g.Infinite {
		budget = search.Budget(params, clone.GameState.SideToMove)
	}

	go e.runWorker(clone, budget, cancel)
}

// handleStop clears the cancel flag of an in-progress search, signalling
// the worker to return the best move found so far.
func (e *Engine) handleStop() {
	if !e.working {
		e.logf("engine: stop received while not working, ignoring")
		return
	}
	e.cancel.Store(false)
}
