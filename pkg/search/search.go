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

// Package search implements the fixed-depth negamax analyzer used to
// pick a move.
package search

import (
	"sync/atomic"
	"time"

	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/eval"
	"github.com/rlaptudirm/messcore/pkg/move"
	"github.com/rlaptudirm/messcore/pkg/rules"
)

// MaxDepth is the fixed search depth.
const MaxDepth = 4

// Inf is a score magnitude no real evaluation reaches, used as the
// initial alpha-beta window bound.
const Inf = 1 << 30

// Telemetry is the per-second {nodes, nps} snapshot emitted during a
// search.
type Telemetry struct {
	Nodes int
	NPS   int
}

// Result is what Analyze reports once a search concludes.
type Result struct {
	Move  move.Move
	Score int
	Nodes int

	// NoLegalMoves is set when the root position has no legal moves:
	// the caller should log "Checkmate is unavoidable." and still
	// report Move (the null move) as the reply.
	NoLegalMoves bool
}

// Analyzer runs one negamax search at a time against a given node.
type Analyzer struct {
	// OnTelemetry, if set, is called roughly once a second during the
	// search with the current node/nps counters.
	OnTelemetry func(Telemetry)

	start  time.Time
	budget time.Duration
	cancel *atomic.Bool

	nodes     int
	lastTelem time.Time
}

// Analyze searches node to a fixed depth with alpha-beta pruning,
// time-bounded by budget and cancellable through cancel, and returns the
// best move found at the root. cancel is polled, not
// written: the caller clears it to request a stop.
func (a *Analyzer) Analyze(node board.Node, budget time.Duration, cancel *atomic.Bool) Result {
	a.start = time.Now()
	a.budget = budget
	a.cancel = cancel
	a.nodes = 0
	a.lastTelem = a.start

	b, gs := &node.Board, &node.GameState

	moves := rules.GetPlayerMoves(b, gs)
	if len(moves) == 0 {
		return Result{Move: move.Null(), NoLegalMoves: true}
	}

	bestMove := moves[0]
	bestScore := -Inf
	alpha, beta := -Inf, Inf

	for _, m := range moves {
		m.ApplyTo(b, gs)
		score := -a.negamax(b, gs, -beta, -alpha, 1)
		m.Unmake(b, gs)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}

		if a.atRootStop() {
			break
		}
	}

	return Result{Move: bestMove, Score: bestScore, Nodes: a.nodes}
}

func (a *Analyzer) negamax(b *board.Board, gs *board.GameState, alpha, beta, depth int) int {
	a.nodes++

	if a.atRootStop() || depth == MaxDepth {
		return eval.Evaluate(b, gs)
	}

	a.reportTelemetry()

	moves := rules.GetPlayerMoves(b, gs)
	if len(moves) == 0 {
		return eval.Evaluate(b, gs)
	}

	bestScore := -Inf

	for _, m := range moves {
		m.ApplyTo(b, gs)
		score := -a.negamax(b, gs, -beta, -alpha, depth+1)
		m.Unmake(b, gs)

		if score > bestScore {
			bestScore = score
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	return bestScore
}

// atRootStop reports whether the cancel flag was cleared or the time
// budget has elapsed; the two stop conditions shared by every ply of
// the search.
func (a *Analyzer) atRootStop() bool {
	if a.cancel != nil && !a.cancel.Load() {
		return true
	}
	return a.budget != Unbounded && time.Since(a.start) >= a.budget
}

func (a *Analyzer) reportTelemetry() {
	if a.OnTelemetry == nil {
		return
	}
	now := time.Now()
	if elapsed := now.Sub(a.lastTelem); elapsed >= time.Second {
		nps := 0
		if total := time.Since(a.start).Seconds(); total > 0 {
			nps = int(float64(a.nodes) / total)
		}
		a.OnTelemetry(Telemetry{Nodes: a.nodes, NPS: nps})
		a.lastTelem = now
	}
}
