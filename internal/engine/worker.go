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
	"time"

	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/search"
	"github.com/rlaptudirm/messcore/pkg/uci"
)

// workerEventKind identifies which worker→engine reply a workerEvent
// carries: Info or BestMove. The worker sends no log events; the
// "Checkmate is unavoidable." line is logged by the engine itself when
// it handles a BestMove whose result has no legal moves.
type workerEventKind int

const (
	workerInfo workerEventKind = iota
	workerBestMove
)

// workerEvent is a worker's message back to the engine's queue.
type workerEvent struct {
	kind      workerEventKind
	telemetry search.Telemetry
	result    search.Result
}

// runWorker is the worker thread's body: it holds its own
// clone of the root node and shares only the cancel flag and the
// engine's queue with the rest of the system. Info messages are
// guaranteed to precede the terminating BestMove message, since both
// are sent, in order, from this single goroutine.
func (e *Engine) runWorker(node board.Node, budget time.Duration, cancel *atomic.Bool) {
	analyzer := &search.Analyzer{
		OnTelemetry: func(t search.Telemetry) {
			e.queue <- event{worker: &workerEvent{kind: workerInfo, telemetry: t}}
		},
	}

	result := analyzer.Analyze(node, budget, cancel)
	e.queue <- event{worker: &workerEvent{kind: workerBestMove, result: result}}
}

// handleWorker processes a single worker reply.
func (e *Engine) handleWorker(ev workerEvent) {
	switch ev.kind {
	case workerInfo:
		e.reply(uci.NewInfoReply(ev.telemetry.Nodes, ev.telemetry.NPS))

	case workerBestMove:
		e.working = false
		e.cancel = nil

		if ev.result.NoLegalMoves {
			e.logf("Checkmate is unavoidable.")
		}

		e.reply(uci.NewBestMoveReply(ev.result.Move.String()))
	}
}
