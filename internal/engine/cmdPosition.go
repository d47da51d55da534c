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
	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/move"
	"github.com/rlaptudirm/messcore/pkg/uci"
)

// handlePosition applies a "position" command's sub-operations in order:
// reset (startpos or fen), then replay each move.
func (e *Engine) handlePosition(p uci.PositionArgs) {
	if e.working {
		e.logf("engine: position received while working, ignoring")
		return
	}

	// the FEN and move parsers panic on malformed input; e.node is only
	// replaced at the end, so a recovered panic leaves it unchanged.
	defer func() {
		if r := recover(); r != nil {
			e.logf("engine: position: %v", r)
		}
	}()

	var node board.Node
	if p.Startpos {
		node = board.NewNode()
	} else {
		n, err := board.NewNodeFromFEN(p.FEN)
		if err != nil {
			e.logf("engine: position: %v", err)
			return
		}
		node = n
	}

	for _, uciMove := range p.Moves {
		m, err := move.FromUCIString(uciMove)
		if err != nil {
			e.logf("engine: position: %v", err)
			return
		}
		m.ApplyTo(&node.Board, &node.GameState)
	}

	e.node = node
}
