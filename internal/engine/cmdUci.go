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
	"github.com/rlaptudirm/messcore/pkg/uci"
)

// handleController dispatches a single controller command against the
// engine's state machine. It returns true when the command was "quit"
// and the engine loop should stop.
func (e *Engine) handleController(cmd uci.Command) bool {
	switch cmd.Kind {
	case uci.CmdUci:
		e.reply(uci.NewIDReply(Name, Author))

	case uci.CmdDebug:
		e.debug = cmd.DebugOn

	case uci.CmdIsReady:
		// answered unconditionally, even mid-search.
		e.reply(uci.NewReadyOkReply())

	case uci.CmdNewGame:
		if e.working {
			e.logf("engine: ucinewgame received while working, ignoring")
			break
		}
		e.node = board.NewNode()

	case uci.CmdPosition:
		e.handlePosition(cmd.Position)

	case uci.CmdGo:
		e.handleGo(cmd.Go)

	case uci.CmdStop:
		e.handleStop()

	case uci.CmdDrawBoard:
		e.reply(uci.NewRawReply(e.node.Board.String()))
		e.writeDiagram()

	case uci.CmdQuit:
		e.writeDiagram()
		return true
	}

	return false
}
