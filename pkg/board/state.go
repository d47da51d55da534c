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

import (
	"github.com/rlaptudirm/messcore/pkg/castling"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// GameState holds the position metadata that isn't captured by piece
// placement: side to move, castling rights, the en-passant target, and
// the move counters.
type GameState struct {
	SideToMove      piece.Color
	CastlingRights  castling.Rights
	EnPassantTarget square.Square // square.None if not applicable
	HalfmoveClock   int
	FullmoveNumber  int
}

// NewGameState returns the GameState of the standard starting position.
func NewGameState() GameState {
	return GameState{
		SideToMove:      piece.White,
		CastlingRights:  castling.All,
		EnPassantTarget: square.None,
		HalfmoveClock:   0,
		FullmoveNumber:  1,
	}
}

// Node pairs a Board with its GameState: the unit the search clones at
// the start of a "go" command.
type Node struct {
	Board     Board
	GameState GameState
}

// NewNode returns the Node of the standard starting position.
func NewNode() Node {
	return Node{Board: New(), GameState: NewGameState()}
}

// Clone returns a value copy of the Node. Board and GameState are both
// plain value types, so a Go struct copy already gives the search its
// own independent snapshot to mutate in place.
func (n Node) Clone() Node {
	return n
}
