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

// Package uci implements the tagged command/reply types and line codec
// of the UCI protocol surface, following the
// table-driven flag parsing style of pkg/uci/flag.
package uci

// CommandKind identifies which of the closed set of inbound UCI
// commands a Command carries.
type CommandKind int

const (
	CmdUci CommandKind = iota
	CmdDebug
	CmdIsReady
	CmdNewGame
	CmdPosition
	CmdGo
	CmdStop
	CmdQuit

	// CmdDrawBoard is not part of the UCI protocol; it renders the
	// current position to the controller for interactive debugging.
	CmdDrawBoard
)

// Command is a tagged union over every inbound controller-to-engine
// message. Only the field(s) matching Kind are meaningful.
type Command struct {
	Kind CommandKind

	DebugOn  bool
	Position PositionArgs
	Go       GoArgs
}

// PositionArgs carries the sub-arguments of a "position" command.
type PositionArgs struct {
	Startpos bool
	FEN      string // meaningful when Startpos is false
	Moves    []string
}

// GoArgs carries the sub-arguments of a "go" command. Unset integer
// fields hold -1, matching the "not given" convention of search.Params.
type GoArgs struct {
	MoveTime  int
	WTime     int
	BTime     int
	WInc      int
	BInc      int
	MovesToGo int
	Depth     int
	Nodes     int
	Infinite  bool
}

// NewGoArgs returns a GoArgs with every integer field unset.
func NewGoArgs() GoArgs {
	return GoArgs{MoveTime: -1, WTime: -1, BTime: -1, WInc: -1, BInc: -1, MovesToGo: -1, Depth: -1, Nodes: -1}
}
