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

package uci

import "testing"

func TestParseCommandKinds(t *testing.T) {
	tests := []struct {
		line string
		want CommandKind
	}{
		{"uci", CmdUci},
		{"isready", CmdIsReady},
		{"ucinewgame", CmdNewGame},
		{"stop", CmdStop},
		{"quit", CmdQuit},
		{"d", CmdDrawBoard},
	}
	for _, tt := range tests {
		cmd, err := ParseCommand(tt.line)
		if err != nil {
			t.Errorf("ParseCommand(%q): %v", tt.line, err)
			continue
		}
		if cmd.Kind != tt.want {
			t.Errorf("ParseCommand(%q).Kind = %v, want %v", tt.line, cmd.Kind, tt.want)
		}
	}
}

func TestParseCommandEmptyLine(t *testing.T) {
	if _, err := ParseCommand(""); err == nil {
		t.Error("ParseCommand(\"\") should error")
	}
}

func TestParseCommandUnrecognized(t *testing.T) {
	if _, err := ParseCommand("frobnicate"); err == nil {
		t.Error("ParseCommand of an unrecognized command should error")
	}
}

func TestParseDebug(t *testing.T) {
	cmd, err := ParseCommand("debug on")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Kind != CmdDebug || !cmd.DebugOn {
		t.Errorf("ParseCommand(\"debug on\") = %+v, want DebugOn=true", cmd)
	}

	cmd, err = ParseCommand("debug off")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Kind != CmdDebug || cmd.DebugOn {
		t.Errorf("ParseCommand(\"debug off\") = %+v, want DebugOn=false", cmd)
	}

	if _, err := ParseCommand("debug maybe"); err == nil {
		t.Error("ParseCommand(\"debug maybe\") should error")
	}
}

func TestParsePositionStartpos(t *testing.T) {
	cmd, err := ParseCommand("position startpos moves e2e4 e7e5")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if !cmd.Position.Startpos {
		t.Error("Startpos = false, want true")
	}
	if len(cmd.Position.Moves) != 2 || cmd.Position.Moves[0] != "e2e4" || cmd.Position.Moves[1] != "e7e5" {
		t.Errorf("Moves = %v, want [e2e4 e7e5]", cmd.Position.Moves)
	}
}

func TestParsePositionFEN(t *testing.T) {
	const fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	cmd, err := ParseCommand("position fen " + fen)
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Position.Startpos {
		t.Error("Startpos = true, want false")
	}
	if cmd.Position.FEN != fen {
		t.Errorf("FEN = %q, want %q", cmd.Position.FEN, fen)
	}
	if len(cmd.Position.Moves) != 0 {
		t.Errorf("Moves = %v, want none", cmd.Position.Moves)
	}
}

func TestParsePositionMissingArgument(t *testing.T) {
	if _, err := ParseCommand("position"); err == nil {
		t.Error("ParseCommand(\"position\") should error")
	}
}

func TestParseGoArgs(t *testing.T) {
	cmd, err := ParseCommand("go wtime 10000 btime 9000 winc 100 binc 200 depth 4")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	g := cmd.Go
	if g.WTime != 10000 || g.BTime != 9000 || g.WInc != 100 || g.BInc != 200 || g.Depth != 4 {
		t.Errorf("GoArgs = %+v, want wtime=10000 btime=9000 winc=100 binc=200 depth=4", g)
	}
	if g.MoveTime != -1 || g.MovesToGo != -1 || g.Nodes != -1 {
		t.Errorf("unset fields not -1: %+v", g)
	}
	if g.Infinite {
		t.Error("Infinite = true, want false")
	}
}

func TestParseGoInfinite(t *testing.T) {
	cmd, err := ParseCommand("go infinite")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if !cmd.Go.Infinite {
		t.Error("Infinite = false, want true")
	}
}
