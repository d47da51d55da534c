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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rlaptudirm/messcore/pkg/uci/flag"
)

var goFlags = newGoFlagSchema()

func newGoFlagSchema() flag.Schema {
	s := flag.NewSchema()
	s.Single("movetime")
	s.Single("wtime")
	s.Single("btime")
	s.Single("winc")
	s.Single("binc")
	s.Single("movestogo")
	s.Single("depth")
	s.Single("nodes")
	s.Single("mate")
	s.Button("infinite")
	return s
}

// ParseCommand parses a single line of controller input into a Command.
// A malformed or unrecognized line is a protocol error: the caller
// should log and ignore it.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("uci: empty command line")
	}

	name, args := fields[0], fields[1:]

	switch name {
	case "uci":
		return Command{Kind: CmdUci}, nil
	case "debug":
		return parseDebug(args)
	case "isready":
		return Command{Kind: CmdIsReady}, nil
	case "ucinewgame":
		return Command{Kind: CmdNewGame}, nil
	case "position":
		return parsePosition(args)
	case "go":
		return parseGo(args)
	case "stop":
		return Command{Kind: CmdStop}, nil
	case "quit":
		return Command{Kind: CmdQuit}, nil
	case "d":
		return Command{Kind: CmdDrawBoard}, nil
	default:
		return Command{}, fmt.Errorf("uci: unrecognized command %q", name)
	}
}

func parseDebug(args []string) (Command, error) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return Command{}, fmt.Errorf("uci: debug: want \"on\" or \"off\"")
	}
	return Command{Kind: CmdDebug, DebugOn: args[0] == "on"}, nil
}

func parsePosition(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("uci: position: missing startpos/fen")
	}

	p := PositionArgs{}

	switch args[0] {
	case "startpos":
		p.Startpos = true
		args = args[1:]
	case "fen":
		args = args[1:]
		if len(args) < 6 {
			return Command{}, fmt.Errorf("uci: position fen: want 6 fields")
		}
		p.FEN = strings.Join(args[:6], " ")
		args = args[6:]
	default:
		return Command{}, fmt.Errorf("uci: position: unrecognized argument %q", args[0])
	}

	if len(args) > 0 {
		if args[0] != "moves" {
			return Command{}, fmt.Errorf("uci: position: unrecognized argument %q", args[0])
		}
		p.Moves = args[1:]
	}

	return Command{Kind: CmdPosition, Position: p}, nil
}

func parseGo(args []string) (Command, error) {
	values, err := goFlags.Parse(args)
	if err != nil {
		return Command{}, fmt.Errorf("uci: go: %w", err)
	}

	g := NewGoArgs()

	for name, field := range map[string]*int{
		"movetime":  &g.MoveTime,
		"wtime":     &g.WTime,
		"btime":     &g.BTime,
		"winc":      &g.WInc,
		"binc":      &g.BInc,
		"movestogo": &g.MovesToGo,
		"depth":     &g.Depth,
		"nodes":     &g.Nodes,
	} {
		v, ok := values[name]
		if !ok || !v.Set {
			continue
		}
		n, err := strconv.Atoi(v.Value.(string))
		if err != nil {
			return Command{}, fmt.Errorf("uci: go: flag %s: %w", name, err)
		}
		*field = n
	}

	if v, ok := values["infinite"]; ok && v.Set {
		g.Infinite = true
	}

	return Command{Kind: CmdGo, Go: g}, nil
}
