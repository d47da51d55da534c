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
	"fmt"
	"strconv"
	"strings"

	"github.com/rlaptudirm/messcore/pkg/castling"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewNodeFromFEN parses the six whitespace-separated FEN fields of fen
// into a Node.
func NewNodeFromFEN(fen string) (Node, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Node{}, fmt.Errorf("board: fen %q: want 6 fields, got %d", fen, len(fields))
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return Node{}, fmt.Errorf("board: fen %q: bad halfmove clock: %w", fen, err)
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return Node{}, fmt.Errorf("board: fen %q: bad fullmove number: %w", fen, err)
	}

	return Node{
		Board: NewFromFEN(fields[0]),
		GameState: GameState{
			SideToMove:      piece.NewColor(fields[1]),
			CastlingRights:  castling.NewRights(fields[2]),
			EnPassantTarget: square.NewFromString(fields[3]),
			HalfmoveClock:   halfmove,
			FullmoveNumber:  fullmove,
		},
	}, nil
}

// FEN serializes the placement field of b.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := square.Rank8; ; rank-- {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			s := square.New(file, rank)
			if b.IsEmpty(s) {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.New(b.GetPieceOn(s), b.GetColorOn(s)).String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank == square.Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	return sb.String()
}

// FEN serializes n as a full six-field FEN string.
func (n Node) FEN() string {
	return strings.Join([]string{
		n.Board.FEN(),
		n.GameState.SideToMove.String(),
		n.GameState.CastlingRights.String(),
		n.GameState.EnPassantTarget.String(),
		strconv.Itoa(n.GameState.HalfmoveClock),
		strconv.Itoa(n.GameState.FullmoveNumber),
	}, " ")
}
