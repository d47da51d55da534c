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

// Package eval implements the BoardStats accumulator and the Shannon
// linear evaluator.
package eval

import (
	"github.com/rlaptudirm/messcore/pkg/bitboard"
	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/rules"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// BoardStats holds one side's material and pawn-structure counts.
type BoardStats struct {
	NumPawns   int
	NumBishops int
	NumKnights int
	NumRooks   int
	NumQueens  int
	NumKings   int

	NumDoubledPawns  int
	NumBackwardPawns int
	NumIsolatedPawns int

	Mobility int
}

// Stats computes the BoardStats for both colors of b. gs is mutated and
// restored in place: mobility is counted with each color in turn as the
// side to move.
func Stats(b *board.Board, gs *board.GameState) [piece.ColorN]BoardStats {
	var s [piece.ColorN]BoardStats

	for _, c := range []piece.Color{piece.White, piece.Black} {
		pawns := b.Pieces[piece.Pawn] & b.Colors[c]

		s[c].NumPawns = pawns.Count()
		s[c].NumBishops = (b.Pieces[piece.Bishop] & b.Colors[c]).Count()
		s[c].NumKnights = (b.Pieces[piece.Knight] & b.Colors[c]).Count()
		s[c].NumRooks = (b.Pieces[piece.Rook] & b.Colors[c]).Count()
		s[c].NumQueens = (b.Pieces[piece.Queen] & b.Colors[c]).Count()
		s[c].NumKings = (b.Pieces[piece.King] & b.Colors[c]).Count()

		s[c].NumDoubledPawns, s[c].NumBackwardPawns, s[c].NumIsolatedPawns = pawnStructure(pawns, c)
	}

	saved := gs.SideToMove
	for _, c := range []piece.Color{piece.White, piece.Black} {
		gs.SideToMove = c
		s[c].Mobility = len(rules.GetPlayerMoves(b, gs))
	}
	gs.SideToMove = saved

	return s
}

// pawnStructure computes doubled, backward, and isolated pawn counts for
// the given pawn bitboard.
func pawnStructure(pawns bitboard.Board, c piece.Color) (doubled, backward, isolated int) {
	for _, f := range fileOccupants(pawns) {
		count := (pawns & bitboard.FILES[f]).Count()
		if count > 1 {
			doubled += count
		}
	}

	for walk := pawns; walk != bitboard.Empty; {
		s := walk.Pop()
		f := s.File()

		adjacent := adjacentFiles(pawns, f)

		if adjacent == bitboard.Empty {
			isolated++
			backward++
			continue
		}

		if isBackward(adjacent, s, c) {
			backward++
		}
	}

	return doubled, backward, isolated
}

// fileOccupants returns the distinct files with at least one pawn set.
func fileOccupants(pawns bitboard.Board) []square.File {
	var files []square.File
	for f := square.FileA; f <= square.FileH; f++ {
		if pawns&bitboard.FILES[f] != bitboard.Empty {
			files = append(files, f)
		}
	}
	return files
}

// adjacentFiles returns the pawns of the bitboard lying on either file
// neighboring f.
func adjacentFiles(pawns bitboard.Board, f square.File) bitboard.Board {
	var mask bitboard.Board
	if f > square.FileA {
		mask |= bitboard.FILES[f-1]
	}
	if f < square.FileH {
		mask |= bitboard.FILES[f+1]
	}
	return pawns & mask
}

// isBackward reports whether the pawn on s has no friendly pawn on an
// adjacent file at or behind its rank (behind = lower ranks for white,
// higher for black).
func isBackward(adjacent bitboard.Board, s square.Square, c piece.Color) bool {
	for walk := adjacent; walk != bitboard.Empty; {
		other := walk.Pop()
		if c == piece.White && other.Rank() <= s.Rank() {
			return false
		}
		if c == piece.Black && other.Rank() >= s.Rank() {
			return false
		}
	}
	return true
}
