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

// Package bitboard implements a 64-bit bitboard type and the precomputed
// per-square attack tables: these replace any per-move offset math with
// a table lookup plus bitwise operations.
package bitboard

import (
	"math/bits"

	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// Board is a 64-bit bitboard; bit i is set iff a condition holds on
// square i.
type Board uint64

// Empty is the bitboard with no bits set.
const Empty Board = 0

// Squares[s] is the bitboard with only square s set.
var Squares [square.N]Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Squares[s] = 1 << s
	}
}

// IsSet reports whether the given square is set in the bitboard.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != Empty
}

// Set sets the given square in the bitboard. A no-op for square.None.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears the given square in the bitboard. A no-op for square.None.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}

// Pop returns the least-significant set square and clears it.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// FirstOne returns the least-significant set square.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// String renders the bitboard as an 8x8 grid of 1s and 0s, rank 8 first.
func (b Board) String() string {
	var out []byte
	for rank := square.Rank8; ; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			if b.IsSet(square.New(file, rank)) {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
			if file != square.FileH {
				out = append(out, ' ')
			}
		}
		out = append(out, '\n')
		if rank == square.Rank1 {
			break
		}
	}
	return string(out)
}

// File masks: FILES[f] is the bitboard of every square on file f.
var FILES [square.FileN]Board

// Rank masks: RANKS[r] is the bitboard of every square on rank r.
var RANKS [square.RankN]Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		FILES[s.File()].Set(s)
		RANKS[s.Rank()].Set(s)
	}
}

// BeforeOnFile returns the mask of squares on file f strictly below rank r.
func BeforeOnFile(f square.File, r square.Rank) Board {
	var mask Board
	for i := square.Rank1; i < r; i++ {
		mask.Set(square.New(f, i))
	}
	return mask
}

// AfterOnFile returns the mask of squares on file f strictly above rank r.
func AfterOnFile(f square.File, r square.Rank) Board {
	var mask Board
	for i := r + 1; i <= square.Rank8; i++ {
		mask.Set(square.New(f, i))
	}
	return mask
}

// Knight[s] is the bitboard of squares a knight on s attacks.
var Knight [square.N]Board

// King[s] is the bitboard of squares a king on s attacks.
var King [square.N]Board

// PawnCaptures[c][s] is the bitboard of diagonal capture squares for a
// pawn of color c on square s, regardless of occupancy.
var PawnCaptures [piece.ColorN][square.N]Board

// PawnProgresses[c][s] is the bitboard of forward push squares for a
// pawn of color c on square s, including the double push from the
// starting rank. The double-push bit must still be masked out by the
// caller if the single-push square is occupied.
var PawnProgresses [piece.ColorN][square.N]Board

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func inBounds(f, r int) bool {
	return f >= 0 && f < 8 && r >= 0 && r < 8
}

func init() {
	for s := square.Square(0); s < square.N; s++ {
		f, r := int(s.File()), int(s.Rank())

		for _, o := range knightOffsets {
			if nf, nr := f+o[0], r+o[1]; inBounds(nf, nr) {
				Knight[s].Set(square.New(square.File(nf), square.Rank(nr)))
			}
		}

		for _, o := range kingOffsets {
			if nf, nr := f+o[0], r+o[1]; inBounds(nf, nr) {
				King[s].Set(square.New(square.File(nf), square.Rank(nr)))
			}
		}

		for _, c := range []piece.Color{piece.White, piece.Black} {
			dir := 1
			if c == piece.Black {
				dir = -1
			}

			for _, df := range []int{-1, 1} {
				if nf, nr := f+df, r+dir; inBounds(nf, nr) {
					PawnCaptures[c][s].Set(square.New(square.File(nf), square.Rank(nr)))
				}
			}

			startRank := square.Rank2
			if c == piece.Black {
				startRank = square.Rank7
			}

			if nr := r + dir; inBounds(f, nr) {
				PawnProgresses[c][s].Set(square.New(square.File(f), square.Rank(nr)))

				if square.Rank(r) == startRank {
					if dr := r + 2*dir; inBounds(f, dr) {
						PawnProgresses[c][s].Set(square.New(square.File(f), square.Rank(dr)))
					}
				}
			}
		}
	}
}
