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
	"github.com/rlaptudirm/messcore/pkg/bitboard"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// GetPawnProgresses returns the forward push squares available to a pawn
// of color c on s, given the board's current occupancy: the single push
// is only included if empty, and the double push is
// masked out whenever the single-push square is occupied.
func (b *Board) GetPawnProgresses(s square.Square, c piece.Color) bitboard.Board {
	table := bitboard.PawnProgresses[c][s]
	occ := b.Combined()

	single := table &^ bitboard.RANKS[doublePushRank(c)]
	double := table & bitboard.RANKS[doublePushRank(c)]

	if single&occ != bitboard.Empty {
		// single push square is occupied: neither push is possible.
		return bitboard.Empty
	}

	if double != bitboard.Empty && double&occ != bitboard.Empty {
		double = bitboard.Empty
	}

	return single | double
}

func doublePushRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank4
	}
	return square.Rank5
}

// GetPawnCaptures returns the diagonal attack squares for a pawn of color
// c on s, regardless of occupancy.
func (b *Board) GetPawnCaptures(s square.Square, c piece.Color) bitboard.Board {
	return bitboard.PawnCaptures[c][s]
}

// GetKnightRays returns the knight moves from s that don't land on a
// friendly-occupied square.
func (b *Board) GetKnightRays(s square.Square, c piece.Color) bitboard.Board {
	return bitboard.Knight[s] &^ b.Colors[c]
}

// GetKnightFullRays returns the knight moves from s, including
// friendly-occupied squares (used for attacker-set oracles).
func (b *Board) GetKnightFullRays(s square.Square) bitboard.Board {
	return bitboard.Knight[s]
}

// GetKingRays returns the king moves from s that don't land on a
// friendly-occupied square.
func (b *Board) GetKingRays(s square.Square, c piece.Color) bitboard.Board {
	return bitboard.King[s] &^ b.Colors[c]
}

// GetKingFullRays returns the king moves from s, including
// friendly-occupied squares.
func (b *Board) GetKingFullRays(s square.Square) bitboard.Board {
	return bitboard.King[s]
}

// direction is a (file, rank) step used to walk a sliding ray.
type direction struct{ df, dr int }

var bishopDirections = [4]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirections = [4]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// walkRay implements the blockable-ray algorithm for sliding pieces:
// step one square at a time in each direction; stop when leaving the board;
// stop before adding a friendly-occupied square unless full is true, in
// which case it is included and the walk stops; after adding an
// enemy-occupied square, stop.
func (b *Board) walkRay(s square.Square, c piece.Color, dirs []direction, full bool) bitboard.Board {
	var rays bitboard.Board

	friendly := b.Colors[c]
	enemy := b.Colors[c.Other()]

	for _, d := range dirs {
		f, r := int(s.File()), int(s.Rank())

		for {
			f += d.df
			r += d.dr

			if f < 0 || f > 7 || r < 0 || r > 7 {
				break
			}

			dest := square.New(square.File(f), square.Rank(r))

			if friendly.IsSet(dest) {
				if full {
					rays.Set(dest)
				}
				break
			}

			rays.Set(dest)

			if enemy.IsSet(dest) {
				break
			}
		}
	}

	return rays
}

// GetBishopRays returns the bishop moves from s, excluding squares
// occupied by a friendly piece.
func (b *Board) GetBishopRays(s square.Square, c piece.Color) bitboard.Board {
	return b.walkRay(s, c, bishopDirections[:], false)
}

// GetBishopFullRays returns the bishop's full attack set from s,
// including friendly-occupied squares.
func (b *Board) GetBishopFullRays(s square.Square, c piece.Color) bitboard.Board {
	return b.walkRay(s, c, bishopDirections[:], true)
}

// GetRookRays returns the rook moves from s, excluding squares occupied
// by a friendly piece.
func (b *Board) GetRookRays(s square.Square, c piece.Color) bitboard.Board {
	return b.walkRay(s, c, rookDirections[:], false)
}

// GetRookFullRays returns the rook's full attack set from s, including
// friendly-occupied squares.
func (b *Board) GetRookFullRays(s square.Square, c piece.Color) bitboard.Board {
	return b.walkRay(s, c, rookDirections[:], true)
}

// GetQueenRays returns the queen moves from s, excluding squares occupied
// by a friendly piece.
func (b *Board) GetQueenRays(s square.Square, c piece.Color) bitboard.Board {
	return b.GetBishopRays(s, c) | b.GetRookRays(s, c)
}

// GetQueenFullRays returns the queen's full attack set from s, including
// friendly-occupied squares.
func (b *Board) GetQueenFullRays(s square.Square, c piece.Color) bitboard.Board {
	return b.GetBishopFullRays(s, c) | b.GetRookFullRays(s, c)
}

// GetFullRays returns the union of every full-ray attack by every piece
// of color c: the attacker-set oracle used to test check and castling
// legality.
func (b *Board) GetFullRays(c piece.Color) bitboard.Board {
	var rays bitboard.Board

	for pawns := b.Pieces[piece.Pawn] & b.Colors[c]; pawns != bitboard.Empty; {
		s := pawns.Pop()
		rays |= b.GetPawnCaptures(s, c)
	}

	for knights := b.Pieces[piece.Knight] & b.Colors[c]; knights != bitboard.Empty; {
		rays |= b.GetKnightFullRays(knights.Pop())
	}

	for bishops := b.Pieces[piece.Bishop] & b.Colors[c]; bishops != bitboard.Empty; {
		rays |= b.GetBishopFullRays(bishops.Pop(), c)
	}

	for rooks := b.Pieces[piece.Rook] & b.Colors[c]; rooks != bitboard.Empty; {
		rays |= b.GetRookFullRays(rooks.Pop(), c)
	}

	for queens := b.Pieces[piece.Queen] & b.Colors[c]; queens != bitboard.Empty; {
		rays |= b.GetQueenFullRays(queens.Pop(), c)
	}

	if king, ok := b.FindKing(c); ok {
		rays |= b.GetKingFullRays(king)
	}

	return rays
}

// IsAttacked reports whether s is attacked by any piece of color by.
func (b *Board) IsAttacked(s square.Square, by piece.Color) bool {
	return b.GetFullRays(by).IsSet(s)
}
