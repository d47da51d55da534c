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

// Package castling implements castling rights and the precomputed
// castling path tables.
package castling

import (
	"github.com/rlaptudirm/messcore/pkg/bitboard"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// Rights is a 4-bit mask, one bit per {WH-K, WH-Q, BL-K, BL-Q}.
type Rights uint8

const (
	WhiteKingside Rights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	None  Rights = 0
	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside
	All   Rights = White | Black

	N = 16
)

// NewRights parses castling rights from their FEN field, e.g. "KQkq" or "-".
func NewRights(s string) Rights {
	var r Rights
	for _, c := range s {
		switch c {
		case 'K':
			r |= WhiteKingside
		case 'Q':
			r |= WhiteQueenside
		case 'k':
			r |= BlackKingside
		case 'q':
			r |= BlackQueenside
		}
	}
	return r
}

func (r Rights) String() string {
	s := ""
	if r&WhiteKingside != 0 {
		s += "K"
	}
	if r&WhiteQueenside != 0 {
		s += "Q"
	}
	if r&BlackKingside != 0 {
		s += "k"
	}
	if r&BlackQueenside != 0 {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Side identifies kingside or queenside castling.
type Side int

const (
	Kingside Side = iota
	Queenside
	SideN
)

// RookMove describes where a castle's rook travels.
type RookMove struct {
	From, To square.Square
	Rook     piece.Piece
}

// Rooks is indexed by the king's destination square during castling, and
// gives the corresponding rook relocation.
var Rooks = map[square.Square]RookMove{
	square.G1: {From: square.H1, To: square.F1, Rook: piece.New(piece.Rook, piece.White)},
	square.C1: {From: square.A1, To: square.D1, Rook: piece.New(piece.Rook, piece.White)},
	square.G8: {From: square.H8, To: square.F8, Rook: piece.New(piece.Rook, piece.Black)},
	square.C8: {From: square.A8, To: square.D8, Rook: piece.New(piece.Rook, piece.Black)},
}

// KingSquare is the back-rank origin square of the king, per color.
var KingSquare = [piece.ColorN]square.Square{piece.White: square.E1, piece.Black: square.E8}

// kingTarget is the king's destination square, per color and side.
var kingTarget = [piece.ColorN][SideN]square.Square{
	piece.White: {Kingside: square.G1, Queenside: square.C1},
	piece.Black: {Kingside: square.G8, Queenside: square.C8},
}

// RightFor maps color and side to the corresponding Rights bit.
var RightFor = [piece.ColorN][SideN]Rights{
	piece.White: {Kingside: WhiteKingside, Queenside: WhiteQueenside},
	piece.Black: {Kingside: BlackKingside, Queenside: BlackQueenside},
}

// LegalityPaths[c][side] is the mask of squares (king origin, traversed
// square, destination) that must be unattacked for the castle to be legal.
var LegalityPaths [piece.ColorN][SideN]bitboard.Board

// MovePaths[c][side] is the mask of squares between king and rook that
// must be empty for the castle to be legal.
var MovePaths [piece.ColorN][SideN]bitboard.Board

// RightUpdates[s] is the set of castling rights cleared when a move
// touches square s as its source or destination:
// a corner square clears that rook's right, the king's home square
// clears both of that color's rights.
var RightUpdates [square.N]Rights

func init() {
	for _, c := range []piece.Color{piece.White, piece.Black} {
		origin := KingSquare[c]

		LegalityPaths[c][Kingside] = sq(origin) | sq(origin+8) | sq(kingTarget[c][Kingside])
		MovePaths[c][Kingside] = sq(origin+8) | sq(origin+16)

		LegalityPaths[c][Queenside] = sq(origin) | sq(origin-8) | sq(kingTarget[c][Queenside])
		MovePaths[c][Queenside] = sq(origin-8) | sq(origin-16) | sq(origin-24)
	}

	RightUpdates[square.A1] = WhiteQueenside
	RightUpdates[square.H1] = WhiteKingside
	RightUpdates[square.A8] = BlackQueenside
	RightUpdates[square.H8] = BlackKingside
	RightUpdates[square.E1] = White
	RightUpdates[square.E8] = Black
}

func sq(s square.Square) bitboard.Board {
	var b bitboard.Board
	b.Set(s)
	return b
}
