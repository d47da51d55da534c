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

// Package board implements the bitboard position representation: a
// Board holding one bitboard per color and one per piece kind, plus the
// GameState that accompanies it and the Node pairing the two together
// for the search to clone.
package board

import (
	"github.com/rlaptudirm/messcore/pkg/bitboard"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// Board holds the bitboard position representation: two color
// bitboards and six piece bitboards.
type Board struct {
	Colors [piece.ColorN]bitboard.Board
	Pieces [piece.TypeN]bitboard.Board
}

// New creates a Board in the standard starting position.
func New() Board {
	return NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
}

// NewEmpty creates a Board with no pieces on it.
func NewEmpty() Board {
	return Board{}
}

// NewFromFEN creates a Board from a FEN placement field.
func NewFromFEN(placement string) Board {
	b := NewEmpty()

	rank := square.Rank8
	file := square.FileA

	for _, r := range placement {
		switch {
		case r == '/':
			rank--
			file = square.FileA
		case r >= '1' && r <= '8':
			file += square.File(r - '0')
		default:
			p := piece.NewFromString(string(r))
			b.SetSquare(square.New(file, rank), p.Color(), p.Type())
			file++
		}
	}

	return b
}

// Combined returns the union of both color bitboards: every occupied
// square on the board.
func (b *Board) Combined() bitboard.Board {
	return b.Colors[piece.White] | b.Colors[piece.Black]
}

// IsEmpty reports whether no piece occupies the given square.
func (b *Board) IsEmpty(s square.Square) bool {
	return !b.Combined().IsSet(s)
}

// GetColorOn returns the color of the piece occupying s. Undefined if s
// is empty.
func (b *Board) GetColorOn(s square.Square) piece.Color {
	if b.Colors[piece.White].IsSet(s) {
		return piece.White
	}
	return piece.Black
}

// GetPieceOn returns the type of the piece occupying s. Undefined if s
// is empty.
func (b *Board) GetPieceOn(s square.Square) piece.Type {
	for t := piece.Pawn; t < piece.TypeN; t++ {
		if b.Pieces[t].IsSet(s) {
			return t
		}
	}
	return piece.NoType
}

// SetSquare sets the square to a given piece of a color, clearing the
// opposite color bit. It does not clear any existing piece bit of
// another kind: the caller must guarantee the square was already
// empty, or overwrite via MoveSquare.
func (b *Board) SetSquare(s square.Square, c piece.Color, t piece.Type) {
	b.Colors[c.Other()].Unset(s)
	b.Colors[c].Set(s)
	b.Pieces[t].Set(s)
}

// ClearSquare clears both the color bit and the given piece bit at s.
func (b *Board) ClearSquare(s square.Square, c piece.Color, t piece.Type) {
	b.Colors[c].Unset(s)
	b.Pieces[t].Unset(s)
}

// MoveSquare reads the color and piece at source, clears source, clears
// any piece occupying dest, then sets dest to source's color and piece.
func (b *Board) MoveSquare(source, dest square.Square) {
	c := b.GetColorOn(source)
	t := b.GetPieceOn(source)

	b.ClearSquare(source, c, t)

	if !b.IsEmpty(dest) {
		b.ClearSquare(dest, b.GetColorOn(dest), b.GetPieceOn(dest))
	}

	b.SetSquare(dest, c, t)
}

// SetPiece swaps one piece bit for another at the given square, leaving
// the color bit untouched. Used to apply promotions.
func (b *Board) SetPiece(s square.Square, from, to piece.Type) {
	b.Pieces[from].Unset(s)
	b.Pieces[to].Set(s)
}

// FindKing returns the square of color c's king, and whether one exists.
func (b *Board) FindKing(c piece.Color) (square.Square, bool) {
	kings := b.Pieces[piece.King] & b.Colors[c]
	if kings == bitboard.Empty {
		return square.None, false
	}
	return kings.FirstOne(), true
}

// String renders the board as an 8x8 grid of piece glyphs, rank 8 first.
func (b *Board) String() string {
	var out []byte
	for rank := square.Rank8; ; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			s := square.New(file, rank)
			if b.IsEmpty(s) {
				out = append(out, '.')
			} else {
				out = append(out, []byte(piece.New(b.GetPieceOn(s), b.GetColorOn(s)).String())...)
			}
			out = append(out, ' ')
		}
		out = append(out, '\n')
		if rank == square.Rank1 {
			break
		}
	}
	return string(out)
}
