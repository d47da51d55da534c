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

// Package move implements the Move record and its apply/unmake pair.
package move

import (
	"fmt"
	"strings"

	"github.com/rlaptudirm/messcore/internal/util"
	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/castling"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// Move records a single ply. The fields below Promotion are populated by
// ApplyTo and consumed by Unmake; they are meaningless before ApplyTo
// has run.
type Move struct {
	Source, Dest square.Square
	Promotion    piece.Type // piece.NoType unless this is a promotion

	captured       piece.Piece
	capturedSquare square.Square
	savedRights    castling.Rights
	savedEnPassant square.Square
	savedHalfmove  int
	castle         castling.RookMove
	isCastle       bool
	wasEnPassant   bool
}

// New returns a non-promoting move from source to dest.
func New(source, dest square.Square) Move {
	return Move{Source: source, Dest: dest, Promotion: piece.NoType}
}

// NewPromotion returns a move from source to dest that promotes to p.
func NewPromotion(source, dest square.Square, p piece.Type) Move {
	return Move{Source: source, Dest: dest, Promotion: p}
}

// Null returns the null move, UCI string "0000".
func Null() Move {
	return Move{Source: square.A1, Dest: square.A1, Promotion: piece.NoType}
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.Source == m.Dest
}

// ApplyTo plays m on b/gs in place:
//  1. save the castling rights, en passant target and halfmove clock
//  2. clear the moving side's en passant target, then set a fresh one
//     if this move is a double pawn push
//  3. update castling rights for any corner or king-home square touched
//  4. if this is a castle, relocate the rook
//  5. if this is an en passant capture, remove the captured pawn
//  6. record and remove any piece captured on the destination square
//  7. move the piece, apply promotion, flip the side to move and bump
//     the move counters
func (m *Move) ApplyTo(b *board.Board, gs *board.GameState) {
	mover := gs.SideToMove
	p := b.GetPieceOn(m.Source)

	m.savedRights = gs.CastlingRights
	m.savedEnPassant = gs.EnPassantTarget
	m.savedHalfmove = gs.HalfmoveClock

	m.isCastle = false
	m.wasEnPassant = false
	m.captured = piece.NoPiece

	gs.EnPassantTarget = square.None

	if p == piece.Pawn && util.Abs(int(m.Dest)-int(m.Source)) == 2 {
		gs.EnPassantTarget = square.Square((int(m.Source) + int(m.Dest)) / 2)
	}

	gs.CastlingRights &^= castling.RightUpdates[m.Source]
	gs.CastlingRights &^= castling.RightUpdates[m.Dest]

	if p == piece.King {
		if rm, ok := castling.Rooks[m.Dest]; ok && m.Source == castling.KingSquare[mover] {
			m.isCastle = true
			m.castle = rm
			b.MoveSquare(rm.From, rm.To)
		}
	}

	if p == piece.Pawn && m.Dest == m.savedEnPassant && b.IsEmpty(m.Dest) {
		captureSquare := square.Square(int(m.Dest) - pawnStep(mover))
		if !b.IsEmpty(captureSquare) && b.GetPieceOn(captureSquare) == piece.Pawn {
			m.wasEnPassant = true
			m.capturedSquare = captureSquare
			m.captured = piece.New(piece.Pawn, mover.Other())
			b.ClearSquare(captureSquare, mover.Other(), piece.Pawn)
		}
	}

	if !m.wasEnPassant && !b.IsEmpty(m.Dest) {
		m.captured = piece.New(b.GetPieceOn(m.Dest), b.GetColorOn(m.Dest))
		m.capturedSquare = m.Dest
	}

	isCapture := m.captured != piece.NoPiece
	isPawnMove := p == piece.Pawn

	b.MoveSquare(m.Source, m.Dest)

	if m.Promotion != piece.NoType {
		b.SetPiece(m.Dest, piece.Pawn, m.Promotion)
	}

	if mover == piece.Black {
		gs.FullmoveNumber++
	}

	if isCapture || isPawnMove {
		gs.HalfmoveClock = 0
	} else {
		gs.HalfmoveClock++
	}

	gs.SideToMove = mover.Other()
}

// Unmake reverses ApplyTo, restoring b and gs to their pre-move state.
// It must be called with the exact Move value that ApplyTo populated,
// and only once, immediately after the corresponding ApplyTo.
func (m *Move) Unmake(b *board.Board, gs *board.GameState) {
	mover := gs.SideToMove.Other()

	if m.Promotion != piece.NoType {
		b.SetPiece(m.Dest, m.Promotion, piece.Pawn)
	}

	b.MoveSquare(m.Dest, m.Source)

	if m.wasEnPassant {
		b.SetSquare(m.capturedSquare, mover.Other(), piece.Pawn)
	} else if m.captured != piece.NoPiece {
		b.SetSquare(m.capturedSquare, m.captured.Color(), m.captured.Type())
	}

	if m.isCastle {
		b.MoveSquare(m.castle.To, m.castle.From)
	}

	gs.CastlingRights = m.savedRights
	gs.EnPassantTarget = m.savedEnPassant
	gs.HalfmoveClock = m.savedHalfmove
	gs.SideToMove = mover

	if mover == piece.Black {
		gs.FullmoveNumber--
	}
}

// GetCastle returns the rook relocation performed by this move, if any.
func (m Move) GetCastle() (castling.RookMove, bool) {
	return m.castle, m.isCastle
}

// IsCapture reports whether this move captured a piece, including en
// passant captures. Only meaningful after ApplyTo.
func (m Move) IsCapture() bool {
	return m.captured != piece.NoPiece
}

// String renders m in UCI long algebraic notation, e.g. "e2e4" or
// "a7a8q". The null move renders as "0000".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.Source.String() + m.Dest.String()
	if m.Promotion != piece.NoType {
		s += m.Promotion.String()
	}
	return s
}

// FromUCIString parses a UCI long algebraic move, e.g. "e2e4" or
// "a7a8q", or the null move "0000". The promotion piece type, if any,
// is resolved from the trailing letter.
func FromUCIString(s string) (Move, error) {
	if s == "0000" {
		return Null(), nil
	}

	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move: invalid uci move %q", s)
	}

	source := square.NewFromString(s[0:2])
	dest := square.NewFromString(s[2:4])

	promo := piece.NoType
	if len(s) == 5 {
		p := piece.NewFromString(strings.ToUpper(s[4:5]))
		promo = p.Type()
	}

	return Move{Source: source, Dest: dest, Promotion: promo}, nil
}

func pawnStep(c piece.Color) int {
	if c == piece.White {
		return 1
	}
	return -1
}
