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

// Package rules implements legal move generation over a board.Board and
// board.GameState.
package rules

import (
	"github.com/rlaptudirm/messcore/pkg/bitboard"
	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/castling"
	"github.com/rlaptudirm/messcore/pkg/move"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// farRank is the promotion rank for color c.
func farRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank8
	}
	return square.Rank1
}

// backRank is the castling rank for color c.
func backRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank1
	}
	return square.Rank8
}

// GetPlayerMoves returns the legal moves for the side to move: generate
// candidates, drop any that leave the mover's king attacked, then append
// the castles that pass castlingMoves' own legality checks.
func GetPlayerMoves(b *board.Board, gs *board.GameState) []move.Move {
	var moves []move.Move

	side := gs.SideToMove
	enemy := side.Other()

	for pieces := b.Colors[side]; pieces != bitboard.Empty; {
		from := pieces.Pop()
		t := b.GetPieceOn(from)

		var rays bitboard.Board
		switch t {
		case piece.Pawn:
			rays = b.GetPawnProgresses(from, side)
			captures := b.GetPawnCaptures(from, side)
			captures &= b.Colors[enemy]
			if gs.EnPassantTarget != square.None {
				captures |= b.GetPawnCaptures(from, side) & bitboard.Squares[gs.EnPassantTarget]
			}
			rays |= captures
		case piece.Bishop:
			rays = b.GetBishopRays(from, side)
		case piece.Knight:
			rays = b.GetKnightRays(from, side)
		case piece.Rook:
			rays = b.GetRookRays(from, side)
		case piece.Queen:
			rays = b.GetQueenRays(from, side)
		case piece.King:
			rays = b.GetKingRays(from, side)
		}

		for rays != bitboard.Empty {
			to := rays.Pop()
			moves = append(moves, candidateMoves(t, side, from, to)...)
		}
	}

	moves = filterLegal(b, gs, moves)
	moves = append(moves, castlingMoves(b, gs)...)

	return moves
}

// candidateMoves expands a single source/destination pair into one or
// more candidate moves: plain moves get exactly one, pawn moves landing
// on the far rank get automatic queen promotion.
func candidateMoves(t piece.Type, c piece.Color, from, to square.Square) []move.Move {
	if t == piece.Pawn && to.Rank() == farRank(c) {
		return []move.Move{move.NewPromotion(from, to, piece.Queen)}
	}
	return []move.Move{move.New(from, to)}
}

// filterLegal removes every move that leaves the mover's king attacked,
// by applying, testing, and unmaking each candidate.
func filterLegal(b *board.Board, gs *board.GameState, candidates []move.Move) []move.Move {
	legal := candidates[:0]

	side := gs.SideToMove
	for i := range candidates {
		m := candidates[i]
		m.ApplyTo(b, gs)

		king, ok := b.FindKing(side)
		inCheck := ok && b.IsAttacked(king, side.Other())

		m.Unmake(b, gs)

		if !inCheck {
			legal = append(legal, m)
		}
	}

	return legal
}

// castlingMoves attempts both castles for the side to move.
func castlingMoves(b *board.Board, gs *board.GameState) []move.Move {
	var moves []move.Move

	side := gs.SideToMove
	king, ok := b.FindKing(side)
	if !ok || king.Rank() != backRank(side) {
		return nil
	}

	occupied := b.Combined()
	attacked := b.GetFullRays(side.Other())

	for _, s := range []castling.Side{castling.Kingside, castling.Queenside} {
		right := castling.RightFor[side][s]
		if gs.CastlingRights&right == 0 {
			continue
		}
		if occupied&castling.MovePaths[side][s] != bitboard.Empty {
			continue
		}
		if attacked&castling.LegalityPaths[side][s] != bitboard.Empty {
			continue
		}

		moves = append(moves, move.New(king, kingDestination(side, s)))
	}

	return moves
}

func kingDestination(c piece.Color, s castling.Side) square.Square {
	switch {
	case c == piece.White && s == castling.Kingside:
		return square.G1
	case c == piece.White && s == castling.Queenside:
		return square.C1
	case c == piece.Black && s == castling.Kingside:
		return square.G8
	default:
		return square.C8
	}
}

// InCheck reports whether the side to move's king is currently attacked.
func InCheck(b *board.Board, gs *board.GameState) bool {
	king, ok := b.FindKing(gs.SideToMove)
	return ok && b.IsAttacked(king, gs.SideToMove.Other())
}
