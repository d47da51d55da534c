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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are represented using the algebraic notation.
// https://www.chessprogramming.org/Algebraic_Chess_Notation
// The null square is represented using the "-" symbol.
package square

// File represents a file (vertical line) on the chessboard.
type File int8

// constants representing the files, a through h.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files on a chessboard.
const FileN = 8

func (f File) String() string {
	const fileToStr = "abcdefgh"
	return string(fileToStr[f])
}

// FileFrom creates a File from its single-character identifier.
func FileFrom(id string) File {
	return File(id[0] - 'a')
}

// Rank represents a rank (horizontal line) on the chessboard.
type Rank int8

// constants representing the ranks, 1 through 8.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// RankN is the number of ranks on a chessboard.
const RankN = 8

func (r Rank) String() string {
	const rankToStr = "12345678"
	return string(rankToStr[r])
}

// RankFrom creates a Rank from its single-character identifier.
func RankFrom(id string) Rank {
	return Rank(id[0] - '1')
}

// Square represents a single square on a chessboard, encoded as
// file*8 + rank: A1=0, A2=1, ..., B1=8, ..., H8=63.
type Square int8

// None represents the absence of a square, used for an unset en-passant
// target or a captured-piece square that doesn't apply.
const None Square = -1

// N is the number of squares on a chessboard.
const N = 64

// constants for every square on the board.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 8, 16, 24, 32, 40, 48, 56
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 1, 9, 17, 25, 33, 41, 49, 57
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 2, 10, 18, 26, 34, 42, 50, 58
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 3, 11, 19, 27, 35, 43, 51, 59
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 4, 12, 20, 28, 36, 44, 52, 60
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 5, 13, 21, 29, 37, 45, 53, 61
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 6, 14, 22, 30, 38, 46, 54, 62
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 7, 15, 23, 31, 39, 47, 55, 63
)

// New creates a Square from a file and rank.
func New(file File, rank Rank) Square {
	return Square(int(file)*8 + int(rank))
}

// NewFromString parses a Square from its two-character algebraic form,
// e.g. "e4". The null square is represented by "-".
func NewFromString(id string) Square {
	switch {
	case id == "-":
		return None
	case len(id) != 2:
		panic("square: invalid square identifier " + id)
	}

	return New(FileFrom(id[0:1]), RankFrom(id[1:2]))
}

// File returns the file the square is on.
func (s Square) File() File {
	return File(s) / 8
}

// Rank returns the rank the square is on.
func (s Square) Rank() Rank {
	return Rank(s) % 8
}

// String converts a Square to its two-character algebraic form.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	return s.File().String() + s.Rank().String()
}
