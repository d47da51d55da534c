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

// Package render draws a Board as an SVG diagram, for engines run with
// -diagram set. This is not part of the UCI protocol; it is a
// convenience for visually inspecting the engine's current position.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/piece"
	"github.com/rlaptudirm/messcore/pkg/square"
)

// squareSize is the side length, in pixels, of one board square.
const squareSize = 60

// boardSize is the side length, in pixels, of the whole 8x8 board.
const boardSize = squareSize * square.FileN

var (
	lightSquare = "fill:#eeeed2"
	darkSquare  = "fill:#769656"
	whitePiece  = "fill:#ffffff;stroke:#000000;stroke-width:1;font-size:36px;font-weight:bold;text-anchor:middle"
	blackPiece  = "fill:#000000;font-size:36px;font-weight:bold;text-anchor:middle"
)

// Board writes an SVG diagram of b to w.
func Board(w io.Writer, b *board.Board) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)

	for file := square.FileA; file <= square.FileH; file++ {
		for rank := square.Rank1; rank <= square.Rank8; rank++ {
			x := int(file) * squareSize
			y := (square.FileN - 1 - int(rank)) * squareSize

			style := lightSquare
			if (int(file)+int(rank))%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			s := square.New(file, rank)
			if b.IsEmpty(s) {
				continue
			}

			p := piece.New(b.GetPieceOn(s), b.GetColorOn(s))
			style = blackPiece
			if p.Color() == piece.White {
				style = whitePiece
			}
			canvas.Text(x+squareSize/2, y+squareSize*2/3, glyph(p), style)
		}
	}

	canvas.End()
}

// glyph maps a piece to the Unicode chess symbol drawn on its square.
func glyph(p piece.Piece) string {
	white := [...]string{"♙", "♗", "♘", "♖", "♕", "♔"}
	black := [...]string{"♟", "♝", "♞", "♜", "♛", "♚"}
	if p.Color() == piece.White {
		return white[p.Type()]
	}
	return black[p.Type()]
}
