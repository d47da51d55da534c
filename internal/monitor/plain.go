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

package monitor

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"

	"github.com/rlaptudirm/messcore/pkg/search"
)

// Printer writes plain telemetry lines to w, used when -monitor is not
// set. Long lines are wrapped to the terminal width, and the "info"
// label is colored when w is a terminal.
type Printer struct {
	w     io.Writer
	width int
	color bool
}

// NewPrinter builds a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	width := 80
	color := false

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		color = true
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}

	return &Printer{w: w, width: width, color: color}
}

// Update prints a single telemetry snapshot.
func (p *Printer) Update(t search.Telemetry) {
	label := "[bold]info[reset]"
	if !p.color {
		label = "info"
	} else {
		label = colorstring.Color(label)
	}

	nodes := runewidth.FillRight(fmt.Sprintf("%d", t.Nodes), 10)
	line := fmt.Sprintf("%s nodes %s nps %d", label, nodes, t.NPS)
	p.println(line)
}

// Done prints the terminating bestmove line.
func (p *Printer) Done(move string) {
	p.println(fmt.Sprintf("bestmove %s", move))
}

func (p *Printer) println(line string) {
	fmt.Fprintln(p.w, wordwrap.WrapString(line, uint(p.width)))
}
