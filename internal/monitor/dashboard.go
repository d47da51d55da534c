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

// Package monitor displays search telemetry. With -monitor it draws a
// live terminal dashboard; otherwise it prints plain info lines.
package monitor

import (
	"fmt"
	"math"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/rlaptudirm/messcore/pkg/search"
)

// Dashboard is a live terminal view of search telemetry, built on
// termui's widget set.
type Dashboard struct {
	info  *widgets.Paragraph
	nodes *widgets.Gauge

	width, height int
}

// NewDashboard initializes the terminal and lays out the dashboard's
// widgets. The caller must call Close once done.
func NewDashboard() (*Dashboard, error) {
	if err := ui.Init(); err != nil {
		return nil, fmt.Errorf("monitor: %w", err)
	}

	w, h := ui.TerminalDimensions()

	info := widgets.NewParagraph()
	info.Title = "messcore"
	info.Text = "waiting for search..."
	info.SetRect(0, 0, w, 5)

	nodes := widgets.NewGauge()
	nodes.Title = "nodes/s (log scale, capped at 10M)"
	nodes.SetRect(0, 5, w, 8)
	nodes.BarColor = ui.ColorGreen

	d := &Dashboard{info: info, nodes: nodes, width: w, height: h}
	d.render()
	return d, nil
}

// Update redraws the dashboard with a fresh telemetry sample.
func (d *Dashboard) Update(t search.Telemetry) {
	d.info.Text = fmt.Sprintf("nodes: %d\nnps:   %d", t.Nodes, t.NPS)

	percent := 0
	if t.NPS > 1 {
		// log10(10M) = 7
		percent = int(math.Log10(float64(t.NPS)) * 100 / 7)
	}
	switch {
	case percent > 100:
		percent = 100
	case percent < 0:
		percent = 0
	}
	d.nodes.Percent = percent

	d.render()
}

// Done shows the final best move line.
func (d *Dashboard) Done(move string) {
	d.info.Text += fmt.Sprintf("\nbestmove: %s", move)
	d.render()
}

func (d *Dashboard) render() {
	ui.Render(d.info, d.nodes)
}

// Close restores the terminal.
func (d *Dashboard) Close() {
	ui.Close()
}
