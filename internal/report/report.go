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

// Package report renders search telemetry into an HTML chart, for
// engines run with -report. It plays the same role the evaluation
// tuner's error-curve plot once did, pointed at nodes/s instead of
// tuning loss.
package report

import (
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rlaptudirm/messcore/pkg/search"
)

// Collector accumulates telemetry samples over the life of one or more
// searches, in arrival order.
type Collector struct {
	samples []search.Telemetry
}

// Add appends a telemetry sample.
func (c *Collector) Add(t search.Telemetry) {
	c.samples = append(c.samples, t)
}

// Write renders the collected samples as an HTML line chart of nodes
// and nps over the sample sequence, to path.
func (c *Collector) Write(path string) error {
	labels := make([]string, len(c.samples))
	nodes := make([]opts.LineData, len(c.samples))
	nps := make([]opts.LineData, len(c.samples))

	for i, s := range c.samples {
		labels[i] = strconv.Itoa(i)
		nodes[i] = opts.LineData{Value: s.Nodes}
		nps[i] = opts.LineData{Value: s.NPS}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "messcore search telemetry"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "sample"}),
	)
	line.SetXAxis(labels).
		AddSeries("nodes", nodes).
		AddSeries("nps", nps)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}
