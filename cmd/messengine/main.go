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

// Command messengine is the UCI chess engine process: it wires the
// controller's stdin/stdout to an internal/engine.Engine over command
// and reply channels, plus the out-of-protocol surfaces gated by
// internal/config's flags.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/rlaptudirm/messcore/internal/bench"
	"github.com/rlaptudirm/messcore/internal/config"
	"github.com/rlaptudirm/messcore/internal/engine"
	"github.com/rlaptudirm/messcore/internal/monitor"
	"github.com/rlaptudirm/messcore/internal/report"
	"github.com/rlaptudirm/messcore/pkg/search"
	"github.com/rlaptudirm/messcore/pkg/uci"
)

func main() {
	cfg := config.Parse()
	logger, closer := config.Logger(cfg)
	if closer != nil {
		defer closer.Close()
	}

	if cfg.BenchFile != "" {
		runBench(cfg)
		return
	}

	runUCI(cfg, logger)
}

// runBench replays a PGN suite through the search and exits, instead of
// entering the UCI loop. This is ambient tooling, not part of the
// protocol proper.
func runBench(cfg config.Config) {
	result, err := bench.Run(cfg.BenchFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bench: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(bench.Report(result))
}

// runUCI spawns the controller goroutine reading stdin, the reply
// drain goroutine writing stdout, and runs the engine thread on the
// calling goroutine.
func runUCI(cfg config.Config, logger *log.Logger) {
	cmdCh := make(chan uci.Command, 16)
	replyCh := make(chan uci.Reply, 16)

	eng := engine.New(replyCh, logger, cfg.DiagramFile)

	var dashboard *monitor.Dashboard
	printer := monitor.NewPrinter(os.Stdout)
	if cfg.Monitor {
		d, err := monitor.NewDashboard()
		if err != nil {
			fmt.Fprintf(os.Stderr, "monitor: %v, falling back to plain output\n", err)
		} else {
			dashboard = d
			defer dashboard.Close()
		}
	}

	var collector *report.Collector
	if cfg.ReportFile != "" {
		collector = &report.Collector{}
	}

	go readController(cmdCh, logger)
	go drainReplies(replyCh, dashboard, printer, collector)

	eng.Run(cmdCh)

	if collector != nil {
		if err := collector.Write(cfg.ReportFile); err != nil {
			logger.Printf("report: %v", err)
		}
	}
}

// readController reads UCI command lines from stdin until EOF, parsing
// each into a Command. A malformed line is logged and ignored; it
// never closes cmdCh's consumer down.
func readController(cmdCh chan<- uci.Command, logger *log.Logger) {
	defer close(cmdCh)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		cmd, err := uci.ParseCommand(line)
		if err != nil {
			logger.Printf("uci: %v", err)
			continue
		}
		cmdCh <- cmd
	}
}

// drainReplies writes every non-telemetry engine reply to stdout.
// Telemetry replies go to the chart collector when configured, and to
// the live dashboard if there is one, otherwise to the plain printer.
func drainReplies(replyCh <-chan uci.Reply, dashboard *monitor.Dashboard, printer *monitor.Printer, collector *report.Collector) {
	for r := range replyCh {
		if r.Kind == uci.ReplyInfo && r.InfoString == "" {
			t := search.Telemetry{Nodes: r.InfoNodes, NPS: r.InfoNPS}
			if collector != nil {
				collector.Add(t)
			}
			if dashboard != nil {
				dashboard.Update(t)
				continue
			}
			printer.Update(t)
			continue
		}

		if r.Kind == uci.ReplyBestMove && dashboard != nil {
			dashboard.Done(r.BestMove)
		}

		fmt.Println(r.String())
	}
}
