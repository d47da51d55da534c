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

// Package config parses the process's command line flags and builds the
// logger the rest of the binary writes through. The UCI protocol itself
// takes no flags: everything here is ambient, out-of-band
// configuration for the surfaces layered on top of it.
package config

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

// Config is the parsed set of command line flags for cmd/messengine.
type Config struct {
	// Debug records the -debug flag. Nothing reads it: logging output is
	// the same with or without it.
	Debug bool

	LogFile string

	// DiagramFile, if set, receives an SVG diagram of the engine's
	// current position on every "d" command and when the engine quits.
	DiagramFile string

	// BenchFile, if set, names a PGN suite to replay through the search
	// instead of entering the UCI loop.
	BenchFile string

	// ReportFile, if set, receives an HTML chart of the telemetry of
	// every search in the session, written once the UCI loop ends. A
	// -bench run does not write it.
	ReportFile string

	// Monitor switches telemetry output from plain stdout info lines to
	// a live terminal dashboard.
	Monitor bool
}

// Parse parses os.Args[1:] into a Config.
func Parse() Config {
	var c Config

	flag.BoolVar(&c.Debug, "debug", false, "debug flag (logging output is the same with or without it)")
	flag.StringVar(&c.LogFile, "logfile", "", "write logs to this file instead of stderr")
	flag.StringVar(&c.DiagramFile, "diagram", "", "write an SVG diagram of the current position to this path on the d command and on quit")
	flag.StringVar(&c.BenchFile, "bench", "", "replay a PGN suite through the search and exit, instead of entering the UCI loop")
	flag.StringVar(&c.ReportFile, "report", "", "write an HTML chart of the session's search telemetry to this path when the UCI loop ends")
	flag.BoolVar(&c.Monitor, "monitor", false, "show a live terminal dashboard instead of plain info lines")

	flag.Parse()
	return c
}

// Logger opens c.LogFile, if set, and returns a logger writing to it,
// falling back to stderr. The caller is responsible for closing the
// returned io.Closer once the process is done with the logger; it is
// nil when logging to stderr.
func Logger(c Config) (*log.Logger, io.Closer) {
	flags := log.LstdFlags
	if c.LogFile == "" {
		return log.New(os.Stderr, "", flags), nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: opening logfile: %v\n", err)
		return log.New(os.Stderr, "", flags), nil
	}

	return log.New(f, "", flags), f
}
