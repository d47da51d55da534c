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

// Package engine implements the Engine orchestration component and the
// controller/engine/worker concurrency protocol.
package engine

import (
	"log"
	"os"
	"sync/atomic"

	"github.com/rlaptudirm/messcore/internal/render"
	"github.com/rlaptudirm/messcore/pkg/board"
	"github.com/rlaptudirm/messcore/pkg/uci"
)

// Name and Author are reported in response to the "uci" handshake.
const (
	Name   = "messcore"
	Author = "rlaptudirm"
)

// Engine owns the current Node and the cancel flag of any running
// search, and runs the single-consumer command loop. It must only be
// used from the goroutine running Run.
type Engine struct {
	node    board.Node
	debug   bool
	working bool
	cancel  *atomic.Bool

	out    chan<- uci.Reply
	logger *log.Logger

	// diagramFile, if set, receives an SVG diagram of the current
	// position whenever it is redrawn or the engine quits.
	diagramFile string

	queue chan event
}

// event is the tagged union of everything the engine's queue carries:
// a controller command, or a worker reply.
type event struct {
	controller *uci.Command
	worker     *workerEvent
}

// New creates an Engine at the standard starting position. diagramFile,
// if non-empty, receives an SVG diagram of the position on every "d"
// command and again when the engine quits.
func New(out chan<- uci.Reply, logger *log.Logger, diagramFile string) *Engine {
	return &Engine{
		node:        board.NewNode(),
		out:         out,
		logger:      logger,
		diagramFile: diagramFile,
		queue:       make(chan event, 16),
	}
}

// Run pumps ctrlIn into the engine's internal queue and processes every
// event from that queue in arrival order until a "quit" command is
// handled or ctrlIn is closed. It is the engine thread's body.
func (e *Engine) Run(ctrlIn <-chan uci.Command) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		for cmd := range ctrlIn {
			c := cmd
			e.queue <- event{controller: &c}
		}
	}()

	for {
		select {
		case ev := <-e.queue:
			switch {
			case ev.controller != nil:
				if quit := e.handleController(*ev.controller); quit {
					return
				}
			case ev.worker != nil:
				e.handleWorker(*ev.worker)
			}
		case <-done:
			return
		}
	}
}

// reply is a small convenience wrapper around sending on the out channel.
func (e *Engine) reply(r uci.Reply) {
	e.out <- r
}

// logf logs a protocol/state error through the engine's logger and does
// not surface anything to the controller: a "log and ignore" policy.
func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// writeDiagram renders the current position to e.diagramFile, if set.
func (e *Engine) writeDiagram() {
	if e.diagramFile == "" {
		return
	}

	f, err := os.Create(e.diagramFile)
	if err != nil {
		e.logf("engine: diagram: %v", err)
		return
	}
	defer f.Close()

	render.Board(f, &e.node.Board)
}
