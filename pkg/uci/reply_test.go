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

package uci

import (
	"strings"
	"testing"
)

func TestReplyIDString(t *testing.T) {
	r := NewIDReply("messcore", "Rak Laptudirm")
	got := r.String()
	if !strings.Contains(got, "id name messcore") || !strings.Contains(got, "id author Rak Laptudirm") || !strings.HasSuffix(got, "uciok") {
		t.Errorf("String() = %q, missing expected id lines", got)
	}
}

func TestReplyReadyOkString(t *testing.T) {
	if got := NewReadyOkReply().String(); got != "readyok" {
		t.Errorf("String() = %q, want readyok", got)
	}
}

func TestReplyInfoString(t *testing.T) {
	r := NewInfoReply(12345, 6789)
	if got := r.String(); got != "info nodes 12345 nps 6789" {
		t.Errorf("String() = %q, want \"info nodes 12345 nps 6789\"", got)
	}
}

func TestReplyInfoStringFreeText(t *testing.T) {
	r := NewInfoStringReply("checkmate is unavoidable")
	if got := r.String(); got != "info string checkmate is unavoidable" {
		t.Errorf("String() = %q, want \"info string checkmate is unavoidable\"", got)
	}
}

func TestReplyBestMoveString(t *testing.T) {
	r := NewBestMoveReply("e2e4")
	if got := r.String(); got != "bestmove e2e4" {
		t.Errorf("String() = %q, want \"bestmove e2e4\"", got)
	}
}

func TestReplyRawString(t *testing.T) {
	r := NewRawReply("8/8/8/8/8/8/8/8")
	if got := r.String(); got != "8/8/8/8/8/8/8/8" {
		t.Errorf("String() = %q, want raw passthrough", got)
	}
}
