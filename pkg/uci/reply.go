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

import "fmt"

// ReplyKind identifies which of the closed set of outbound UCI replies
// a Reply carries.
type ReplyKind int

const (
	ReplyID ReplyKind = iota
	ReplyUciOk
	ReplyReadyOk
	ReplyInfo
	ReplyBestMove

	// ReplyRaw carries text written to the controller verbatim, with no
	// UCI framing: used for the non-protocol "d" debug command.
	ReplyRaw
)

// Reply is a tagged union over every outbound engine-to-controller
// message.
type Reply struct {
	Kind ReplyKind

	IDName   string // ReplyID
	IDAuthor string // ReplyID

	InfoString string // ReplyInfo; free-text when Nodes/NPS are both zero
	InfoNodes  int    // ReplyInfo
	InfoNPS    int    // ReplyInfo

	BestMove string // ReplyBestMove; UCI move string, "0000" if none

	Raw string // ReplyRaw
}

// String renders r as the UCI protocol line it represents.
func (r Reply) String() string {
	switch r.Kind {
	case ReplyID:
		return fmt.Sprintf("id name %s\nid author %s\nuciok", r.IDName, r.IDAuthor)
	case ReplyUciOk:
		return "uciok"
	case ReplyReadyOk:
		return "readyok"
	case ReplyInfo:
		if r.InfoNodes == 0 && r.InfoNPS == 0 && r.InfoString != "" {
			return fmt.Sprintf("info string %s", r.InfoString)
		}
		return fmt.Sprintf("info nodes %d nps %d", r.InfoNodes, r.InfoNPS)
	case ReplyBestMove:
		return fmt.Sprintf("bestmove %s", r.BestMove)
	case ReplyRaw:
		return r.Raw
	default:
		return ""
	}
}

// NewIDReply returns the identity handshake reply.
func NewIDReply(name, author string) Reply {
	return Reply{Kind: ReplyID, IDName: name, IDAuthor: author}
}

// NewReadyOkReply returns the "isready" acknowledgement reply.
func NewReadyOkReply() Reply {
	return Reply{Kind: ReplyReadyOk}
}

// NewInfoReply returns a telemetry reply carrying node/nps counters.
func NewInfoReply(nodes, nps int) Reply {
	return Reply{Kind: ReplyInfo, InfoNodes: nodes, InfoNPS: nps}
}

// NewInfoStringReply returns a free-text telemetry reply, used for
// diagnostics that don't fit the nodes/nps shape ("info
// string" logging of non-fatal errors).
func NewInfoStringReply(s string) Reply {
	return Reply{Kind: ReplyInfo, InfoString: s}
}

// NewBestMoveReply returns the reply concluding a search.
func NewBestMoveReply(uciMove string) Reply {
	return Reply{Kind: ReplyBestMove, BestMove: uciMove}
}

// NewRawReply returns a reply written to the controller verbatim.
func NewRawReply(s string) Reply {
	return Reply{Kind: ReplyRaw, Raw: s}
}
