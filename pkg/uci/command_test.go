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

import "testing"

func TestNewGoArgsFieldsUnset(t *testing.T) {
	g := NewGoArgs()
	for name, v := range map[string]int{
		"MoveTime":  g.MoveTime,
		"WTime":     g.WTime,
		"BTime":     g.BTime,
		"WInc":      g.WInc,
		"BInc":      g.BInc,
		"MovesToGo": g.MovesToGo,
		"Depth":     g.Depth,
		"Nodes":     g.Nodes,
	} {
		if v != -1 {
			t.Errorf("NewGoArgs().%s = %d, want -1", name, v)
		}
	}
	if g.Infinite {
		t.Error("NewGoArgs().Infinite = true, want false")
	}
}
