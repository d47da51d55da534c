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

package square

import "testing"

func TestStringRoundTrip(t *testing.T) {
	for file := FileA; file <= FileH; file++ {
		for rank := Rank1; rank <= Rank8; rank++ {
			s := New(file, rank)
			got := NewFromString(s.String())
			if got != s {
				t.Errorf("round trip %v: got %v, want %v", s.String(), got, s)
			}
		}
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		s    Square
		want string
	}{
		{A1, "a1"},
		{H1, "h1"},
		{A8, "a8"},
		{H8, "h8"},
		{E4, "e4"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Square(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestNoneString(t *testing.T) {
	if got := NewFromString("-"); got != None {
		t.Errorf("NewFromString(\"-\") = %v, want None", got)
	}
}
