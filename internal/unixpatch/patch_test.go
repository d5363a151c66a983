// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package unixpatch

import (
	"os/exec"
	"testing"
)

func TestPatch(t *testing.T) {
	if _, err := exec.LookPath("patch"); err != nil {
		t.Skip("patch tool not available")
	}

	tests := []struct {
		name string
		orig string
		diff string
		want string
	}{
		{
			name: "no-hunks",
			orig: "a\n",
			diff: "--- a\n+++ b\n",
			want: "a\n",
		},
		{
			name: "replace",
			orig: "a\nb\nc\n",
			diff: "--- a\n+++ b\n@@ -1,3 +1,3 @@\n a\n+x\n-b\n c\n",
			want: "a\nx\nc\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Patch(tt.orig, tt.diff)
			if err != nil {
				t.Fatalf("Patch(...) failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Patch(...) = %q, want %q", got, tt.want)
			}
		})
	}
}
