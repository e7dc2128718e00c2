/* Copyright 2025 Off Course Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
)

func TestTruncate(t *testing.T) {
	testCases := []struct {
		input    string
		n        int
		expected string
	}{
		{"golang", 10, "golang"},
		{"golang", 6, "golang"},
		{"golang", 4, "gol…"},
		{"golang", 1, "…"},
		{"golang", 0, ""},
		{"日本語のコース", 4, "日本語…"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, Truncate(tc.input, tc.n), tc.expected, "result mismatch")
		})
	}
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, JoinNonEmpty([]string{" go ", "", "rust", "  "}, ","), "go,rust", "result mismatch")
	assert.Equal(t, JoinNonEmpty(nil, ","), "", "nil input")
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, info.IsDir(), true, "not a directory")

	ok, err := FileExists(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, ok, false, "missing file reported as existing")

	// idempotent
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
}
