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

package prompt

import (
	"strings"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
)

func TestFormatQuestion(t *testing.T) {
	testCases := []struct {
		question   string
		optimistic bool
		expected   string
	}{
		{
			question:   "delete course Go Basics?",
			optimistic: false,
			expected:   "delete course Go Basics? (y/N)",
		},
		{
			question:   "continue?",
			optimistic: true,
			expected:   "continue? (Y/n)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.question, func(t *testing.T) {
			assert.Equal(t, FormatQuestion(tc.question, tc.optimistic), tc.expected, "formatted question mismatch")
		})
	}
}

func TestReadYesNo(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		optimistic bool
		expected   bool
	}{
		{"y", "y\n", false, true},
		{"uppercase Y", "Y\n", false, true},
		{"yes", "yes\n", false, true},
		{"n", "n\n", false, false},
		{"empty pessimistic", "\n", false, false},
		{"blank pessimistic", "   \n", false, false},
		{"empty optimistic", "\n", true, true},
		{"n optimistic", "n\n", true, false},
		{"unknown answer", "maybe\n", true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadYesNo(strings.NewReader(tc.input), tc.optimistic)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			assert.Equal(t, got, tc.expected, "answer mismatch")
		})
	}
}

func TestReadYesNoEOF(t *testing.T) {
	if _, err := ReadYesNo(strings.NewReader(""), false); err == nil {
		t.Fatal("expected an error on empty input")
	}
}
