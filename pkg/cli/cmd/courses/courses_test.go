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

package courses

import (
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/models"
)

func TestParseProgress(t *testing.T) {
	testCases := []struct {
		input    string
		expected models.CourseProgress
	}{
		{input: "", expected: ""},
		{input: "started", expected: models.CourseProgressStarted},
		{input: "NOT STARTED", expected: models.CourseProgressNotStarted},
		{input: "Completed", expected: models.CourseProgressCompleted},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseProgress(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, got, tc.expected, "progress mismatch")
		})
	}

	if _, err := parseProgress("halfway"); err == nil {
		t.Fatal("expected an error for an unknown progress")
	}
}
