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

package logs

import (
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
	"github.com/offcourse/offcourse/pkg/cli/models"
)

func TestParseLevels(t *testing.T) {
	got, err := parseLevels([]string{"error", " WARN", "debug"})
	if err != nil {
		t.Fatal(err)
	}
	assert.DeepEqual(t, got, []models.LogLevel{models.LogLevelError, models.LogLevelWarn, models.LogLevelDebug}, "levels mismatch")

	if _, err := parseLevels([]string{"fatal"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
