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

package ui

import (
	"bufio"
	"strings"
	"testing"

	"github.com/offcourse/offcourse/pkg/assert"
)

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("alice\r\nsecret\nlast"))

	for _, expected := range []string{"alice", "secret", "last"} {
		got, err := readLine(r)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, got, expected, "line mismatch")
	}

	if _, err := readLine(r); err == nil {
		t.Fatal("expected an error at the end of input")
	}
}
