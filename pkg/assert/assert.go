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

// Package assert provides functions to assert a condition in tests
package assert

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func getErrorMessage(m string, a, b interface{}) string {
	return fmt.Sprintf(`%s.
Actual:
========================
%+v
========================

Expected:
========================
%+v
========================`, m, a, b)
}

// Equal errors a test if the actual does not match the expected
func Equal(t *testing.T, a, b interface{}, message string) {
	t.Helper()

	if a == b {
		return
	}

	t.Error(getErrorMessage(message, a, b))
}

// Equalf fails a test if the actual does not match the expected
func Equalf(t *testing.T, a, b interface{}, message string) {
	t.Helper()

	if a == b {
		return
	}

	t.Fatal(getErrorMessage(message, a, b))
}

// NotEqual fails a test if the actual matches the expected
func NotEqual(t *testing.T, a, b interface{}, message string) {
	t.Helper()

	if a != b {
		return
	}

	t.Error(getErrorMessage(message, a, b))
}

// DeepEqual fails a test if the actual does not deeply equal the expected
func DeepEqual(t *testing.T, a, b interface{}, message string) {
	t.Helper()

	if cmp.Equal(a, b) {
		return
	}

	t.Errorf("%s.\n(-actual +expected):\n%s", message, cmp.Diff(a, b))
}

// StatusCodeEquals fails a test if the HTTP status code of the given response
// does not match the expected
func StatusCodeEquals(t *testing.T, res *http.Response, expected int, message string) {
	t.Helper()

	if res.StatusCode == expected {
		return
	}

	dump, err := httputil.DumpResponse(res, true)
	if err != nil {
		t.Fatalf("dumping the response: %v", err)
	}

	t.Errorf("%s.\nstatus code %d does not match %d\n\n%s", message, res.StatusCode, expected, dump)
}
