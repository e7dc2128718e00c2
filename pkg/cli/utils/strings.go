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
	"strings"
	"unicode/utf8"
)

// Truncate shortens s to at most n runes, marking the cut with an ellipsis
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}

	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

// JoinNonEmpty joins the non-blank elements with sep after trimming them
func JoinNonEmpty(elems []string, sep string) string {
	var kept []string
	for _, e := range elems {
		if e = strings.TrimSpace(e); e != "" {
			kept = append(kept, e)
		}
	}

	return strings.Join(kept, sep)
}
