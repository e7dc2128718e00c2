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

// Package prompt reads yes/no answers for interactive confirmations
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FormatQuestion appends the choice indicator to a yes/no question. The
// capitalised choice is the one taken on an empty answer.
func FormatQuestion(question string, optimistic bool) string {
	if optimistic {
		return fmt.Sprintf("%s (Y/n)", question)
	}

	return fmt.Sprintf("%s (y/N)", question)
}

// ReadYesNo reads one line from r and reports whether it confirms. "y" and
// "yes" confirm in any case; an empty line confirms only when optimistic.
func ReadYesNo(r io.Reader, optimistic bool) (bool, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "":
		return optimistic, nil
	default:
		return false, nil
	}
}
