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

// Package validate checks command arguments before any request is made
package validate

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrIDEmpty is an error for an empty id
var ErrIDEmpty = errors.New("The id is empty")

// ErrTagEmpty is an error for an empty tag
var ErrTagEmpty = errors.New("The tag is empty")

// ErrTagMultiline is an error for a tag that has linebreaks
var ErrTagMultiline = errors.New("The tag contains multiple lines")

// ErrTagTooLong is an error for a tag over MaxTagLength characters
var ErrTagTooLong = errors.New("The tag is too long")

// ErrTitleEmpty is an error for an empty course title
var ErrTitleEmpty = errors.New("The title is empty")

// ErrTitleMultiline is an error for a course title that has linebreaks
var ErrTitleMultiline = errors.New("The title contains multiple lines")

// ErrPathEmpty is an error for an empty course path
var ErrPathEmpty = errors.New("The path is empty")

// ErrPathRelative is an error for a course path that is not absolute
var ErrPathRelative = errors.New("The path must be absolute")

// ErrVideoPosNegative is an error for a negative playback position
var ErrVideoPosNegative = errors.New("The video position cannot be negative")

// MaxTagLength is the longest tag accepted
const MaxTagLength = 64

// windowsAbsPath matches drive-letter and UNC paths, which the server may use
// regardless of the platform the command line runs on
var windowsAbsPath = regexp.MustCompile(`^([a-zA-Z]:[\\/]|\\\\)`)

func isMultiline(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// ID validates a resource id
func ID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDEmpty
	}

	return nil
}

// Tag validates a tag
func Tag(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return ErrTagEmpty
	}

	if isMultiline(tag) {
		return ErrTagMultiline
	}

	if len([]rune(tag)) > MaxTagLength {
		return ErrTagTooLong
	}

	return nil
}

// Title validates a course title
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleEmpty
	}

	if isMultiline(title) {
		return ErrTitleMultiline
	}

	return nil
}

// Path validates a course path on the server's filesystem
func Path(p string) error {
	if strings.TrimSpace(p) == "" {
		return ErrPathEmpty
	}

	if !strings.HasPrefix(p, "/") && !windowsAbsPath.MatchString(p) {
		return ErrPathRelative
	}

	return nil
}

// VideoPos validates a playback position in seconds
func VideoPos(pos int) error {
	if pos < 0 {
		return ErrVideoPosNegative
	}

	return nil
}
