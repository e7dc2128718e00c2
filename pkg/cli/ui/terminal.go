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

// Package ui reads user input from the terminal
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/offcourse/offcourse/pkg/cli/log"
	"github.com/offcourse/offcourse/pkg/prompt"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

// stdin is shared so that buffered input survives across prompts when the
// input is piped
var stdin = bufio.NewReader(os.Stdin)

func readLine(r *bufio.Reader) (string, error) {
	input, err := r.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", errors.Wrap(err, "reading stdin")
	}

	return strings.Trim(input, "\r\n"), nil
}

// PromptInput prompts the user input and saves the result to the destination
func PromptInput(message string, dest *string) error {
	log.Askf(message, false)

	input, err := readLine(stdin)
	if err != nil {
		return errors.Wrap(err, "getting user input")
	}

	*dest = input

	return nil
}

// PromptPassword prompts the user input a password and saves the result to the destination.
// The input is masked when stdin is a terminal.
func PromptPassword(message string, dest *string) error {
	log.Askf(message, true)

	fd := int(syscall.Stdin)
	if !terminal.IsTerminal(fd) {
		input, err := readLine(stdin)
		if err != nil {
			return errors.Wrap(err, "getting user input")
		}

		*dest = input
		return nil
	}

	password, err := terminal.ReadPassword(fd)
	if err != nil {
		return errors.Wrap(err, "getting user input")
	}

	fmt.Println("")

	*dest = string(password)

	return nil
}

// Confirm prompts for user input to confirm a choice
func Confirm(question string, optimistic bool) (bool, error) {
	message := prompt.FormatQuestion(question, optimistic)

	log.Askf(message, false)

	confirmed, err := prompt.ReadYesNo(stdin, optimistic)
	if err != nil {
		return false, errors.Wrap(err, "getting user input")
	}

	return confirmed, nil
}
